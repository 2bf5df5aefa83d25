// SPDX-License-Identifier: MIT
//
// File: printer.go
// Role: renders an eclass back into the surface syntax for diagnostics,
// picking an arbitrary representative node per eclass (isa.ExtractAll picks
// representatives under a cost function instead; this printer is for ad hoc
// inspection and tests).
package sexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sorawee/isaforge/egraph"
)

// Print renders the eclass rooted at id as a prefix s-expression string.
func Print(eg *egraph.EGraph, id egraph.Id) (string, error) {
	nodes, err := eg.Nodes(id)
	if err != nil {
		return "", err
	}
	if len(nodes) == 0 {
		return "", fmt.Errorf("sexpr: eclass %d has no nodes", id)
	}
	return printNode(eg, nodes[0])
}

func printNode(eg *egraph.EGraph, n egraph.ENode) (string, error) {
	switch n.Kind {
	case egraph.KindOp:
		return n.OpVal.String(), nil
	case egraph.KindNum:
		return strconv.FormatInt(n.NumVal, 10), nil
	case egraph.KindString:
		return n.StrVal, nil
	default:
		parts := make([]string, 0, len(n.Children)+1)
		parts = append(parts, n.Kind.String())
		for _, c := range n.Children {
			s, err := Print(eg, c)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return "(" + strings.Join(parts, " ") + ")", nil
	}
}

// PrintLeaf renders a single literal-carrying node (Op, Num, or String)
// without an e-graph, for callers building surface syntax from an already
// extracted tree one node at a time.
func PrintLeaf(n egraph.ENode) (string, error) {
	switch n.Kind {
	case egraph.KindOp:
		return n.OpVal.String(), nil
	case egraph.KindNum:
		return strconv.FormatInt(n.NumVal, 10), nil
	case egraph.KindString:
		return n.StrVal, nil
	default:
		return "", fmt.Errorf("sexpr: %s is not a leaf kind", n.Kind)
	}
}
