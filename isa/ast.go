// SPDX-License-Identifier: MIT
//
// File: ast.go
// Role: Expr is a detached ground term, the result shape of both Extract's
// instruction-AST extraction and ExtractAll's whole-egraph sweep. It mirrors
// egraph.ENode's fields but holds direct child pointers instead of eclass
// ids, since an extracted term is a tree with no further sharing to track.
package isa

import (
	"strconv"
	"strings"

	"github.com/sorawee/isaforge/egraph"
)

// Expr is one node of an extracted term.
type Expr struct {
	Kind     egraph.Kind
	OpVal    egraph.Op
	NumVal   int64
	StrVal   string
	Children []*Expr
}

// Print renders e in the same prefix s-expression surface syntax the sexpr
// package parses.
func (e *Expr) Print() string {
	switch e.Kind {
	case egraph.KindOp:
		return e.OpVal.String()
	case egraph.KindNum:
		return strconv.FormatInt(e.NumVal, 10)
	case egraph.KindString:
		return e.StrVal
	default:
		parts := make([]string, 0, len(e.Children)+1)
		parts = append(parts, e.Kind.String())
		for _, c := range e.Children {
			parts = append(parts, c.Print())
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
}

// Size is the node count of e, the cost function ExtractAll minimizes
// (the original implementation's egg::AstSize).
func (e *Expr) Size() int {
	total := 1
	for _, c := range e.Children {
		total += c.Size()
	}
	return total
}
