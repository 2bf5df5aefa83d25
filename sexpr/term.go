// SPDX-License-Identifier: MIT
//
// File: term.go
// Role: lowers a parsed SExpr into a ground egraph term, adding every node
// bottom-up via egraph.EGraph.Add (spec §6's "programs are read as ground
// terms" contract).
package sexpr

import (
	"fmt"
	"strconv"

	"github.com/sorawee/isaforge/egraph"
)

// BuildTerm adds s to eg as a ground term, returning the resulting eclass
// id. A bare atom is added as a Num, Op, or String leaf depending on its
// lexical shape; a list is added as the node kind named by its head symbol,
// with each remaining element built recursively as a child.
func BuildTerm(eg *egraph.EGraph, s *SExpr) (egraph.Id, error) {
	if s.Atom != nil {
		return buildAtom(eg, *s.Atom)
	}
	if len(s.List) == 0 {
		return 0, fmt.Errorf("sexpr: empty list has no head")
	}
	head := s.List[0]
	if head.Atom == nil {
		return 0, fmt.Errorf("sexpr: list head must be a bare symbol")
	}
	kind, err := kindForHead(*head.Atom)
	if err != nil {
		return 0, err
	}
	args := s.List[1:]
	children := make([]egraph.Id, len(args))
	for i, a := range args {
		id, err := BuildTerm(eg, a)
		if err != nil {
			return 0, err
		}
		children[i] = id
	}
	return eg.Add(egraph.ENode{Kind: kind, Children: children})
}

// Term parses src and builds it into eg in one step.
func Term(eg *egraph.EGraph, src string) (egraph.Id, error) {
	s, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return BuildTerm(eg, s)
}

func buildAtom(eg *egraph.EGraph, atom string) (egraph.Id, error) {
	if n, err := strconv.ParseInt(atom, 10, 64); err == nil {
		return eg.Add(egraph.ENode{Kind: egraph.KindNum, NumVal: n})
	}
	if op, err := egraph.ParseOp(atom); err == nil {
		return eg.Add(egraph.ENode{Kind: egraph.KindOp, OpVal: op})
	}
	return eg.Add(egraph.ENode{Kind: egraph.KindString, StrVal: atom})
}
