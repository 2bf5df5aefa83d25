// SPDX-License-Identifier: MIT
//
// File: extract.go
// Role: C6 — finds every candidate instruction in a saturated e-graph and
// materializes its AST, ported from language.rs's find_isa_instructions/
// extract_ast/extract_ast_helper.
package isa

import (
	"fmt"

	"github.com/sorawee/isaforge/egraph"
	"github.com/sorawee/isaforge/sexpr"
)

// Instruction pairs an "(instr ast canonical-args)" eclass with its
// extracted AST.
type Instruction struct {
	EClass egraph.Id
	AST    *Expr
}

var instrPattern = sexpr.MustPattern("(instr ?ast ?canonical-args)")

// FindISAInstructions searches eg for every instr eclass and extracts its
// AST. It errors rather than panics on the ambiguity the original
// implementation only asserted away: more than one substitution matching
// within an eclass, or an instr (or AST) eclass holding more than one enode.
func FindISAInstructions(eg *egraph.EGraph) ([]Instruction, error) {
	var out []Instruction
	for _, m := range eg.Search(instrPattern) {
		if len(m.Substs) != 1 {
			return nil, ErrAmbiguousMatch
		}
		nodes, err := eg.Nodes(m.EClass)
		if err != nil {
			return nil, err
		}
		if len(nodes) != 1 {
			return nil, ErrAmbiguousInstr
		}
		subst := m.Substs[0]
		ast, err := ExtractAST(eg, subst["ast"], subst["canonical-args"])
		if err != nil {
			return nil, err
		}
		out = append(out, Instruction{EClass: m.EClass, AST: ast})
	}
	return out, nil
}

// ExtractAST materializes the AST rooted at astID, replacing each hole with
// a synthesized "varN" variable, N being the corresponding value from
// canonicalArgsID's canonical-args node, consumed depth-first left-to-right.
func ExtractAST(eg *egraph.EGraph, astID, canonicalArgsID egraph.Id) (*Expr, error) {
	args, err := canonicalArgValues(eg, canonicalArgsID)
	if err != nil {
		return nil, err
	}
	return extractASTHelper(eg, astID, &args)
}

func canonicalArgValues(eg *egraph.EGraph, canonicalArgsID egraph.Id) ([]int64, error) {
	nodes, err := eg.Nodes(canonicalArgsID)
	if err != nil {
		return nil, err
	}
	var cargsNode *egraph.ENode
	for i := range nodes {
		if nodes[i].Kind == egraph.KindCanonicalArgs {
			cargsNode = &nodes[i]
			break
		}
	}
	if cargsNode == nil {
		return nil, ErrNotCanonicalArgs
	}
	args := make([]int64, len(cargsNode.Children))
	for i, c := range cargsNode.Children {
		class, err := eg.Class(c)
		if err != nil {
			return nil, err
		}
		p := class.Payload()
		if p.Kind != egraph.PayloadNum {
			return nil, ErrNotCanonicalArgs
		}
		args[i] = p.Num
	}
	return args, nil
}

func extractASTHelper(eg *egraph.EGraph, id egraph.Id, args *[]int64) (*Expr, error) {
	nodes, err := eg.Nodes(id)
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, ErrAmbiguousInstr
	}
	n := nodes[0]
	switch n.Kind {
	case egraph.KindOp:
		return &Expr{Kind: egraph.KindOp, OpVal: n.OpVal}, nil
	case egraph.KindNum:
		return &Expr{Kind: egraph.KindNum, NumVal: n.NumVal}, nil
	case egraph.KindBinOp:
		children, err := extractChildren(eg, n.Children, args)
		if err != nil {
			return nil, err
		}
		return &Expr{Kind: egraph.KindBinOp, Children: children}, nil
	case egraph.KindUnOp:
		children, err := extractChildren(eg, n.Children, args)
		if err != nil {
			return nil, err
		}
		return &Expr{Kind: egraph.KindUnOp, Children: children}, nil
	case egraph.KindHole:
		bw, err := extractASTHelper(eg, n.Children[0], args)
		if err != nil {
			return nil, err
		}
		if len(*args) == 0 {
			return nil, ErrNotEnoughArgs
		}
		argVal := (*args)[0]
		*args = (*args)[1:]
		name := &Expr{Kind: egraph.KindString, StrVal: fmt.Sprintf("var%d", argVal)}
		return &Expr{Kind: egraph.KindVar, Children: []*Expr{name, bw}}, nil
	default:
		return nil, fmt.Errorf("isa: unsupported node kind in instruction ast: %s", n.Kind)
	}
}

func extractChildren(eg *egraph.EGraph, ids []egraph.Id, args *[]int64) ([]*Expr, error) {
	out := make([]*Expr, len(ids))
	for i, id := range ids {
		e, err := extractASTHelper(eg, id, args)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
