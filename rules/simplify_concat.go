// SPDX-License-Identifier: MIT
//
// File: simplify_concat.go
// Role: C4's imperative list-simplifier, ported from language.rs's
// `simplify_concat`'s custom egg::Applier: materialize a concat node's two
// list payloads as one literal list node and union it in.
package rules

import (
	"github.com/sorawee/isaforge/egraph"
	"github.com/sorawee/isaforge/rewrite"
	"github.com/sorawee/isaforge/sexpr"
)

// SimplifyConcat builds the simplify-concat rule.
func SimplifyConcat() rewrite.Rule {
	return rewrite.Rule{
		Name: "simplify-concat",
		LHS:  sexpr.MustPattern("(concat ?list0 ?list1)"),
		Apply: func(eg *egraph.EGraph, eclass egraph.Id, subst egraph.Subst) ([]egraph.Id, bool, error) {
			ids0, err := listIDs(eg, subst, "list0")
			if err != nil {
				return nil, false, err
			}
			ids1, err := listIDs(eg, subst, "list1")
			if err != nil {
				return nil, false, err
			}

			merged := make([]egraph.Id, 0, len(ids0)+len(ids1))
			merged = append(merged, ids0...)
			merged = append(merged, ids1...)

			newListID, err := eg.Add(egraph.ENode{Kind: egraph.KindList, Children: merged})
			if err != nil {
				return nil, false, err
			}
			kept, changed, err := eg.Union(eclass, newListID)
			if err != nil {
				return nil, false, err
			}
			return []egraph.Id{kept, newListID}, changed, nil
		},
	}
}
