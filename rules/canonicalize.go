// SPDX-License-Identifier: MIT
//
// File: canonicalize.go
// Role: C5's imperative canonicalizer, ported from language.rs's
// `canonicalize`'s custom egg::Applier: renumber a list's element ids by
// first occurrence into a canonical-args node and union it with the
// matched "canonicalize" eclass.
package rules

import (
	"github.com/sorawee/isaforge/egraph"
	"github.com/sorawee/isaforge/rewrite"
	"github.com/sorawee/isaforge/sexpr"
)

// Canonicalize builds the canonicalize rule.
func Canonicalize() rewrite.Rule {
	return rewrite.Rule{
		Name: "canonicalize",
		LHS:  sexpr.MustPattern("(canonicalize ?list)"),
		Apply: func(eg *egraph.EGraph, eclass egraph.Id, subst egraph.Subst) ([]egraph.Id, bool, error) {
			ids, err := listIDs(eg, subst, "list")
			if err != nil {
				return nil, false, err
			}

			next := int64(0)
			seen := make(map[egraph.Id]int64, len(ids))
			args := make([]egraph.Id, len(ids))
			for i, id := range ids {
				canon := eg.Find(id)
				n, ok := seen[canon]
				if !ok {
					n = next
					seen[canon] = n
					next++
				}
				numID, err := eg.Add(egraph.ENode{Kind: egraph.KindNum, NumVal: n})
				if err != nil {
					return nil, false, err
				}
				args[i] = numID
			}

			canonicalArgsID, err := eg.Add(egraph.ENode{Kind: egraph.KindCanonicalArgs, Children: args})
			if err != nil {
				return nil, false, err
			}
			kept, changed, err := eg.Union(eclass, canonicalArgsID)
			if err != nil {
				return nil, false, err
			}
			return []egraph.Id{kept, canonicalArgsID}, changed, nil
		},
	}
}
