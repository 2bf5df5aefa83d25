// SPDX-License-Identifier: MIT
//
// File: rule.go
// Role: the rule-authoring surface named in the Design Notes: an LHS
// pattern plus either an RHS pattern (the common, declarative case) or a
// hand-written Applier (for canonicalize/simplify-concat, which compute
// their replacement rather than pattern-match it).
package rewrite

import "github.com/sorawee/isaforge/egraph"

// Applier runs the effect side of a rule for one (eclass, subst) match. It
// may add nodes and union classes; it returns the ids it touched and
// whether it introduced a new equality (used for the saturator's fixpoint
// check).
type Applier func(eg *egraph.EGraph, eclass egraph.Id, subst egraph.Subst) (touched []egraph.Id, changed bool, err error)

// Rule is one named rewrite: search LHS, run Apply on every match.
type Rule struct {
	Name string
	LHS  *egraph.Pattern
	Apply Applier
}

// Template builds the common declarative rule shape: on every match,
// instantiate rhs under the match's substitution and union it with the
// matched eclass.
func Template(name string, lhs, rhs *egraph.Pattern) Rule {
	return Rule{
		Name: name,
		LHS:  lhs,
		Apply: func(eg *egraph.EGraph, eclass egraph.Id, subst egraph.Subst) ([]egraph.Id, bool, error) {
			newID, err := egraph.Instantiate(eg, rhs, subst)
			if err != nil {
				return nil, false, err
			}
			kept, changed, err := eg.Union(eclass, newID)
			if err != nil {
				return nil, false, err
			}
			return []egraph.Id{kept, newID}, changed, nil
		},
	}
}
