// SPDX-License-Identifier: MIT
//
// File: saturator.go
// Role: C3 — runs a rule list to quiescence or a bound (spec §4.3).
package rewrite

import (
	"fmt"

	"github.com/sorawee/isaforge/egraph"
)

// Bound names which stopping condition fired, if any.
type Bound string

const (
	// BoundNone means saturation reached a fixed point before any limit.
	BoundNone Bound = ""
	// BoundIterationLimit means the pass-count limit fired first.
	BoundIterationLimit Bound = "iteration_limit"
	// BoundNodeLimit means the eclass-count limit fired first.
	BoundNodeLimit Bound = "node_limit"
)

// Result reports how saturation ended.
type Result struct {
	Iterations int
	Bound      Bound
}

// Saturated reports whether Run stopped because no pass produced a new
// equality, as opposed to hitting a bound.
func (r Result) Saturated() bool { return r.Bound == BoundNone }

// Run repeatedly searches every rule's LHS and applies it to every match,
// rebuilding after each pass, until a pass produces no new equalities, the
// iteration limit is reached, or the e-graph exceeds the node limit (spec
// §4.3, stopping conditions a/b/c). Rule order within a pass follows the
// order of rules; the fixpoint result does not depend on it, since every
// rule in the rules package only adds nodes and unions classes.
func Run(eg *egraph.EGraph, rules []Rule, iterationLimit, nodeLimit int) (Result, error) {
	for i := 0; i < iterationLimit; i++ {
		changed := false
		for _, r := range rules {
			for _, m := range eg.Search(r.LHS) {
				for _, subst := range m.Substs {
					_, c, err := r.Apply(eg, m.EClass, subst)
					if err != nil {
						return Result{Iterations: i}, fmt.Errorf("rewrite: rule %q: %w", r.Name, err)
					}
					changed = changed || c
				}
			}
		}
		if err := eg.Rebuild(); err != nil {
			return Result{Iterations: i}, err
		}
		if eg.NumClasses() > nodeLimit {
			return Result{Iterations: i + 1, Bound: BoundNodeLimit}, nil
		}
		if !changed {
			return Result{Iterations: i + 1, Bound: BoundNone}, nil
		}
	}
	return Result{Iterations: iterationLimit, Bound: BoundIterationLimit}, nil
}
