// SPDX-License-Identifier: MIT
//
// File: extract_all.go
// Role: supplemented feature (SPEC_FULL.md §4) — a whole-egraph smallest-
// term extraction sweep, ported from language.rs's explore_new minus the
// Racket call, which lives in oracle.ValidateAll.
package isa

import (
	"fmt"

	"github.com/sorawee/isaforge/egraph"
)

// ExtractAll extracts the smallest-size (egg::AstSize-equivalent) ground
// term for every live eclass in eg.
func ExtractAll(eg *egraph.EGraph) (map[egraph.Id]*Expr, error) {
	ex := newExtractor(eg)
	ids := eg.Classes()
	out := make(map[egraph.Id]*Expr, len(ids))
	for _, id := range ids {
		e, err := ex.build(id)
		if err != nil {
			return nil, err
		}
		out[id] = e
	}
	return out, nil
}

// extractor runs the standard fixpoint extraction algorithm: repeatedly
// relax each eclass's best-known cost using its enodes' children's current
// best costs, until no eclass improves.
type extractor struct {
	eg   *egraph.EGraph
	cost map[egraph.Id]int
	best map[egraph.Id]egraph.ENode
}

func newExtractor(eg *egraph.EGraph) *extractor {
	ex := &extractor{eg: eg, cost: map[egraph.Id]int{}, best: map[egraph.Id]egraph.ENode{}}
	ex.run()
	return ex
}

func (ex *extractor) run() {
	for changed := true; changed; {
		changed = false
		for _, id := range ex.eg.Classes() {
			nodes, err := ex.eg.Nodes(id)
			if err != nil {
				continue
			}
			for _, n := range nodes {
				c, ok := ex.nodeCost(n)
				if !ok {
					continue
				}
				if prev, has := ex.cost[id]; !has || c < prev {
					ex.cost[id] = c
					ex.best[id] = n
					changed = true
				}
			}
		}
	}
}

func (ex *extractor) nodeCost(n egraph.ENode) (int, bool) {
	total := 1
	for _, c := range n.Children {
		cc := ex.eg.Find(c)
		cost, ok := ex.cost[cc]
		if !ok {
			return 0, false
		}
		total += cost
	}
	return total, true
}

func (ex *extractor) build(id egraph.Id) (*Expr, error) {
	id = ex.eg.Find(id)
	n, ok := ex.best[id]
	if !ok {
		return nil, fmt.Errorf("isa: no extraction found for eclass %d", id)
	}
	e := &Expr{Kind: n.Kind, OpVal: n.OpVal, NumVal: n.NumVal, StrVal: n.StrVal}
	if len(n.Children) > 0 {
		e.Children = make([]*Expr, len(n.Children))
		for i, c := range n.Children {
			child, err := ex.build(c)
			if err != nil {
				return nil, err
			}
			e.Children[i] = child
		}
	}
	return e, nil
}
