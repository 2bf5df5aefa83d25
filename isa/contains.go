// SPDX-License-Identifier: MIT
//
// File: contains.go
// Role: C8 — reachability search, ported from language.rs's
// instr_appears_in_program.
package isa

import "github.com/sorawee/isaforge/egraph"

// Contains reports whether instrID's eclass is reachable from programRoot's
// eclass by following any enode's child edges in any of its representative
// nodes — whether the instruction appears anywhere in the program.
func Contains(eg *egraph.EGraph, instrID, programRoot egraph.Id) (bool, error) {
	target := eg.Find(instrID)
	visited := map[egraph.Id]bool{}
	worklist := []egraph.Id{eg.Find(programRoot)}

	for len(worklist) > 0 {
		this := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if visited[this] {
			continue
		}
		visited[this] = true

		if this == target {
			return true, nil
		}

		nodes, err := eg.Nodes(this)
		if err != nil {
			return false, err
		}
		for _, n := range nodes {
			for _, c := range n.Children {
				cc := eg.Find(c)
				if !visited[cc] {
					worklist = append(worklist, cc)
				}
			}
		}
	}
	return false, nil
}
