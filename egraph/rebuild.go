// SPDX-License-Identifier: MIT
//
// File: rebuild.go
// Role: restores the congruence invariant after a batch of Union calls:
// canonicalizes node operands, re-applies C1.merge on classes that
// acquired new congruent parents, and keeps the hashcons table pointing at
// canonical ids (spec §4.2's "rebuild" contract).
package egraph

// Rebuild restores the congruence invariant: after it returns, any two
// enodes with canonically-equal operand tuples share an eclass, and every
// eclass's stored nodes/payload reflect current canonical children.
func (eg *EGraph) Rebuild() error {
	for len(eg.dirty) > 0 {
		todo := eg.dedupDirty()
		eg.dirty = eg.dirty[:0]
		for _, id := range todo {
			if err := eg.repair(id); err != nil {
				return err
			}
		}
	}
	return nil
}

func (eg *EGraph) dedupDirty() []Id {
	seen := make(map[Id]bool, len(eg.dirty))
	out := make([]Id, 0, len(eg.dirty))
	for _, id := range eg.dirty {
		root := eg.Find(id)
		if !seen[root] {
			seen[root] = true
			out = append(out, root)
		}
	}
	return out
}

// repair re-establishes congruence for the eclass that id belonged to when
// it was marked dirty. Processing a class's parent edges may itself trigger
// further unions (when two parents become congruent after canonicalizing
// their children); those are queued back onto eg.dirty by Union and handled
// by a later pass of Rebuild's outer loop.
func (eg *EGraph) repair(id Id) error {
	root := eg.Find(id)
	class, ok := eg.classes[root]
	if !ok {
		// id was itself folded into another class by an earlier repair in
		// this same pass; nothing left to do under the stale id.
		return nil
	}

	oldParents := class.parents
	fresh := make([]parentEdge, 0, len(oldParents))
	for _, p := range oldParents {
		delete(eg.hashcons, p.node.key())
		canon := eg.canonicalize(p.node)
		pid := eg.Find(p.eclass)
		key := canon.key()
		if existing, ok := eg.hashcons[key]; ok {
			if existingRoot := eg.Find(existing); existingRoot != pid {
				newRoot, _, err := eg.Union(existingRoot, pid)
				if err != nil {
					return err
				}
				pid = newRoot
			}
		}
		eg.hashcons[key] = pid
		fresh = append(fresh, parentEdge{node: canon, eclass: pid})
	}

	// The class owning these parents may itself have been merged away by
	// one of the unions just performed; always write the repaired parent
	// set onto whatever eclass is now canonical.
	root = eg.Find(root)
	class = eg.classes[root]
	class.parents = append(class.parents, fresh...)

	// Canonicalizing can make two stored nodes identical (e.g. two instr
	// nodes whose canonicalize children were merged); keep one of each.
	seen := make(map[string]bool, len(class.nodes))
	nodes := class.nodes[:0]
	for _, n := range class.nodes {
		n = eg.canonicalize(n)
		if k := n.key(); !seen[k] {
			seen[k] = true
			nodes = append(nodes, n)
		}
	}
	class.nodes = nodes
	if len(class.nodes) > 0 {
		recomputed, err := MakePayload(eg, class.nodes[0])
		if err != nil {
			return err
		}
		merged, err := MergePayload(class.payload, recomputed)
		if err != nil {
			return err
		}
		class.payload = merged
	}
	return nil
}
