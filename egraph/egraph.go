// SPDX-License-Identifier: MIT
//
// File: egraph.go
// Role: C2 — the e-graph core. Hash-consed union-find of eclasses,
// following the shape of katalvlaran-lvlath/core/types.go's map-backed
// Graph: a constructor, a handful of mutation entry points, and read-only
// iteration helpers.
package egraph

// EClass is an equivalence class of enodes under the current congruence.
// Callers only ever see eclasses by Id; EClass values are owned by EGraph.
type EClass struct {
	id      Id
	nodes   []ENode
	payload Payload
	parents []parentEdge
}

// ID returns this eclass's id as of the last time it was looked up. The
// caller should still call EGraph.Find before relying on it across any
// Union call.
func (c *EClass) ID() Id { return c.id }

// Nodes returns the enodes belonging to this eclass.
func (c *EClass) Nodes() []ENode { return append([]ENode(nil), c.nodes...) }

// Payload returns the semantic value attached to this eclass.
func (c *EClass) Payload() Payload { return c.payload }

type parentEdge struct {
	node   ENode
	eclass Id
}

// EGraph is a congruence-closed, hash-consed DAG of eclasses. The zero
// value is not usable; construct with New.
type EGraph struct {
	parent   []Id // union-find parent pointers, indexed by Id
	classes  map[Id]*EClass
	hashcons map[string]Id
	dirty    []Id
}

// New returns an empty e-graph.
func New() *EGraph {
	return &EGraph{
		classes:  make(map[Id]*EClass),
		hashcons: make(map[string]Id),
	}
}

// Find returns the canonical representative of id's eclass, path-
// compressing the union-find chain as it walks.
func (eg *EGraph) Find(id Id) Id {
	root := id
	for int(root) < len(eg.parent) && eg.parent[root] != root {
		root = eg.parent[root]
	}
	for int(id) < len(eg.parent) && eg.parent[id] != root {
		eg.parent[id], id = root, eg.parent[id]
	}
	return root
}

func (eg *EGraph) newID() Id {
	id := Id(len(eg.parent))
	eg.parent = append(eg.parent, id)
	return id
}

// canonicalize returns a copy of n with every child replaced by its current
// canonical id.
func (eg *EGraph) canonicalize(n ENode) ENode {
	if len(n.Children) == 0 {
		return n
	}
	out := n
	out.Children = make([]Id, len(n.Children))
	for i, c := range n.Children {
		out.Children[i] = eg.Find(c)
	}
	return out
}

// Add inserts a node, returning the id of an existing equivalent eclass if
// one is hash-consed already, or a freshly created one otherwise. The
// node's payload is computed via MakePayload; a TypeFault aborts the
// insertion without mutating the e-graph.
func (eg *EGraph) Add(n ENode) (Id, error) {
	if arity := Arity(n.Kind); arity >= 0 && arity != len(n.Children) {
		return 0, ErrBadArity
	}
	canon := eg.canonicalize(n)
	key := canon.key()
	if id, ok := eg.hashcons[key]; ok {
		return eg.Find(id), nil
	}
	payload, err := MakePayload(eg, canon)
	if err != nil {
		return 0, err
	}
	id := eg.newID()
	eg.classes[id] = &EClass{id: id, nodes: []ENode{canon}, payload: payload}
	eg.hashcons[key] = id
	for _, c := range canon.Children {
		cc := eg.Find(c)
		cls := eg.classes[cc]
		cls.parents = append(cls.parents, parentEdge{node: canon, eclass: id})
	}
	return id, nil
}

// Union merges the eclasses of a and b. It returns the canonical id of the
// merged class and whether a new equality was introduced (false if a and b
// were already in the same class). Payloads must already be structurally
// equal (spec §3); a disagreement is a TypeFault and the e-graph is left
// unchanged.
func (eg *EGraph) Union(a, b Id) (Id, bool, error) {
	ra, rb := eg.Find(a), eg.Find(b)
	if ra == rb {
		return ra, false, nil
	}
	ca, cb := eg.classes[ra], eg.classes[rb]
	merged, err := MergePayload(ca.payload, cb.payload)
	if err != nil {
		return 0, false, err
	}

	// Union by size: fold the smaller class into the larger one so that
	// path lengths stay short on average.
	keep, drop := ra, rb
	if len(ca.nodes)+len(ca.parents) < len(cb.nodes)+len(cb.parents) {
		keep, drop = rb, ra
	}
	kept, dropped := eg.classes[keep], eg.classes[drop]

	eg.parent[drop] = keep
	kept.nodes = append(kept.nodes, dropped.nodes...)
	kept.parents = append(kept.parents, dropped.parents...)
	kept.payload = merged
	delete(eg.classes, drop)

	eg.dirty = append(eg.dirty, keep)
	return keep, true, nil
}

// Classes returns the current set of canonical eclass ids.
func (eg *EGraph) Classes() []Id {
	out := make([]Id, 0, len(eg.classes))
	for id := range eg.classes {
		out = append(out, id)
	}
	return out
}

// NumClasses reports the number of live eclasses, the quantity spec §6's
// node_limit bounds.
func (eg *EGraph) NumClasses() int { return len(eg.classes) }

// Nodes returns the enodes in id's canonical eclass.
func (eg *EGraph) Nodes(id Id) ([]ENode, error) {
	c, ok := eg.classes[eg.Find(id)]
	if !ok {
		return nil, ErrUnknownEClass
	}
	return c.Nodes(), nil
}

// Class returns the canonical EClass for id.
func (eg *EGraph) Class(id Id) (*EClass, error) {
	c, ok := eg.classes[eg.Find(id)]
	if !ok {
		return nil, ErrUnknownEClass
	}
	return c, nil
}
