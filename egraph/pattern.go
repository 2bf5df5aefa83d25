// SPDX-License-Identifier: MIT
//
// File: pattern.go
// Role: e-matching (part of C2's "search" operation) and RHS instantiation,
// the two primitives the rewrite engine (C3) and rule set (C4/C5) are built
// from.
package egraph

// Pattern is either a pattern variable (IsVar) that matches any eclass, or
// a concrete node shape whose children are themselves Patterns. The sexpr
// package builds Patterns from the same prefix s-expression syntax used for
// ground terms, with "?name" atoms becoming variable leaves.
type Pattern struct {
	IsVar    bool
	Var      string
	Kind     Kind
	OpVal    Op
	NumVal   int64
	StrVal   string
	Children []*Pattern
}

// PVar constructs a pattern variable.
func PVar(name string) *Pattern { return &Pattern{IsVar: true, Var: name} }

// PNode constructs a pattern matching a concrete node shape.
func PNode(k Kind, children ...*Pattern) *Pattern {
	return &Pattern{Kind: k, Children: children}
}

// POp, PNum, PStr construct literal leaf patterns.
func POp(op Op) *Pattern       { return &Pattern{Kind: KindOp, OpVal: op} }
func PNum(v int64) *Pattern    { return &Pattern{Kind: KindNum, NumVal: v} }
func PStr(s string) *Pattern   { return &Pattern{Kind: KindString, StrVal: s} }

// Subst binds pattern variable names to eclass ids.
type Subst map[string]Id

func (s Subst) clone() Subst {
	out := make(Subst, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Match groups every substitution that makes pattern hold, by the eclass in
// which the match was found (spec §4.2's "search" contract).
type Match struct {
	EClass Id
	Substs []Subst
}

// Search enumerates every substitution over pattern's variables such that
// the instantiated pattern exists in the e-graph, grouped by eclass.
func (eg *EGraph) Search(pattern *Pattern) []Match {
	var out []Match
	for _, id := range eg.Classes() {
		substs := eg.matchEClass(pattern, id)
		if len(substs) > 0 {
			out = append(out, Match{EClass: id, Substs: substs})
		}
	}
	return out
}

func (eg *EGraph) matchEClass(pat *Pattern, id Id) []Subst {
	if pat.IsVar {
		return []Subst{{pat.Var: eg.Find(id)}}
	}
	class, ok := eg.classes[eg.Find(id)]
	if !ok {
		return nil
	}
	var out []Subst
	for _, node := range class.nodes {
		if !leafMatches(pat, node) {
			continue
		}
		if len(pat.Children) != len(node.Children) {
			continue
		}
		combos := []Subst{{}}
		ok := true
		for i, childPat := range pat.Children {
			childSubsts := eg.matchEClass(childPat, node.Children[i])
			if len(childSubsts) == 0 {
				ok = false
				break
			}
			combos = combineSubsts(combos, childSubsts)
			if len(combos) == 0 {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, combos...)
		}
	}
	return out
}

func leafMatches(pat *Pattern, n ENode) bool {
	if pat.Kind != n.Kind {
		return false
	}
	switch pat.Kind {
	case KindOp:
		return pat.OpVal == n.OpVal
	case KindNum:
		return pat.NumVal == n.NumVal
	case KindString:
		return pat.StrVal == n.StrVal
	default:
		return true
	}
}

// combineSubsts computes the cartesian product of a and b, dropping any
// pairing where a shared variable is bound inconsistently.
func combineSubsts(a, b []Subst) []Subst {
	out := make([]Subst, 0, len(a)*len(b))
	for _, sa := range a {
		for _, sb := range b {
			merged := sa.clone()
			ok := true
			for k, v := range sb {
				if existing, has := merged[k]; has && existing != v {
					ok = false
					break
				}
				merged[k] = v
			}
			if ok {
				out = append(out, merged)
			}
		}
	}
	return out
}

// Instantiate materializes pat under subst, adding whatever new nodes are
// needed and returning the resulting eclass id. Used to build the RHS of a
// declarative rewrite rule (spec §4.4).
func Instantiate(eg *EGraph, pat *Pattern, subst Subst) (Id, error) {
	if pat.IsVar {
		id, ok := subst[pat.Var]
		if !ok {
			return 0, ErrUnboundVar
		}
		return eg.Find(id), nil
	}
	children := make([]Id, len(pat.Children))
	for i, c := range pat.Children {
		id, err := Instantiate(eg, c, subst)
		if err != nil {
			return 0, err
		}
		children[i] = id
	}
	return eg.Add(ENode{
		Kind:     pat.Kind,
		Children: children,
		OpVal:    pat.OpVal,
		NumVal:   pat.NumVal,
		StrVal:   pat.StrVal,
	})
}
