// SPDX-License-Identifier: MIT
//
// File: pattern.go
// Role: lowers a parsed SExpr into an egraph.Pattern for rule authoring
// (spec §4.4/§6), the Go analogue of the Rust implementation's rewrite!
// string-pattern macro. "?name" atoms become pattern variables.
package sexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sorawee/isaforge/egraph"
)

// BuildPattern lowers s into an egraph.Pattern.
func BuildPattern(s *SExpr) (*egraph.Pattern, error) {
	if s.Atom != nil {
		atom := *s.Atom
		if strings.HasPrefix(atom, "?") {
			return egraph.PVar(atom[1:]), nil
		}
		return patternAtom(atom)
	}
	if len(s.List) == 0 {
		return nil, fmt.Errorf("sexpr: empty list has no head")
	}
	head := s.List[0]
	if head.Atom == nil {
		return nil, fmt.Errorf("sexpr: list head must be a bare symbol")
	}
	kind, err := kindForHead(*head.Atom)
	if err != nil {
		return nil, err
	}
	args := s.List[1:]
	children := make([]*egraph.Pattern, len(args))
	for i, a := range args {
		child, err := BuildPattern(a)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return egraph.PNode(kind, children...), nil
}

// Pattern parses src and builds it into a Pattern in one step.
func Pattern(src string) (*egraph.Pattern, error) {
	s, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return BuildPattern(s)
}

// MustPattern is Pattern, panicking on error. Intended for package-level
// rule tables where the pattern text is a compile-time constant, mirroring
// how the rules package builds its LHS/RHS pairs.
func MustPattern(src string) *egraph.Pattern {
	p, err := Pattern(src)
	if err != nil {
		panic(fmt.Sprintf("sexpr: MustPattern(%q): %v", src, err))
	}
	return p
}

func patternAtom(atom string) (*egraph.Pattern, error) {
	if n, err := strconv.ParseInt(atom, 10, 64); err == nil {
		return egraph.PNum(n), nil
	}
	if op, err := egraph.ParseOp(atom); err == nil {
		return egraph.POp(op), nil
	}
	return egraph.PStr(atom), nil
}
