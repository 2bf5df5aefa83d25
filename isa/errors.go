// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the extraction operations, replacing the
// original implementation's assert_eq!/panic! calls (spec §7: surface
// ambiguity as an error rather than crash).
package isa

import "errors"

var (
	// ErrAmbiguousMatch is returned when an "(instr ?ast ?canonical-args)"
	// search hit more than one substitution within a single eclass — the
	// original implementation assumed this never happens and asserted it.
	ErrAmbiguousMatch = errors.New("isa: instr pattern matched ambiguously within one eclass")

	// ErrAmbiguousInstr is returned when an eclass expected to hold exactly
	// one enode (an instr eclass, or any eclass visited while walking an
	// instruction's AST) in fact holds more than one — the rewrite rules
	// never merge such classes with anything else, so this signals that an
	// unexpected rule fired.
	ErrAmbiguousInstr = errors.New("isa: expected a single enode in this eclass")

	// ErrNotCanonicalArgs is returned when the id passed as an instruction's
	// canonical-args child does not in fact carry a canonical-args node with
	// a well-typed payload.
	ErrNotCanonicalArgs = errors.New("isa: not a well-formed canonical-args eclass")

	// ErrNotEnoughArgs is returned when an AST has more holes than its
	// instruction's canonical-args supplies values for.
	ErrNotEnoughArgs = errors.New("isa: canonical-args ran out while filling holes")
)
