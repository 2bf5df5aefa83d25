// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors and the TypeFault value for the e-graph core.
// The e-graph operations that can fail (Add, Union, Rebuild, Nodes, Class,
// Instantiate) return one of these; ParseOp reports an unknown operator
// with its own formatted error. TypeFault
// is the one kind the core never recovers from (spec §7).
package egraph

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEClass is returned when an Id does not (or no longer) names
	// a live eclass.
	ErrUnknownEClass = errors.New("egraph: unknown eclass")

	// ErrUnboundVar is returned by Instantiate when a pattern variable in
	// the RHS pattern has no binding in the supplied substitution.
	ErrUnboundVar = errors.New("egraph: unbound pattern variable")

	// ErrBadArity is returned when a node is built with the wrong number of
	// children for its Kind.
	ErrBadArity = errors.New("egraph: wrong arity for node kind")
)

// TypeFault reports a violation of the type invariants in spec §3: an
// unexpected child payload on insertion, or a merge between structurally
// unequal payloads. TypeFault is a programmer/input bug per spec §7 and is
// never swallowed; it aborts the operation that discovered it.
type TypeFault struct {
	Node   ENode
	Reason string
}

func (f *TypeFault) Error() string {
	return fmt.Sprintf("egraph: type fault: %s (in %s)", f.Reason, f.Node)
}

func typeFault(n ENode, reason string) error {
	return &TypeFault{Node: n, Reason: reason}
}
