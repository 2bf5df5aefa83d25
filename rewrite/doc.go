// Package rewrite runs a configured list of conditional rewrite rules over
// an *egraph.EGraph to a fixed point or a caller-supplied bound (spec §4.3).
// A Rule pairs an LHS pattern with an Applier closure; Template builds the
// common case — a declarative LHS/RHS pair — while callers needing
// imperative effects (the canonicaliser, the list-simplifier) supply an
// Applier directly, so both styles compose uniformly.
package rewrite
