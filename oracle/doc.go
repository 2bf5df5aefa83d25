// Package oracle renders an extracted instruction AST as a Racket/Rosette
// bitvector expression and checks it for semantic equivalence against an
// external solver-backed oracle process (spec §5, C7), then fans the check
// out across many candidates at once (SPEC_FULL.md §4's supplemented
// parallel validation boundary).
package oracle
