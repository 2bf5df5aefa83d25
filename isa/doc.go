// Package isa extracts candidate instructions from a saturated e-graph
// (spec §5, C6/C8) and supplements the distilled spec with the original
// implementation's whole-egraph extraction sweep (SPEC_FULL.md §4): finding
// every "(instr ast canonical-args)" eclass and materializing its AST with
// holes filled back in by synthesized variable names, testing whether a
// given instruction's eclass is reachable from a program's root, and
// extracting a smallest-size ground term for every eclass in one pass.
package isa
