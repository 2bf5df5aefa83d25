// Package egraph implements a typed, hash-consed congruence-closure term
// graph over the fixed-bitwidth bit-manipulation term language: variables,
// constants, unary/binary operators, and the hole/instruction/apply node
// kinds used to build parameterised instruction templates.
//
// The package provides the classical e-graph operations — Add, Find,
// Union, Rebuild, Search — plus the payload analysis (MakePayload,
// MergePayload) that attaches a typed semantic value to every eclass and
// enforces the bitwidth invariants on every insertion and merge.
//
// See the rewrite, rules, isa, and oracle packages for the saturation
// engine, the concrete rule set, template extraction, and the external
// equivalence oracle built on top of this core.
package egraph
