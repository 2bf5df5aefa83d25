// Package rules holds the concrete rewrite.Rule values for this language:
// the seven hole-introduction/fusion rules (spec §4.4 C4) as declarative
// rewrite.Template rules authored through sexpr.MustPattern, and the two
// imperative rules — canonicalize (C5) and simplify-concat (C4) — as
// hand-written rewrite.Appliers, ported from the original Rust
// implementation's custom egg::Applier impls. ruleset.go exposes a
// string-keyed registry so config.Config.RuleSet can select among them.
//
// UnOp has only one operand, so Unary1 (hole replaces it) already covers the
// only non-trivial case; there is no "introduce-hole-unary-left/right" pair
// the way BinOp gets IntroduceHoleOpLeft/Right, and none is missing.
package rules
