// SPDX-License-Identifier: MIT
//
// File: hole_rules.go
// Role: C4 — the hole-introduction and operator-fusion rules, ported
// verbatim (same LHS/RHS shapes) from original_source/rust/src/language.rs's
// introduce_hole_var/fuse_op/introduce_hole_op_{left,right,both}/unary{0,1}.
package rules

import (
	"github.com/sorawee/isaforge/rewrite"
	"github.com/sorawee/isaforge/sexpr"
)

// IntroduceHoleVar lifts a bare variable into a single-hole instruction
// whose argument list is just that variable.
func IntroduceHoleVar() rewrite.Rule {
	return rewrite.Template("introduce-hole-var",
		sexpr.MustPattern("(var ?a ?bw)"),
		sexpr.MustPattern("(apply (instr (hole ?bw) (canonicalize (list (var ?a ?bw)))) (list (var ?a ?bw)))"),
	)
}

// FuseOp fuses a binop of two already-instruction-backed operands into one
// instruction whose AST is the binop applied to the two child ASTs, whose
// argument list is the concatenation of the two children's argument lists.
func FuseOp() rewrite.Rule {
	lhs := sexpr.MustPattern(`(binop ?op ?bw
		(apply (instr ?ast0 ?canonical-args0) ?args0)
		(apply (instr ?ast1 ?canonical-args1) ?args1))`)
	rhs := sexpr.MustPattern(`(apply
		(instr (binop ?op ?bw ?ast0 ?ast1) (canonicalize (concat ?args0 ?args1)))
		(concat ?args0 ?args1))`)
	return rewrite.Template("fuse-op", lhs, rhs)
}

// IntroduceHoleOpLeft fuses a binop but replaces the left operand's AST with
// a hole, keeping that operand's whole instruction application as an
// argument instead of inlining its AST.
func IntroduceHoleOpLeft() rewrite.Rule {
	lhs := sexpr.MustPattern(`(binop ?op ?bw
		(apply (instr ?ast0 ?canonical-args0) ?args0)
		(apply (instr ?ast1 ?canonical-args1) ?args1))`)
	rhs := sexpr.MustPattern(`(apply
		(instr
		 (binop ?op ?bw (hole ?bw) ?ast1)
		 (canonicalize (concat (list (apply (instr ?ast0 ?canonical-args0) ?args0)) ?args1)))
		(concat (list (apply (instr ?ast0 ?canonical-args0) ?args0)) ?args1))`)
	return rewrite.Template("introduce-hole-op-left", lhs, rhs)
}

// IntroduceHoleOpRight is IntroduceHoleOpLeft's mirror image.
func IntroduceHoleOpRight() rewrite.Rule {
	lhs := sexpr.MustPattern(`(binop ?op ?bw
		(apply (instr ?ast0 ?canonical-args0) ?args0)
		(apply (instr ?ast1 ?canonical-args1) ?args1))`)
	rhs := sexpr.MustPattern(`(apply
		(instr
		 (binop ?op ?bw ?ast0 (hole ?bw))
		 (canonicalize (concat ?args0 (list (apply (instr ?ast1 ?canonical-args1) ?args1)))))
		(concat ?args0 (list (apply (instr ?ast1 ?canonical-args1) ?args1))))`)
	return rewrite.Template("introduce-hole-op-right", lhs, rhs)
}

// IntroduceHoleOpBoth replaces both operands' ASTs with holes, keeping both
// whole instruction applications as the two-element argument list.
func IntroduceHoleOpBoth() rewrite.Rule {
	lhs := sexpr.MustPattern(`(binop ?op ?bw
		(apply (instr ?ast0 ?canonical-args0) ?args0)
		(apply (instr ?ast1 ?canonical-args1) ?args1))`)
	rhs := sexpr.MustPattern(`(apply
		(instr
		 (binop ?op ?bw (hole ?bw) (hole ?bw))
		 (canonicalize
		  (list
		   (apply (instr ?ast0 ?canonical-args0) ?args0)
		   (apply (instr ?ast1 ?canonical-args1) ?args1))))
		(list
		 (apply (instr ?ast0 ?canonical-args0) ?args0)
		 (apply (instr ?ast1 ?canonical-args1) ?args1)))`)
	return rewrite.Template("introduce-hole-op-both", lhs, rhs)
}

// Unary0 fuses a unop directly onto its already-instruction-backed operand,
// the unary analogue of FuseOp.
func Unary0() rewrite.Rule {
	lhs := sexpr.MustPattern("(unop ?op ?bw (apply (instr ?ast ?canonical-args) ?args))")
	rhs := sexpr.MustPattern("(apply (instr (unop ?op ?bw ?ast) (canonicalize ?args)) ?args)")
	return rewrite.Template("unary0", lhs, rhs)
}

// Unary1 is Unary0 but replaces the operand's AST with a hole, keeping its
// whole instruction application as the single-element argument list.
func Unary1() rewrite.Rule {
	lhs := sexpr.MustPattern("(unop ?op ?bw (apply (instr ?ast ?canonical-args) ?args))")
	rhs := sexpr.MustPattern(`(apply
		(instr (unop ?op ?bw (hole ?bw)) (canonicalize (list (apply (instr ?ast ?canonical-args) ?args))))
		(list (apply (instr ?ast ?canonical-args) ?args)))`)
	return rewrite.Template("unary1", lhs, rhs)
}

// HoleRules returns the seven declarative hole-introduction/fusion rules,
// in the same order the original implementation's rewrite_new test runs
// them.
func HoleRules() []rewrite.Rule {
	return []rewrite.Rule{
		IntroduceHoleVar(),
		FuseOp(),
		IntroduceHoleOpBoth(),
		IntroduceHoleOpLeft(),
		IntroduceHoleOpRight(),
		Unary0(),
		Unary1(),
	}
}
