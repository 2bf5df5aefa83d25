// SPDX-License-Identifier: MIT
//
// File: translate.go
// Role: verbatim port of language.rs's to_racket/to_racket_helper — renders
// an extracted ground term as a Racket/Rosette bitvector expression string,
// and collects every free variable's bitwidth along the way.
package oracle

import (
	"fmt"

	"github.com/sorawee/isaforge/egraph"
	"github.com/sorawee/isaforge/isa"
)

// Translate renders e as a Racket bitvector expression. ok is false for node
// kinds the original implementation also declines to translate: Apply,
// Hole, List, Concat, Op, CanonicalArgs, Canonicalize, Instr — none of these
// denote a value, so call_racket never reaches them either.
func Translate(e *isa.Expr) (expr string, bitwidths map[string]int, ok bool) {
	bitwidths = map[string]int{}
	expr, ok = translate(e, bitwidths)
	return expr, bitwidths, ok
}

func translate(e *isa.Expr, bitwidths map[string]int) (string, bool) {
	switch e.Kind {
	case egraph.KindVar:
		name := e.Children[0].StrVal
		bw := int(e.Children[1].NumVal)
		bitwidths[name] = bw
		return name, true
	case egraph.KindConst:
		return fmt.Sprintf("(bv %d %d)", e.Children[0].NumVal, e.Children[1].NumVal), true
	case egraph.KindUnOp:
		op, ok := racketUnOp(e.Children[0].OpVal)
		if !ok {
			return "", false
		}
		a, ok := translate(e.Children[2], bitwidths)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("(%s %s)", op, a), true
	case egraph.KindBinOp:
		op, ok := racketBinOp(e.Children[0].OpVal)
		if !ok {
			return "", false
		}
		a, ok := translate(e.Children[2], bitwidths)
		if !ok {
			return "", false
		}
		b, ok := translate(e.Children[3], bitwidths)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("(%s %s %s)", op, a, b), true
	default:
		return "", false
	}
}

func racketUnOp(op egraph.Op) (string, bool) {
	if op == egraph.OpNot {
		return "bvnot", true
	}
	return "", false
}

func racketBinOp(op egraph.Op) (string, bool) {
	switch op {
	case egraph.OpAnd:
		return "bvand", true
	case egraph.OpOr:
		return "bvor", true
	case egraph.OpXor:
		return "bvxor", true
	case egraph.OpSub:
		return "bvsub", true
	case egraph.OpAsr:
		return "bvashr", true
	default:
		return "", false
	}
}
