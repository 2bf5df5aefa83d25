// SPDX-License-Identifier: MIT
//
// File: kind.go
// Role: maps a list head symbol to the egraph.Kind it denotes (spec §3's
// node-kind vocabulary), and back via Kind.String for the printer.
package sexpr

import (
	"fmt"

	"github.com/sorawee/isaforge/egraph"
)

func kindForHead(head string) (egraph.Kind, error) {
	switch head {
	case "var":
		return egraph.KindVar, nil
	case "const":
		return egraph.KindConst, nil
	case "unop":
		return egraph.KindUnOp, nil
	case "binop":
		return egraph.KindBinOp, nil
	case "hole":
		return egraph.KindHole, nil
	case "list":
		return egraph.KindList, nil
	case "concat":
		return egraph.KindConcat, nil
	case "canonicalize":
		return egraph.KindCanonicalize, nil
	case "canonical-args":
		return egraph.KindCanonicalArgs, nil
	case "instr":
		return egraph.KindInstr, nil
	case "apply":
		return egraph.KindApply, nil
	default:
		return 0, fmt.Errorf("sexpr: unknown node kind %q", head)
	}
}
