package isa_test

import (
	"fmt"

	"github.com/sorawee/isaforge/egraph"
	"github.com/sorawee/isaforge/isa"
	"github.com/sorawee/isaforge/sexpr"
)

// ExampleFindISAInstructions extracts a single instr eclass's AST, filling
// each hole with the variable named by its position in canonical-args.
func ExampleFindISAInstructions() {
	eg := egraph.New()
	if _, err := sexpr.Term(eg, "(instr (binop and 8 (hole 8) (hole 8)) (canonical-args 0 1))"); err != nil {
		fmt.Println("insert failed:", err)
		return
	}

	instrs, err := isa.FindISAInstructions(eg)
	if err != nil {
		fmt.Println("find failed:", err)
		return
	}

	fmt.Println(instrs[0].AST.Print())
	// Output: (binop and 8 (var var0 8) (var var1 8))
}
