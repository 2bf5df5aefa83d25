package isa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorawee/isaforge/egraph"
	"github.com/sorawee/isaforge/isa"
	"github.com/sorawee/isaforge/rewrite"
	"github.com/sorawee/isaforge/rules"
	"github.com/sorawee/isaforge/sexpr"
)

func TestContainsFindsSubterm(t *testing.T) {
	eg := egraph.New()
	programID, err := sexpr.Term(eg, "(binop and 8 (var x 8) (var y 8))")
	require.NoError(t, err)
	varXID, err := sexpr.Term(eg, "(var x 8)")
	require.NoError(t, err)

	ok, err := isa.Contains(eg, varXID, programID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestContainsMissesUnrelatedTerm(t *testing.T) {
	eg := egraph.New()
	programID, err := sexpr.Term(eg, "(binop and 8 (var x 8) (var y 8))")
	require.NoError(t, err)
	varZID, err := sexpr.Term(eg, "(var z 8)")
	require.NoError(t, err)

	ok, err := isa.Contains(eg, varZID, programID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContainsRootMatchesItself(t *testing.T) {
	eg := egraph.New()
	programID, err := sexpr.Term(eg, "(var x 8)")
	require.NoError(t, err)

	ok, err := isa.Contains(eg, programID, programID)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestContainsFindsBithackInstruction ports the original implementation's
// explore_three_expressions scenario: with three bithack programs inserted
// and saturated under the full rule set, the sub/and instruction fused from
// the first program's subtraction must be reported as present there. The
// instruction is looked up by its extracted AST, in which each hole has been
// replaced by a varN variable.
func TestContainsFindsBithackInstruction(t *testing.T) {
	eg := egraph.New()
	bithack1, err := sexpr.Term(eg, "(binop sub 8 (var x 8) (binop and 8 (var x 8) (var y 8)))")
	require.NoError(t, err)
	_, err = sexpr.Term(eg, "(unop not 8 (binop sub 8 (var x 8) (var y 8)))")
	require.NoError(t, err)
	_, err = sexpr.Term(eg, "(binop xor 8 (binop xor 8 (var x 8) (var y 8)) (binop and 8 (var x 8) (var y 8)))")
	require.NoError(t, err)

	_, err = rewrite.Run(eg, rules.All(), 30, 200000)
	require.NoError(t, err)

	instrs, err := isa.FindISAInstructions(eg)
	require.NoError(t, err)

	const want = "(binop sub 8 (var var0 8) (binop and 8 (var var0 8) (var var1 8)))"
	var target *isa.Instruction
	for i := range instrs {
		if instrs[i].AST.Print() == want {
			target = &instrs[i]
			break
		}
	}
	require.NotNil(t, target, "expected saturation to produce %s", want)

	ok, err := isa.Contains(eg, target.EClass, bithack1)
	require.NoError(t, err)
	assert.True(t, ok)
}
