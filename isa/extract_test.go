package isa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorawee/isaforge/egraph"
	"github.com/sorawee/isaforge/isa"
	"github.com/sorawee/isaforge/sexpr"
)

func TestExtractASTFillsDistinctHoles(t *testing.T) {
	eg := egraph.New()
	astID, err := sexpr.Term(eg, "(binop and 8 (hole 8) (hole 8))")
	require.NoError(t, err)
	cargsID, err := sexpr.Term(eg, "(canonical-args 0 1)")
	require.NoError(t, err)

	expr, err := isa.ExtractAST(eg, astID, cargsID)
	require.NoError(t, err)
	assert.Equal(t, "(binop and 8 (var var0 8) (var var1 8))", expr.Print())
}

func TestExtractASTRepeatedArgSharesName(t *testing.T) {
	eg := egraph.New()
	astID, err := sexpr.Term(eg, "(binop and 8 (hole 8) (hole 8))")
	require.NoError(t, err)
	cargsID, err := sexpr.Term(eg, "(canonical-args 0 0)")
	require.NoError(t, err)

	expr, err := isa.ExtractAST(eg, astID, cargsID)
	require.NoError(t, err)
	assert.Equal(t, "(binop and 8 (var var0 8) (var var0 8))", expr.Print())
}

func TestFindISAInstructionsExtractsOne(t *testing.T) {
	eg := egraph.New()
	_, err := sexpr.Term(eg, "(instr (binop and 8 (hole 8) (hole 8)) (canonical-args 0 1))")
	require.NoError(t, err)

	instrs, err := isa.FindISAInstructions(eg)
	require.NoError(t, err)
	require.Len(t, instrs, 1)
	assert.Equal(t, "(binop and 8 (var var0 8) (var var1 8))", instrs[0].AST.Print())
}

func TestExtractASTNotEnoughArgsErrors(t *testing.T) {
	eg := egraph.New()
	astID, err := sexpr.Term(eg, "(binop and 8 (hole 8) (hole 8))")
	require.NoError(t, err)
	cargsID, err := sexpr.Term(eg, "(canonical-args 0)")
	require.NoError(t, err)

	_, err = isa.ExtractAST(eg, astID, cargsID)
	assert.ErrorIs(t, err, isa.ErrNotEnoughArgs)
}
