package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorawee/isaforge/egraph"
	"github.com/sorawee/isaforge/isa"
	"github.com/sorawee/isaforge/oracle"
)

func varExpr(name string, bw int64) *isa.Expr {
	return &isa.Expr{Kind: egraph.KindVar, Children: []*isa.Expr{
		{Kind: egraph.KindString, StrVal: name},
		{Kind: egraph.KindNum, NumVal: bw},
	}}
}

func constExpr(val, bw int64) *isa.Expr {
	return &isa.Expr{Kind: egraph.KindConst, Children: []*isa.Expr{
		{Kind: egraph.KindNum, NumVal: val},
		{Kind: egraph.KindNum, NumVal: bw},
	}}
}

func binExpr(op egraph.Op, bw int64, a, b *isa.Expr) *isa.Expr {
	return &isa.Expr{Kind: egraph.KindBinOp, Children: []*isa.Expr{
		{Kind: egraph.KindOp, OpVal: op},
		{Kind: egraph.KindNum, NumVal: bw},
		a, b,
	}}
}

// TestTranslateCeilAvg ports the original's ceil_avg_to_racket test:
// (x | y) - ((x ^ y) >> 1) over 8-bit operands.
func TestTranslateCeilAvg(t *testing.T) {
	x := varExpr("x", 8)
	y := varExpr("y", 8)
	expr := binExpr(egraph.OpSub, 8,
		binExpr(egraph.OpOr, 8, x, y),
		binExpr(egraph.OpAsr, 8, binExpr(egraph.OpXor, 8, x, y), constExpr(1, 8)))

	racket, bitwidths, ok := oracle.Translate(expr)
	require.True(t, ok)
	assert.Equal(t, "(bvsub (bvor x y) (bvashr (bvxor x y) (bv 1 8)))", racket)
	assert.Equal(t, map[string]int{"x": 8, "y": 8}, bitwidths)
}

func TestTranslateUnaryNot(t *testing.T) {
	expr := &isa.Expr{Kind: egraph.KindUnOp, Children: []*isa.Expr{
		{Kind: egraph.KindOp, OpVal: egraph.OpNot},
		{Kind: egraph.KindNum, NumVal: 8},
		varExpr("x", 8),
	}}

	racket, bitwidths, ok := oracle.Translate(expr)
	require.True(t, ok)
	assert.Equal(t, "(bvnot x)", racket)
	assert.Equal(t, map[string]int{"x": 8}, bitwidths)
}

func TestTranslateDeclinesUnsupportedKind(t *testing.T) {
	_, _, ok := oracle.Translate(&isa.Expr{Kind: egraph.KindList})
	assert.False(t, ok)
}
