package egraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorawee/isaforge/egraph"
)

func TestSearchFindsBinOpByOperatorVariable(t *testing.T) {
	eg := egraph.New()
	x := addVar(t, eg, "x", 8)
	y := addVar(t, eg, "y", 8)
	_ = addBinOp(t, eg, egraph.OpAnd, 8, x, y)
	_ = addBinOp(t, eg, egraph.OpOr, 8, x, y)

	// Pattern: (binop ?op 8 ?a ?b)
	bw8, err := eg.Add(egraph.ENode{Kind: egraph.KindNum, NumVal: 8})
	require.NoError(t, err)
	pat := egraph.PNode(egraph.KindBinOp, egraph.PVar("op"), egraph.PVar("bw"), egraph.PVar("a"), egraph.PVar("b"))
	matches := eg.Search(pat)

	// Exactly two eclasses should match: the AND and OR binops.
	assert.Len(t, matches, 2)
	for _, m := range matches {
		require.Len(t, m.Substs, 1)
		assert.Equal(t, eg.Find(bw8), m.Substs[0]["bw"])
	}
}

func TestInstantiateBuildsFreshTerm(t *testing.T) {
	eg := egraph.New()
	x := addVar(t, eg, "x", 8)
	opID, err := eg.Add(egraph.ENode{Kind: egraph.KindOp, OpVal: egraph.OpNot})
	require.NoError(t, err)
	bwID, err := eg.Add(egraph.ENode{Kind: egraph.KindNum, NumVal: 8})
	require.NoError(t, err)

	pat := egraph.PNode(egraph.KindUnOp, egraph.PVar("op"), egraph.PVar("bw"), egraph.PVar("arg"))
	subst := egraph.Subst{"op": opID, "bw": bwID, "arg": x}

	id, err := egraph.Instantiate(eg, pat, subst)
	require.NoError(t, err)

	direct := addUnOp(t, eg, egraph.OpNot, 8, x)
	assert.Equal(t, eg.Find(direct), eg.Find(id))
}

func TestInstantiateUnboundVariableErrors(t *testing.T) {
	eg := egraph.New()
	pat := egraph.PVar("missing")
	_, err := egraph.Instantiate(eg, pat, egraph.Subst{})
	require.ErrorIs(t, err, egraph.ErrUnboundVar)
}
