package sexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorawee/isaforge/egraph"
	"github.com/sorawee/isaforge/sexpr"
)

func TestBuildPatternVarLeaf(t *testing.T) {
	pat, err := sexpr.Pattern("?x")
	require.NoError(t, err)
	assert.True(t, pat.IsVar)
	assert.Equal(t, "x", pat.Var)
}

func TestBuildPatternMatchesGroundTerm(t *testing.T) {
	eg := egraph.New()
	_, err := sexpr.Term(eg, "(binop and 8 (var x 8) (var x 8))")
	require.NoError(t, err)

	pat := sexpr.MustPattern("(binop ?op ?bw ?a ?a)")
	matches := eg.Search(pat)
	require.Len(t, matches, 1)
	require.Len(t, matches[0].Substs, 1)
	assert.Contains(t, matches[0].Substs[0], "op")
	assert.Contains(t, matches[0].Substs[0], "bw")
	assert.Contains(t, matches[0].Substs[0], "a")
}

func TestMustPatternPanicsOnUnknownHead(t *testing.T) {
	assert.Panics(t, func() {
		sexpr.MustPattern("(frobnicate ?x)")
	})
}
