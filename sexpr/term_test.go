package sexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorawee/isaforge/egraph"
	"github.com/sorawee/isaforge/sexpr"
)

func TestBuildTermVar(t *testing.T) {
	eg := egraph.New()
	id, err := sexpr.Term(eg, "(var x 8)")
	require.NoError(t, err)

	nodes, err := eg.Nodes(id)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, egraph.KindVar, nodes[0].Kind)

	class, err := eg.Class(id)
	require.NoError(t, err)
	assert.Equal(t, egraph.Payload{Kind: egraph.PayloadSignal, BW: 8}, class.Payload())
}

func TestBuildTermBinOp(t *testing.T) {
	eg := egraph.New()
	id, err := sexpr.Term(eg, "(binop and 8 (var x 8) (var y 8))")
	require.NoError(t, err)

	str, err := sexpr.Print(eg, id)
	require.NoError(t, err)
	assert.Equal(t, "(binop and 8 (var x 8) (var y 8))", str)
}

func TestBuildTermRejectsUnknownHead(t *testing.T) {
	eg := egraph.New()
	_, err := sexpr.Term(eg, "(frobnicate 1 2)")
	assert.Error(t, err)
}

func TestBuildTermRejectsBadArity(t *testing.T) {
	eg := egraph.New()
	_, err := sexpr.Term(eg, "(var x)")
	assert.ErrorIs(t, err, egraph.ErrBadArity)
}
