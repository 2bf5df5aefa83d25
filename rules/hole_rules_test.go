package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorawee/isaforge/egraph"
	"github.com/sorawee/isaforge/rewrite"
	"github.com/sorawee/isaforge/rules"
	"github.com/sorawee/isaforge/sexpr"
)

// TestIntroduceHoleVarWrapsVariable mirrors the original implementation's
// rewrite_new scenario one rule at a time: a bare variable gains an
// instruction-application form.
func TestIntroduceHoleVarWrapsVariable(t *testing.T) {
	eg := egraph.New()
	id, err := sexpr.Term(eg, "(var a 8)")
	require.NoError(t, err)

	result, err := rewrite.Run(eg, []rewrite.Rule{rules.IntroduceHoleVar()}, 10, 10000)
	require.NoError(t, err)
	assert.True(t, result.Saturated())

	applyPat := sexpr.MustPattern("(apply (instr (hole ?bw) ?cargs) (list (var a 8)))")
	matches := eg.Search(applyPat)
	found := false
	for _, m := range matches {
		if m.EClass == eg.Find(id) {
			found = true
		}
	}
	assert.True(t, found, "expected the var eclass to gain an apply/instr/hole form")
}

// TestRewriteAndOfVarAndOr ports the original implementation's rewrite_new
// test: (binop and 8 (var a 8) (binop or 8 (var b 8) (var a 8))) run through
// the full default rule set should produce at least one instr eclass.
func TestRewriteAndOfVarAndOr(t *testing.T) {
	eg := egraph.New()
	_, err := sexpr.Term(eg, "(binop and 8 (var a 8) (binop or 8 (var b 8) (var a 8)))")
	require.NoError(t, err)

	_, err = rewrite.Run(eg, rules.All(), 20, 100000)
	require.NoError(t, err)

	instrPat := sexpr.MustPattern("(instr ?ast ?cargs)")
	matches := eg.Search(instrPat)
	assert.NotEmpty(t, matches, "expected at least one instr eclass after saturation")
}

// TestCeilAvgSaturates runs the spec's scenario-1 ceiling-average expression
// through the full rule set and checks it saturates without a TypeFault.
func TestCeilAvgSaturates(t *testing.T) {
	eg := egraph.New()
	_, err := sexpr.Term(eg, "(binop sub 8 (binop or 8 (var x 8) (var y 8)) (binop asr 8 (binop xor 8 (var x 8) (var y 8)) (const 1 8)))")
	require.NoError(t, err)

	result, err := rewrite.Run(eg, rules.All(), 30, 200000)
	require.NoError(t, err)
	assert.Greater(t, result.Iterations, 0)
}
