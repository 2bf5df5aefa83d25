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

// TestCanonicalizeRenumbersByFirstOccurrence ports the original
// implementation's test_canonicalize: (canonicalize (list 1 3 2 3))
// rewrites to (canonical-args 0 1 2 1).
func TestCanonicalizeRenumbersByFirstOccurrence(t *testing.T) {
	eg := egraph.New()
	id, err := sexpr.Term(eg, "(canonicalize (list 1 3 2 3))")
	require.NoError(t, err)

	result, err := rewrite.Run(eg, []rewrite.Rule{rules.Canonicalize()}, 10, 10000)
	require.NoError(t, err)
	assert.True(t, result.Saturated())

	expectedID, err := sexpr.Term(eg, "(canonical-args 0 1 2 1)")
	require.NoError(t, err)
	assert.Equal(t, eg.Find(expectedID), eg.Find(id))
}
