package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorawee/isaforge/rules"
)

func TestLookupDefaultIncludesCanonicalizer(t *testing.T) {
	rs, err := rules.Lookup(rules.SetDefault)
	require.NoError(t, err)
	names := make(map[string]bool, len(rs))
	for _, r := range rs {
		names[r.Name] = true
	}
	assert.True(t, names["canonicalize"])
	assert.True(t, names["simplify-concat"])
	assert.True(t, names["introduce-hole-var"])
}

func TestLookupHolesOnlyExcludesCanonicalizer(t *testing.T) {
	rs, err := rules.Lookup(rules.SetHolesOnly)
	require.NoError(t, err)
	for _, r := range rs {
		assert.NotEqual(t, "canonicalize", r.Name)
		assert.NotEqual(t, "simplify-concat", r.Name)
	}
}

func TestLookupUnknownSetErrors(t *testing.T) {
	_, err := rules.Lookup(rules.Set("nonexistent"))
	assert.Error(t, err)
}
