// SPDX-License-Identifier: MIT
//
// File: ruleset.go
// Role: spec §6's named rule_set option: a string-keyed registry of
// pre-built rule lists, in the spirit of
// katalvlaran-lvlath/builder/variants.go's keyed-constructor tables.
package rules

import (
	"fmt"

	"github.com/sorawee/isaforge/rewrite"
)

// Set names a pre-built rule selection.
type Set string

const (
	// SetDefault is the full rule list: every hole-introduction/fusion rule
	// plus the canonicalizer and list simplifier, in the order the original
	// implementation's rewrite_new test runs them.
	SetDefault Set = "default"

	// SetHolesOnly omits the canonicalizer and list simplifier, useful for
	// inspecting the raw fusion lattice before canonical-args collapses it.
	SetHolesOnly Set = "holes-only"
)

// All returns the default rule list.
func All() []rewrite.Rule {
	rs := HoleRules()
	rs = append(rs, Canonicalize(), SimplifyConcat())
	return rs
}

// Lookup resolves a named Set, as referenced by config.Config.RuleSet. An
// unrecognized name is a configuration error, not a TypeFault.
func Lookup(name Set) ([]rewrite.Rule, error) {
	switch name {
	case SetDefault:
		return All(), nil
	case SetHolesOnly:
		return HoleRules(), nil
	default:
		return nil, fmt.Errorf("rules: unknown rule set %q", name)
	}
}
