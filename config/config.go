// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: the five enumerated options from spec.md §6, following the
// teacher's functional-options constructor (core.GraphOption,
// builder.Option) for defaulted fields, and explicit field validation (as
// matrix/options.go's gatherOptions does) rather than panicking on bad
// values — config.Validate is called once, explicitly, after the options
// are applied, and returns an error a CLI can report instead of crashing on
// a malformed flag or file.
package config

import (
	"runtime"

	"github.com/sorawee/isaforge/rules"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultIterationLimit bounds the number of saturation passes.
	DefaultIterationLimit = 100

	// DefaultNodeLimit bounds the number of live eclasses during saturation.
	DefaultNodeLimit = 10000

	// DefaultRuleSet selects every rewrite rule SPEC_FULL.md defines.
	DefaultRuleSet = rules.SetDefault
)

// Config is the full set of options governing one discovery run.
type Config struct {
	// IterationLimit is the maximum number of saturation passes before
	// giving up (spec.md §6's iteration_limit).
	IterationLimit int

	// NodeLimit is the maximum number of live eclasses; saturation stops if
	// exceeded (spec.md §6's node_limit).
	NodeLimit int

	// OracleCommand is the command line used to spawn the oracle, program
	// path followed by its arguments (spec.md §6's oracle_command).
	OracleCommand []string

	// Parallelism bounds the number of concurrent oracle validations
	// (spec.md §6's parallelism).
	Parallelism int

	// RuleSet selects which named rewrite rule set to saturate with
	// (spec.md §6's rule_set).
	RuleSet rules.Set
}

// Option configures a Config built by New.
type Option func(*Config)

// WithIterationLimit overrides DefaultIterationLimit.
func WithIterationLimit(n int) Option {
	return func(c *Config) { c.IterationLimit = n }
}

// WithNodeLimit overrides DefaultNodeLimit.
func WithNodeLimit(n int) Option {
	return func(c *Config) { c.NodeLimit = n }
}

// WithParallelism overrides the default of runtime.NumCPU().
func WithParallelism(n int) Option {
	return func(c *Config) { c.Parallelism = n }
}

// WithRuleSet overrides DefaultRuleSet.
func WithRuleSet(s rules.Set) Option {
	return func(c *Config) { c.RuleSet = s }
}

// New builds a Config for the given oracle command line, applying opts over
// the documented defaults. The result is not validated; call Validate before
// using it.
func New(oracleCommand []string, opts ...Option) *Config {
	c := &Config{
		IterationLimit: DefaultIterationLimit,
		NodeLimit:      DefaultNodeLimit,
		OracleCommand:  oracleCommand,
		Parallelism:    runtime.NumCPU(),
		RuleSet:        DefaultRuleSet,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate checks every field's invariant, returning the first violation it
// finds. It never coerces an invalid value into a nearby valid one.
func (c *Config) Validate() error {
	if c.IterationLimit <= 0 {
		return ErrIterationLimit
	}
	if c.NodeLimit <= 0 {
		return ErrNodeLimit
	}
	if len(c.OracleCommand) == 0 {
		return ErrOracleCommand
	}
	if c.Parallelism <= 0 {
		return ErrParallelism
	}
	if _, err := rules.Lookup(c.RuleSet); err != nil {
		return ErrRuleSet
	}
	return nil
}
