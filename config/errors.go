// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for Config.Validate, following the teacher's
// "sentinel at the boundary" convention (matrix/errors.go).
package config

import "errors"

var (
	// ErrIterationLimit is returned when IterationLimit is not positive.
	ErrIterationLimit = errors.New("config: iteration limit must be positive")

	// ErrNodeLimit is returned when NodeLimit is not positive.
	ErrNodeLimit = errors.New("config: node limit must be positive")

	// ErrOracleCommand is returned when OracleCommand is empty.
	ErrOracleCommand = errors.New("config: oracle command must not be empty")

	// ErrParallelism is returned when Parallelism is not positive.
	ErrParallelism = errors.New("config: parallelism must be positive")

	// ErrRuleSet is returned when RuleSet names an unknown rule set.
	ErrRuleSet = errors.New("config: unknown rule set")
)
