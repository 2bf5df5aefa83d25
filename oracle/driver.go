// SPDX-License-Identifier: MIT
//
// File: driver.go
// Role: verbatim port of language.rs's call_racket subprocess protocol —
// write the generated program to the oracle's stdin, drain stdout/stderr,
// wait for exit, and turn the exit status into a verdict (spec §5, §7).
package oracle

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// Driver invokes an external Racket/Rosette oracle binary.
type Driver struct {
	Command string
	Args    []string
}

// NewDriver builds a Driver from a configured command line (spec §6's
// oracle_command option): the first element is the executable, the rest are
// arguments passed before the generated program is piped to the process's
// stdin.
func NewDriver(commandLine []string) (Driver, error) {
	if len(commandLine) == 0 {
		return Driver{}, ErrEmptyCommand
	}
	return Driver{Command: commandLine[0], Args: commandLine[1:]}, nil
}

// Verdict reports the outcome of one oracle invocation that actually ran:
// Accepted is the exit-status verdict spec §4.7 requires. A transport
// failure (the process never ran, or communication with it broke down) never
// produces a Verdict at all — Validate returns it as err instead, and
// ValidateAll's caller sees it on the enclosing Result.Err, per the Open
// Question decision recorded in DESIGN.md.
type Verdict struct {
	Accepted bool
	Stdout   string
	Stderr   string
}

// Validate wraps expr/bitwidths into a Rosette program and runs it through
// the configured oracle. A zero exit status is treated as Accepted; any
// other exit status is an ordinary reject, not an error. Only a failure to
// launch or communicate with the process itself is returned as err.
func (d Driver) Validate(ctx context.Context, expr string, bitwidths map[string]int) (Verdict, error) {
	program := buildProgram(expr, bitwidths)

	cmd := exec.CommandContext(ctx, d.Command, d.Args...)
	cmd.Stdin = strings.NewReader(program)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	verdict := Verdict{Stdout: stdout.String(), Stderr: stderr.String()}

	if runErr == nil {
		verdict.Accepted = true
		return verdict, nil
	}
	if _, isExit := runErr.(*exec.ExitError); isExit {
		verdict.Accepted = false
		return verdict, nil
	}
	return verdict, fmt.Errorf("oracle: failed to run oracle command: %w", runErr)
}

// buildProgram assembles the define-symbolic preamble and function body the
// original implementation's call_racket wraps expr in, one define-symbolic
// per free variable, sorted by name for a reproducible wire format — the
// original iterates a Rust HashMap, whose order is unspecified.
func buildProgram(expr string, bitwidths map[string]int) string {
	names := make([]string, 0, len(bitwidths))
	for name := range bitwidths {
		names = append(names, name)
	}
	sort.Strings(names)

	var defines strings.Builder
	for _, name := range names {
		fmt.Fprintf(&defines, "(define-symbolic %s (bitvector %d))\n", name, bitwidths[name])
	}

	return fmt.Sprintf("(begin\n%s(define (f %s) %s)\nf)", defines.String(), strings.Join(names, " "), expr)
}
