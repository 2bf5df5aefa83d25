// SPDX-License-Identifier: MIT
//
// File: main.go
// Role: CLI entry point. Cobra command tree grounded on opal-lang-opal's
// cli/main.go (a cobra.Command with RunE and persistent flags feeding a
// config struct); colored success/failure reporting grounded on
// kanso-lang-kanso/cmd/kanso-cli/main.go's color.Green/color.Red convention.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.Red("isaforge: %s", err)
		os.Exit(1)
	}
}
