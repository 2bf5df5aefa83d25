// SPDX-License-Identifier: MIT
//
// File: parser.go
// Role: builds the participle parser once and exposes Parse, grounded on
// kanso-lang-kanso/grammar/parser.go's participle.Build + Elide("Whitespace")
// usage.
package sexpr

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

var parser = participle.MustBuild[SExpr](
	participle.Lexer(Lexer),
	participle.Elide("Whitespace"),
)

// Parse reads src as a single SExpr.
func Parse(src string) (*SExpr, error) {
	expr, err := parser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("sexpr: parse: %w", err)
	}
	return expr, nil
}
