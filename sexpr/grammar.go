// SPDX-License-Identifier: MIT
//
// File: grammar.go
// Role: the lexer and grammar type for the prefix s-expression surface
// syntax, grounded on kanso-lang-kanso/grammar/lexer.go's lexer.MustSimple
// style and grammar.go's "alternation of captures" struct-tag convention.
package sexpr

import "github.com/alecthomas/participle/v2/lexer"

// Lexer tokenizes the surface syntax: pattern variables ("?bw"), integers
// (optionally signed), bare symbols (node-kind heads, operator names,
// string-leaf atoms), and parentheses.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "QVar", Pattern: `\?[a-zA-Z_][a-zA-Z0-9_-]*`},
	{Name: "Number", Pattern: `-?[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// SExpr is one node of the surface syntax: either a bare atom (a symbol, a
// number, or a "?name" pattern variable) or a parenthesized list of SExprs.
type SExpr struct {
	Atom *string  `  @(Ident | Number | QVar)`
	List []*SExpr `| "(" @@* ")"`
}
