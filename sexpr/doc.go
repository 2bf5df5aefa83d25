// Package sexpr implements the prefix s-expression surface syntax used to
// author ground terms and rewrite patterns (spec §6's "External Interfaces").
// Grammar and parser follow kanso-lang-kanso/grammar's participle struct-tag
// style: a lexer of a few token classes feeds a single recursive SExpr type,
// which BuildTerm and BuildPattern then lower into egraph.ENode trees and
// egraph.Pattern trees respectively, dispatching on the list head symbol.
package sexpr
