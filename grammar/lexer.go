package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// LumenLexer tokenises source for the reference grammar. It recognises the
// same literal forms as the hand-written scanner; directives are left out.
var LumenLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},

	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Char", Pattern: `'(\\.|[^'\\])'`},
	{Name: "Number", Pattern: `[0-9]+`},

	// Keywords are matched as identifiers and picked out by the grammar.
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

	// Longest operators first
	{Name: "Operator", Pattern: `->|==|!=|<=|>=|<<|>>|&&|\|\||[-+*/=!<>&|^~]`},

	{Name: "Punctuation", Pattern: `[(){}\[\],;:.]`},

	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
