// Package token SPDX-License-Identifier: Apache-2.0
package token

import "fmt"

type Kind int

const (
	EOF Kind = iota
	INVALID

	// Identifiers + literals
	IDENTIFIER // add, foobar, x, y ...
	STRING     // "hello"
	NUMBER     // 1234567890
	CHAR       // 'c'

	LINE_COMMENT

	// Preprocessor directives (detected, never expanded)
	INCLUDE
	DEFINE

	// Keywords
	FN
	PUB
	CONST
	VAR
	RETURN
	IF
	FOR
	WHILE

	// Operators
	PLUS          // +
	PLUS_PLUS     // ++
	PLUS_EQUAL    // +=
	MINUS         // -
	MINUS_MINUS   // --
	MINUS_EQUAL   // -=
	ARROW         // ->
	STAR          // *
	STAR_EQUAL    // *=
	SLASH         // /
	SLASH_EQUAL   // /=
	EQUAL         // =
	EQUAL_EQUAL   // ==
	FAT_ARROW     // =>
	BANG          // !
	BANG_EQUAL    // !=
	LESS          // <
	LESS_EQUAL    // <=
	SHIFT_LEFT    // <<
	GREATER       // >
	GREATER_EQUAL // >=
	SHIFT_RIGHT   // >>
	AMPERSAND     // &
	AND           // &&
	PIPE          // |
	OR            // ||
	CARET         // ^
	TILDE         // ~

	// Delimiters
	LEFT_PAREN    // (
	RIGHT_PAREN   // )
	LEFT_BRACE    // {
	RIGHT_BRACE   // }
	LEFT_BRACKET  // [
	RIGHT_BRACKET // ]
	COMMA         // ,
	SEMICOLON     // ;
	COLON         // :
	DOUBLE_COLON  // ::
	COLON_EQUAL   // :=
	DOT           // .
	DOT_DOT       // ..
	QUESTION      // ?
	AT            // @
	HASH          // #
	DOLLAR        // $
)

var kindNames = [...]string{
	EOF:           "EOF",
	INVALID:       "INVALID",
	IDENTIFIER:    "IDENTIFIER",
	STRING:        "STRING",
	NUMBER:        "NUMBER",
	CHAR:          "CHAR",
	LINE_COMMENT:  "LINE_COMMENT",
	INCLUDE:       "INCLUDE",
	DEFINE:        "DEFINE",
	FN:            "FN",
	PUB:           "PUB",
	CONST:         "CONST",
	VAR:           "VAR",
	RETURN:        "RETURN",
	IF:            "IF",
	FOR:           "FOR",
	WHILE:         "WHILE",
	PLUS:          "PLUS",
	PLUS_PLUS:     "PLUS_PLUS",
	PLUS_EQUAL:    "PLUS_EQUAL",
	MINUS:         "MINUS",
	MINUS_MINUS:   "MINUS_MINUS",
	MINUS_EQUAL:   "MINUS_EQUAL",
	ARROW:         "ARROW",
	STAR:          "STAR",
	STAR_EQUAL:    "STAR_EQUAL",
	SLASH:         "SLASH",
	SLASH_EQUAL:   "SLASH_EQUAL",
	EQUAL:         "EQUAL",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	FAT_ARROW:     "FAT_ARROW",
	BANG:          "BANG",
	BANG_EQUAL:    "BANG_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	SHIFT_LEFT:    "SHIFT_LEFT",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	SHIFT_RIGHT:   "SHIFT_RIGHT",
	AMPERSAND:     "AMPERSAND",
	AND:           "AND",
	PIPE:          "PIPE",
	OR:            "OR",
	CARET:         "CARET",
	TILDE:         "TILDE",
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	LEFT_BRACKET:  "LEFT_BRACKET",
	RIGHT_BRACKET: "RIGHT_BRACKET",
	COMMA:         "COMMA",
	SEMICOLON:     "SEMICOLON",
	COLON:         "COLON",
	DOUBLE_COLON:  "DOUBLE_COLON",
	COLON_EQUAL:   "COLON_EQUAL",
	DOT:           "DOT",
	DOT_DOT:       "DOT_DOT",
	QUESTION:      "QUESTION",
	AT:            "AT",
	HASH:          "HASH",
	DOLLAR:        "DOLLAR",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= FN && k <= WHILE
}

// IsOperator reports whether k is an operator or delimiter.
func (k Kind) IsOperator() bool {
	return k >= PLUS && k <= DOLLAR
}

// Location is the position of a token's first byte.
type Location struct {
	Offset    int // 0-based byte offset
	LineStart int // offset of the first byte of the line
	Line      int // 1-based
	Column    int // 1-based
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

type Token struct {
	Kind     Kind
	Index    int // emission order
	Location Location
	Text     string
}

const EOFText = "<EOF>"

// End returns the offset one past the token's last byte. EOF has zero width.
func (t Token) End() int {
	if t.Kind == EOF {
		return t.Location.Offset
	}
	return t.Location.Offset + len(t.Text)
}

func (t Token) String() string {
	return fmt.Sprintf("{ %s | `%s` }", t.Kind, t.Text)
}

// LookupIdent reclassifies a scanned identifier as a keyword when it is one.
func LookupIdent(ident string) Kind {
	if ident == "" {
		return IDENTIFIER
	}

	switch ident[0] {
	case 'c':
		if ident == "const" {
			return CONST
		}
	case 'f':
		if ident == "fn" {
			return FN
		}
		if ident == "for" {
			return FOR
		}
	case 'i':
		if ident == "if" {
			return IF
		}
	case 'p':
		if ident == "pub" {
			return PUB
		}
	case 'r':
		if ident == "return" {
			return RETURN
		}
	case 'v':
		if ident == "var" {
			return VAR
		}
	case 'w':
		if ident == "while" {
			return WHILE
		}
	}
	return IDENTIFIER
}

// Keywords lists the reserved words in declaration order.
var Keywords = []string{"fn", "pub", "const", "var", "return", "if", "for", "while"}
