package grammar

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var parser = participle.MustBuild[Program](
	participle.Lexer(LumenLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(3),
)

// EBNF renders the reference grammar.
func EBNF() string {
	return parser.String()
}

func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseString(path, string(source))
}

func ParseString(filename, source string) (*Program, error) {
	return parser.ParseString(filename, source)
}

// FormatError renders a caret-style message for errors returned by
// ParseString. Other errors are returned as plain text.
func FormatError(source string, err error) string {
	pe, ok := err.(participle.Error)
	if !ok {
		return color.RedString("unexpected error: %s", err) + "\n"
	}

	pos := pe.Position()
	lines := strings.Split(source, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return color.RedString("syntax error at unknown location: %s", err) + "\n"
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(pos.Column-1, 0)) + "^"

	var b strings.Builder
	b.WriteString(color.RedString("syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column))
	b.WriteString("\n")
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(color.HiRedString(caret))
	b.WriteString("\n")
	fmt.Fprintf(&b, "→ %s\n", pe.Message())
	return b.String()
}
