package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/token"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestErrorReporter(t *testing.T) {
	source := "fn main() -> int {\n    var x = 5 y\n}"

	found := token.Token{
		Kind:     token.IDENTIFIER,
		Text:     "y",
		Location: token.Location{Offset: 33, LineStart: 19, Line: 2, Column: 15},
	}
	err := UnexpectedTokenError(token.SEMICOLON, found)

	formatted := NewErrorReporter("main.lm", source).Format(err)

	assert.Contains(t, formatted, "error["+ErrorUnexpectedToken+"]: expected SEMICOLON, found IDENTIFIER `y`")
	assert.Contains(t, formatted, "main.lm:2:15")
	assert.Contains(t, formatted, "  1 │ fn main() -> int {")
	assert.Contains(t, formatted, "  2 │     var x = 5 y")

	lines := strings.Split(formatted, "\n")
	var marker string
	for _, line := range lines {
		if strings.HasSuffix(line, "^") {
			marker = line
		}
	}
	require.NotEmpty(t, marker, "marker line missing")
	assert.Equal(t, "    │ "+strings.Repeat(" ", 14)+"^", marker)
}

func TestErrorReporterWithoutSource(t *testing.T) {
	err := NewSyntaxError(UnterminatedStringLiteral, "unterminated string literal", token.Location{Line: 1, Column: 3}).
		WithLength(4).
		WithHelp("close the string with '\"'").
		WithNote("string literals cannot span the end of input").
		Build()
	err.SourceLine = `x "abc`

	formatted := NewErrorReporter("<repl>", "").Format(err)

	assert.Contains(t, formatted, "error[E0101]")
	assert.Contains(t, formatted, `  1 │ x "abc`)
	assert.Contains(t, formatted, "  ^^^^")
	assert.Contains(t, formatted, "note: string literals cannot span the end of input")
	assert.Contains(t, formatted, "help: close the string with")
}

func TestSyntaxErrorError(t *testing.T) {
	err := ExpectedExpressionError("after `+`", token.Token{
		Kind:     token.SEMICOLON,
		Text:     ";",
		Location: token.Location{Line: 4, Column: 9},
	})

	assert.Equal(t, "4:9: ExpectedExpression: expected expression after `+`, found SEMICOLON `;`", err.Error())
	assert.Equal(t, ErrorExpectedExpression, err.Code())
	require.NotNil(t, err.Found)
	assert.Equal(t, token.SEMICOLON, err.Found.Kind)
}

func TestEOFDescription(t *testing.T) {
	eof := token.Token{Kind: token.EOF, Text: token.EOFText, Location: token.Location{Offset: 6, Line: 1, Column: 7}}
	err := UnexpectedTokenError(token.RIGHT_BRACE, eof)

	assert.Equal(t, "expected RIGHT_BRACE, found end of input", err.Message)
	assert.Equal(t, token.RIGHT_BRACE, err.Expected)
	assert.Equal(t, 1, err.Length)
}

func TestLineAt(t *testing.T) {
	source := "first\r\nsecond line\nthird"
	assert.Equal(t, "first", LineAt(source, token.Location{LineStart: 0}))
	assert.Equal(t, "second line", LineAt(source, token.Location{LineStart: 7}))
	assert.Equal(t, "third", LineAt(source, token.Location{LineStart: 19}))
	assert.Equal(t, "", LineAt(source, token.Location{LineStart: 99}))
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, "Scanner", GetErrorCategory(UnhandledCharacter.Code()))
	assert.Equal(t, "Parser", GetErrorCategory(UnsupportedConstruct.Code()))
	assert.Equal(t, "UnsupportedConstruct", UnsupportedConstruct.String())
	assert.Equal(t, "UnknownError", Kind(0).String())
	assert.NotEqual(t, "Unknown error code", GetErrorDescription(IncompleteDeclaration.Code()))
}

func TestCodeRanges(t *testing.T) {
	codes := map[Kind]string{
		UnhandledCharacter:        "E0100",
		UnterminatedStringLiteral: "E0101",
		UnterminatedCharLiteral:   "E0102",
		UnexpectedToken:           "E0150",
		ExpectedExpression:        "E0151",
		ExpectedTypeExpression:    "E0152",
		UnassignableExpression:    "E0153",
		IncompleteDeclaration:     "E0154",
		UnsupportedConstruct:      "E0155",
	}

	for kind, code := range codes {
		assert.Equal(t, code, kind.Code(), kind.String())
	}
}
