package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/internal/errors"
	"lumen/token"
)

func kindsOf(t *testing.T, source string) []token.Kind {
	t.Helper()
	tokens, err := Tokenize(source)
	require.NoError(t, err)

	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func assertKinds(t *testing.T, source string, want ...token.Kind) {
	t.Helper()
	want = append(want, token.EOF)
	if diff := cmp.Diff(want, kindsOf(t, source)); diff != "" {
		t.Errorf("kinds for %q mismatch (-want +got):\n%s", source, diff)
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	assertKinds(t, "fn pub const var return if for while customIdent",
		token.FN, token.PUB, token.CONST, token.VAR, token.RETURN,
		token.IF, token.FOR, token.WHILE, token.IDENTIFIER)
}

func TestKeywordPartition(t *testing.T) {
	for _, kw := range token.Keywords {
		tokens, err := Tokenize(kw)
		require.NoError(t, err)
		assert.True(t, tokens[0].Kind.IsKeyword(), "%q should scan as a keyword", kw)
	}

	for _, word := range []string{"fnx", "For", "_if", "while1", "pubs", "f", "v", "returns", "else", "x_1"} {
		tokens, err := Tokenize(word)
		require.NoError(t, err)
		assert.Equal(t, token.IDENTIFIER, tokens[0].Kind, "%q should scan as an identifier", word)
		assert.Equal(t, word, tokens[0].Text)
	}
}

func TestLongestMatch(t *testing.T) {
	assertKinds(t, "== => -> -- -= ++ += <= << >= >> && || :: := .. != *= /=",
		token.EQUAL_EQUAL, token.FAT_ARROW, token.ARROW, token.MINUS_MINUS, token.MINUS_EQUAL,
		token.PLUS_PLUS, token.PLUS_EQUAL, token.LESS_EQUAL, token.SHIFT_LEFT, token.GREATER_EQUAL,
		token.SHIFT_RIGHT, token.AND, token.OR, token.DOUBLE_COLON, token.COLON_EQUAL,
		token.DOT_DOT, token.BANG_EQUAL, token.STAR_EQUAL, token.SLASH_EQUAL)
}

func TestFirstExtensionWins(t *testing.T) {
	assertKinds(t, "=>=", token.FAT_ARROW, token.EQUAL)
	assertKinds(t, "<<=", token.SHIFT_LEFT, token.EQUAL)
	assertKinds(t, "-->", token.MINUS_MINUS, token.GREATER)
	assertKinds(t, "->>", token.ARROW, token.GREATER)
	assertKinds(t, "...", token.DOT_DOT, token.DOT)
}

func TestSingleCharacterTokens(t *testing.T) {
	assertKinds(t, "(){}[],;:.?@$~^+-*/ =!<>&|#",
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.LEFT_BRACKET, token.RIGHT_BRACKET, token.COMMA, token.SEMICOLON,
		token.COLON, token.DOT, token.QUESTION, token.AT, token.DOLLAR, token.TILDE,
		token.CARET, token.PLUS, token.MINUS, token.STAR, token.SLASH, token.EQUAL,
		token.BANG, token.LESS, token.GREATER, token.AMPERSAND, token.PIPE, token.HASH)
}

func TestNumbers(t *testing.T) {
	tokens, err := Tokenize("42 0 12345")
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, "42", tokens[0].Text)
	assert.Equal(t, "0", tokens[1].Text)
	assert.Equal(t, "12345", tokens[2].Text)
}

func TestStrings(t *testing.T) {
	tokens, err := Tokenize(`"hello" "a\"b" ""`)
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, token.STRING, tokens[0].Kind)
	assert.Equal(t, `"hello"`, tokens[0].Text)
	assert.Equal(t, `"a\"b"`, tokens[1].Text)
	assert.Equal(t, `""`, tokens[2].Text)
}

func TestCharLiterals(t *testing.T) {
	tokens, err := Tokenize(`'a' '\n' '\''`)
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	for i, want := range []string{`'a'`, `'\n'`, `'\''`} {
		assert.Equal(t, token.CHAR, tokens[i].Kind)
		assert.Equal(t, want, tokens[i].Text)
	}

	for _, bad := range []string{`''`, `'ab'`, `'a`, `'`} {
		_, err := Tokenize(bad)
		require.Error(t, err, bad)
		assert.Equal(t, errors.UnterminatedCharLiteral, err.(*errors.SyntaxError).Kind, bad)
	}
}

func TestLineComments(t *testing.T) {
	tokens, err := Tokenize("x // note: a + b\ny")
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, token.LINE_COMMENT, tokens[1].Kind)
	assert.Equal(t, "// note: a + b", tokens[1].Text)
	assert.Equal(t, token.Location{Offset: 17, LineStart: 17, Line: 2, Column: 1}, tokens[2].Location)
}

func TestDirectives(t *testing.T) {
	assertKinds(t, "#include #define # #foo",
		token.INCLUDE, token.DEFINE, token.HASH, token.HASH, token.IDENTIFIER)

	tokens, err := Tokenize("#include")
	require.NoError(t, err)
	assert.Equal(t, "#include", tokens[0].Text)
}

func TestLocations(t *testing.T) {
	tokens, err := Tokenize("fn\n  add\r\n(")
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, token.Location{Offset: 0, LineStart: 0, Line: 1, Column: 1}, tokens[0].Location)
	assert.Equal(t, token.Location{Offset: 5, LineStart: 3, Line: 2, Column: 3}, tokens[1].Location)
	assert.Equal(t, token.Location{Offset: 10, LineStart: 10, Line: 3, Column: 1}, tokens[2].Location)
	assert.Equal(t, token.Location{Offset: 11, LineStart: 10, Line: 3, Column: 2}, tokens[3].Location)
}

func TestRoundTripSpan(t *testing.T) {
	source := "pub fn add(a: int, b: *int) -> int {\n\treturn a + *b; // sum\n}\nconst s = \"x\\\"y\";\r\nvar c = '\\n';\n"
	tokens, err := Tokenize(source)
	require.NoError(t, err)

	line, column := 1, 1
	cursor := 0
	for i, tok := range tokens {
		assert.Equal(t, i, tok.Index)

		// Advance over the skipped bytes, tracking line and column.
		for ; cursor < tok.Location.Offset; cursor++ {
			if source[cursor] == '\n' {
				line++
				column = 1
			} else {
				column++
			}
		}
		assert.Equal(t, line, tok.Location.Line, "line of %s", tok)
		assert.Equal(t, column, tok.Location.Column, "column of %s", tok)

		if tok.Kind == token.EOF {
			assert.Equal(t, len(source), tok.Location.Offset)
			continue
		}
		assert.Equal(t, source[tok.Location.Offset:tok.End()], tok.Text)
	}
}

func TestIdempotentEOF(t *testing.T) {
	scanner := NewScanner("x  ")

	first, err := scanner.NextToken()
	require.NoError(t, err)
	assert.Equal(t, token.IDENTIFIER, first.Kind)

	eof, err := scanner.NextToken()
	require.NoError(t, err)
	require.Equal(t, token.EOF, eof.Kind)

	for i := 0; i < 3; i++ {
		again, err := scanner.NextToken()
		require.NoError(t, err)
		assert.Equal(t, eof, again)
	}
	assert.Equal(t, 3, eof.Location.Offset)
	assert.Equal(t, eof.Location.Offset, eof.End())
}

func TestEmptySource(t *testing.T) {
	tokens, err := Tokenize("")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Kind)
	assert.Equal(t, token.Location{Line: 1, Column: 1}, tokens[0].Location)
}

func TestUnterminatedString(t *testing.T) {
	scanner := NewScanner(`x = "abc`)
	tokens, err := scanner.ScanTokens()

	require.Error(t, err)
	synErr, ok := err.(*errors.SyntaxError)
	require.True(t, ok)
	assert.Equal(t, errors.UnterminatedStringLiteral, synErr.Kind)
	assert.Equal(t, token.Location{Offset: 4, Line: 1, Column: 5}, synErr.Location)
	assert.Equal(t, 4, synErr.Length)
	assert.Equal(t, `x = "abc`, synErr.SourceLine)
	assert.Len(t, tokens, 2, "tokens before the error are kept")

	// The error is sticky.
	_, again := scanner.NextToken()
	assert.Same(t, synErr, again)
}

func TestUnterminatedStringWithTrailingEscape(t *testing.T) {
	_, err := Tokenize(`"abc\`)
	require.Error(t, err)
	assert.Equal(t, errors.UnterminatedStringLiteral, err.(*errors.SyntaxError).Kind)
}

func TestUnhandledCharacter(t *testing.T) {
	for _, source := range []string{"x ` y", "a é", "\x00"} {
		_, err := Tokenize(source)
		require.Error(t, err, source)
		assert.Equal(t, errors.UnhandledCharacter, err.(*errors.SyntaxError).Kind, source)
	}

	_, err := Tokenize("x ` y")
	assert.Equal(t, 3, err.(*errors.SyntaxError).Location.Column)
}
