package parser

import (
	"fmt"

	"lumen/internal/errors"
	"lumen/token"
)

// Scanner produces tokens on demand from a source buffer.
type Scanner struct {
	source    string
	current   int
	line      int
	column    int
	lineStart int
	start     token.Location
	index     int
	eof       *token.Token
	err       *errors.SyntaxError
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// Tokenize scans source to the end. On error it returns the tokens produced
// before the failure together with the error.
func Tokenize(source string) ([]token.Token, error) {
	return NewScanner(source).ScanTokens()
}

// ScanTokens drains the scanner; the last token is always EOF on success.
func (s *Scanner) ScanTokens() ([]token.Token, error) {
	tokens := make([]token.Token, 0, len(s.source)/4+1)
	for {
		tok, err := s.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// NextToken returns the next token. Once the end of input is reached every
// call returns the same EOF token; once an error is reported every call
// returns the same error.
func (s *Scanner) NextToken() (token.Token, error) {
	if s.err != nil {
		return token.Token{}, s.err
	}
	if s.eof != nil {
		return *s.eof, nil
	}

	s.skipWhitespace()
	s.start = s.location()

	if s.isAtEnd() {
		tok := s.emit(token.EOF, token.EOFText)
		s.eof = &tok
		return tok, nil
	}

	kind, err := s.scanToken()
	if err != nil {
		s.err = err
		return token.Token{}, err
	}
	return s.emit(kind, s.source[s.start.Offset:s.current]), nil
}

func (s *Scanner) scanToken() (token.Kind, *errors.SyntaxError) {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		return token.LEFT_PAREN, nil
	case ')':
		return token.RIGHT_PAREN, nil
	case '{':
		return token.LEFT_BRACE, nil
	case '}':
		return token.RIGHT_BRACE, nil
	case '[':
		return token.LEFT_BRACKET, nil
	case ']':
		return token.RIGHT_BRACKET, nil
	case ',':
		return token.COMMA, nil
	case ';':
		return token.SEMICOLON, nil
	case '?':
		return token.QUESTION, nil
	case '@':
		return token.AT, nil
	case '$':
		return token.DOLLAR, nil
	case '~':
		return token.TILDE, nil
	case '^':
		return token.CARET, nil

	// Operators with potential multi-character variants
	case '=':
		return s.scanEqualOperator(), nil
	case '!':
		return s.scanBangOperator(), nil
	case '+':
		return s.scanPlusOperator(), nil
	case '-':
		return s.scanMinusOperator(), nil
	case '*':
		return s.scanStarOperator(), nil
	case '/':
		return s.scanSlashOperator(), nil
	case '<':
		return s.scanLessOperator(), nil
	case '>':
		return s.scanGreaterOperator(), nil
	case '|':
		return s.scanPipeOperator(), nil
	case '&':
		return s.scanAmpersandOperator(), nil
	case '.':
		return s.scanDotOperator(), nil
	case ':':
		return s.scanColonOperator(), nil
	case '#':
		return s.scanDirective(), nil

	// Literals
	case '"':
		return s.scanString()
	case '\'':
		return s.scanChar()
	}

	switch {
	case isAlpha(c):
		return s.scanIdentifier(), nil
	case isDigit(c):
		return s.scanNumber(), nil
	}
	return token.INVALID, s.fail(errors.UnhandledCharacter, fmt.Sprintf("unhandled character %q", c))
}

// Operator scanning methods. Each chain is ordered: the first extension that
// matches wins.

func (s *Scanner) scanEqualOperator() token.Kind {
	if s.matchNext('=') {
		return token.EQUAL_EQUAL
	} else if s.matchNext('>') {
		return token.FAT_ARROW
	}
	return token.EQUAL
}

func (s *Scanner) scanBangOperator() token.Kind {
	if s.matchNext('=') {
		return token.BANG_EQUAL
	}
	return token.BANG
}

func (s *Scanner) scanPlusOperator() token.Kind {
	if s.matchNext('+') {
		return token.PLUS_PLUS
	} else if s.matchNext('=') {
		return token.PLUS_EQUAL
	}
	return token.PLUS
}

func (s *Scanner) scanMinusOperator() token.Kind {
	if s.matchNext('-') {
		return token.MINUS_MINUS
	} else if s.matchNext('=') {
		return token.MINUS_EQUAL
	} else if s.matchNext('>') {
		return token.ARROW
	}
	return token.MINUS
}

func (s *Scanner) scanStarOperator() token.Kind {
	if s.matchNext('=') {
		return token.STAR_EQUAL
	}
	return token.STAR
}

func (s *Scanner) scanSlashOperator() token.Kind {
	if s.matchNext('/') {
		s.scanLineComment()
		return token.LINE_COMMENT
	} else if s.matchNext('=') {
		return token.SLASH_EQUAL
	}
	return token.SLASH
}

func (s *Scanner) scanLessOperator() token.Kind {
	if s.matchNext('=') {
		return token.LESS_EQUAL
	} else if s.matchNext('<') {
		return token.SHIFT_LEFT
	}
	return token.LESS
}

func (s *Scanner) scanGreaterOperator() token.Kind {
	if s.matchNext('=') {
		return token.GREATER_EQUAL
	} else if s.matchNext('>') {
		return token.SHIFT_RIGHT
	}
	return token.GREATER
}

func (s *Scanner) scanPipeOperator() token.Kind {
	if s.matchNext('|') {
		return token.OR
	}
	return token.PIPE
}

func (s *Scanner) scanAmpersandOperator() token.Kind {
	if s.matchNext('&') {
		return token.AND
	}
	return token.AMPERSAND
}

func (s *Scanner) scanDotOperator() token.Kind {
	if s.matchNext('.') {
		return token.DOT_DOT
	}
	return token.DOT
}

func (s *Scanner) scanColonOperator() token.Kind {
	if s.matchNext(':') {
		return token.DOUBLE_COLON
	} else if s.matchNext('=') {
		return token.COLON_EQUAL
	}
	return token.COLON
}

// scanDirective recognizes #include and #define. Any other '#' is a lone HASH.
func (s *Scanner) scanDirective() token.Kind {
	end := s.current
	for end < len(s.source) && (isAlpha(s.source[end]) || isDigit(s.source[end])) {
		end++
	}

	var kind token.Kind
	switch s.source[s.current:end] {
	case "include":
		kind = token.INCLUDE
	case "define":
		kind = token.DEFINE
	default:
		return token.HASH
	}

	for s.current < end {
		s.advance()
	}
	return kind
}

func (s *Scanner) scanLineComment() {
	for !s.isAtEnd() && s.peek() != '\n' {
		s.advance()
	}
}

func (s *Scanner) scanIdentifier() token.Kind {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	return token.LookupIdent(s.source[s.start.Offset:s.current])
}

// scanNumber accepts decimal integers only.
func (s *Scanner) scanNumber() token.Kind {
	for isDigit(s.peek()) {
		s.advance()
	}
	return token.NUMBER
}

// scanString consumes up to the next unescaped quote. Escapes are skipped,
// not decoded.
func (s *Scanner) scanString() (token.Kind, *errors.SyntaxError) {
	for !s.isAtEnd() && s.peek() != '"' {
		if s.advance() == '\\' && !s.isAtEnd() {
			s.advance()
		}
	}
	if s.isAtEnd() {
		return token.INVALID, s.fail(errors.UnterminatedStringLiteral, "unterminated string literal")
	}
	s.advance()
	return token.STRING, nil
}

func (s *Scanner) scanChar() (token.Kind, *errors.SyntaxError) {
	if s.isAtEnd() || s.peek() == '\'' || s.peek() == '\n' {
		return token.INVALID, s.fail(errors.UnterminatedCharLiteral, "empty or unterminated char literal")
	}
	if s.advance() == '\\' && !s.isAtEnd() {
		s.advance()
	}
	if !s.matchNext('\'') {
		return token.INVALID, s.fail(errors.UnterminatedCharLiteral, "unterminated char literal")
	}
	return token.CHAR, nil
}

func (s *Scanner) skipWhitespace() {
	for !s.isAtEnd() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.advance()
		default:
			return
		}
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
		s.lineStart = s.current
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) location() token.Location {
	return token.Location{
		Offset:    s.current,
		LineStart: s.lineStart,
		Line:      s.line,
		Column:    s.column,
	}
}

func (s *Scanner) emit(kind token.Kind, text string) token.Token {
	tok := token.Token{
		Kind:     kind,
		Index:    s.index,
		Location: s.start,
		Text:     text,
	}
	s.index++
	return tok
}

func (s *Scanner) fail(kind errors.Kind, message string) *errors.SyntaxError {
	return errors.NewSyntaxError(kind, message, s.start).
		WithLength(max(1, s.current-s.start.Offset)).
		WithSource(s.source).
		Build()
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}
