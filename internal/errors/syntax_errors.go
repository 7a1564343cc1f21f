package errors

import (
	"fmt"
	"strings"

	"lumen/token"
)

// SyntaxError is the single fatal diagnostic produced by a scan or parse.
type SyntaxError struct {
	Kind       Kind
	Message    string
	Location   token.Location
	Length     int          // bytes covered by the marker
	Expected   token.Kind   // meaningful for UnexpectedToken only
	Found      *token.Token // offending token, nil for scanner errors
	SourceLine string       // text of the offending line, without the newline
	HelpText   string
	Notes      []string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Location.Line, e.Location.Column, e.Kind, e.Message)
}

// Code returns the error code of the underlying kind.
func (e *SyntaxError) Code() string {
	return e.Kind.Code()
}

// SyntaxErrorBuilder provides a fluent interface for creating syntax errors
type SyntaxErrorBuilder struct {
	err SyntaxError
}

// NewSyntaxError starts an error of the given kind at loc
func NewSyntaxError(kind Kind, message string, loc token.Location) *SyntaxErrorBuilder {
	return &SyntaxErrorBuilder{
		err: SyntaxError{
			Kind:     kind,
			Message:  message,
			Location: loc,
			Length:   1,
		},
	}
}

// At attaches the offending token and sizes the marker to it
func (b *SyntaxErrorBuilder) At(tok token.Token) *SyntaxErrorBuilder {
	found := tok
	b.err.Found = &found
	b.err.Location = tok.Location
	b.err.Length = max(1, tok.End()-tok.Location.Offset)
	return b
}

// WithLength sets the length of the error span
func (b *SyntaxErrorBuilder) WithLength(length int) *SyntaxErrorBuilder {
	b.err.Length = length
	return b
}

// WithSource records the offending line from source
func (b *SyntaxErrorBuilder) WithSource(source string) *SyntaxErrorBuilder {
	b.err.SourceLine = LineAt(source, b.err.Location)
	return b
}

// WithHelp sets the help text
func (b *SyntaxErrorBuilder) WithHelp(help string) *SyntaxErrorBuilder {
	b.err.HelpText = help
	return b
}

// WithNote adds a note
func (b *SyntaxErrorBuilder) WithNote(note string) *SyntaxErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// Build returns the error
func (b *SyntaxErrorBuilder) Build() *SyntaxError {
	err := b.err
	return &err
}

// LineAt returns the source line that contains loc.
func LineAt(source string, loc token.Location) string {
	if loc.LineStart < 0 || loc.LineStart > len(source) {
		return ""
	}
	line := source[loc.LineStart:]
	if end := strings.IndexByte(line, '\n'); end >= 0 {
		line = line[:end]
	}
	return strings.TrimSuffix(line, "\r")
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s `%s`", tok.Kind, tok.Text)
}

// Common syntax errors

// UnexpectedTokenError creates an error for a token of the wrong kind
func UnexpectedTokenError(expected token.Kind, found token.Token) *SyntaxError {
	b := NewSyntaxError(UnexpectedToken,
		fmt.Sprintf("expected %s, found %s", expected, describe(found)), found.Location).At(found)
	b.err.Expected = expected
	return b.Build()
}

// UnexpectedStatementError creates an error for a token that starts no statement
func UnexpectedStatementError(found token.Token) *SyntaxError {
	return NewSyntaxError(UnexpectedToken,
		fmt.Sprintf("expected statement, found %s", describe(found)), found.Location).
		At(found).Build()
}

// ExpectedExpressionError creates an error for a missing expression
func ExpectedExpressionError(context string, found token.Token) *SyntaxError {
	return NewSyntaxError(ExpectedExpression,
		fmt.Sprintf("expected expression %s, found %s", context, describe(found)), found.Location).
		At(found).Build()
}

// ExpectedTypeError creates an error for a missing type expression
func ExpectedTypeError(found token.Token) *SyntaxError {
	return NewSyntaxError(ExpectedTypeExpression,
		fmt.Sprintf("expected type expression, found %s", describe(found)), found.Location).
		At(found).
		WithHelp("types are a name (`int`), a pointer (`*int`) or an array (`[4]int`, `[]int`)").
		Build()
}

// UnsupportedError creates an error for a recognized but unimplemented construct
func UnsupportedError(what string, at token.Token, help string) *SyntaxError {
	b := NewSyntaxError(UnsupportedConstruct, what+" not supported", at.Location).At(at)
	if help != "" {
		b.WithHelp(help)
	}
	return b.Build()
}
