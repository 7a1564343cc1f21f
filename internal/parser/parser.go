package parser

import (
	"strings"

	"lumen/internal/ast"
	"lumen/token"
)

// Parser builds an *ast.Program from a token slice. It stops at the first
// error; no partial tree is returned.
type Parser struct {
	filename string
	source   string
	tokens   []token.Token
	current  int
}

// New scans source eagerly and returns a parser over its tokens. Scanner
// errors are returned here.
func New(filename, source string) (*Parser, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := NewParser(filename, tokens)
	p.source = source
	return p, nil
}

// NewParser creates a parser over a prepared token slice. Comments are
// dropped and an EOF token is appended when missing.
func NewParser(filename string, tokens []token.Token) *Parser {
	filtered := make([]token.Token, 0, len(tokens)+1)
	for _, tok := range tokens {
		if tok.Kind != token.LINE_COMMENT {
			filtered = append(filtered, tok)
		}
	}

	if len(filtered) == 0 || filtered[len(filtered)-1].Kind != token.EOF {
		filtered = append(filtered, eofAfter(tokens))
	}

	return &Parser{
		filename: filename,
		tokens:   filtered,
	}
}

func eofAfter(tokens []token.Token) token.Token {
	if len(tokens) == 0 {
		return token.Token{
			Kind:     token.EOF,
			Location: token.Location{Line: 1, Column: 1},
			Text:     token.EOFText,
		}
	}

	last := tokens[len(tokens)-1]
	loc := last.Location
	loc.Offset = last.End()
	if nl := strings.LastIndexByte(last.Text, '\n'); nl >= 0 {
		loc.Line += strings.Count(last.Text, "\n")
		loc.LineStart = last.Location.Offset + nl + 1
		loc.Column = len(last.Text) - nl
	} else {
		loc.Column += len(last.Text)
	}
	return token.Token{
		Kind:     token.EOF,
		Index:    last.Index + 1,
		Location: loc,
		Text:     token.EOFText,
	}
}

// ParseProgram parses top-level declarations and statements until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{Filename: p.filename}

	for !p.isAtEnd() {
		stmt, err := p.parseTopLevelStmt()
		if err != nil {
			return nil, err
		}
		program.Nodes = append(program.Nodes, stmt)
	}

	return program, nil
}
