package parser

import (
	"lumen/internal/errors"
	"lumen/token"
)

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes a token of the given kind or reports UnexpectedToken.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	return p.consume(kind, "")
}

// consume is expect with a help line attached to the error.
func (p *Parser) consume(kind token.Kind, help string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	err := errors.UnexpectedTokenError(kind, p.peek())
	err.HelpText = help
	return token.Token{}, p.fail(err)
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() token.Token {
	if p.current+1 < len(p.tokens) {
		return p.tokens[p.current+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

// fail fills in the offending source line and returns err as an error.
func (p *Parser) fail(err *errors.SyntaxError) error {
	if p.source != "" && err.SourceLine == "" {
		err.SourceLine = errors.LineAt(p.source, err.Location)
	}
	return err
}
