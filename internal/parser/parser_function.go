package parser

import (
	"lumen/internal/ast"
	"lumen/internal/errors"
	"lumen/token"
)

// parseFnDecl parses `[pub] fn name(params) -> Type { ... }`.
func (p *Parser) parseFnDecl() (*ast.FnDecl, error) {
	public := p.match(token.PUB)

	fnTok, err := p.expect(token.FN)
	if err != nil {
		return nil, err
	}

	name, err := p.consume(token.IDENTIFIER, "a function needs a name: `fn name(...) -> int { ... }`")
	if err != nil {
		return nil, err
	}

	params, err := p.parseFnDeclParams()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.ARROW, "functions declare their return type: `fn name(...) -> int`"); err != nil {
		return nil, err
	}
	returnType, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FnDecl{
		Token:      fnTok,
		Public:     public,
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}, nil
}

// parseFnDeclParams parses the parameter list in parentheses. A trailing
// comma is accepted.
func (p *Parser) parseFnDeclParams() (*ast.ParamList, error) {
	open, err := p.expect(token.LEFT_PAREN)
	if err != nil {
		return nil, err
	}

	list := &ast.ParamList{Token: open}
	for !p.check(token.RIGHT_PAREN) {
		param, err := p.parseParamDecl()
		if err != nil {
			return nil, err
		}
		list.Params = append(list.Params, param)

		if p.check(token.RIGHT_PAREN) {
			break
		}
		if _, err := p.consume(token.COMMA, "separate parameters with `,`"); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return list, nil
}

func (p *Parser) parseParamDecl() (*ast.ParamDecl, error) {
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON, "parameters are written `name: Type`"); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}

	return &ast.ParamDecl{Name: name, Type: typ}, nil
}

// parseTypeExpr parses a named, pointer or array type.
func (p *Parser) parseTypeExpr() (ast.Type, error) {
	tok := p.peek()

	switch tok.Kind {
	case token.IDENTIFIER:
		p.advance()
		return &ast.NamedType{Token: tok}, nil

	case token.STAR:
		p.advance()
		base, err := p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
		return &ast.PointerType{Token: tok, Base: base}, nil

	case token.LEFT_BRACKET:
		p.advance()
		var length ast.Expr
		if !p.check(token.RIGHT_BRACKET) {
			var err error
			length, err = p.expectExpr("for array length")
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(token.RIGHT_BRACKET); err != nil {
			return nil, err
		}
		base, err := p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
		return &ast.ArrayType{Token: tok, Len: length, Base: base}, nil
	}

	return nil, p.fail(errors.ExpectedTypeError(tok))
}
