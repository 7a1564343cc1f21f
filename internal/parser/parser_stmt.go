package parser

import (
	"fmt"

	"lumen/internal/ast"
	"lumen/internal/errors"
	"lumen/token"
)

func (p *Parser) parseTopLevelStmt() (ast.Stmt, error) {
	tok := p.peek()

	switch tok.Kind {
	case token.FN, token.PUB:
		fn, err := p.parseFnDecl()
		if err != nil {
			return nil, err
		}
		return fn, nil

	case token.INCLUDE:
		return nil, p.fail(errors.UnsupportedError("`#include` directive", tok,
			"there is no preprocessor; declare everything in one file"))

	case token.DEFINE:
		return nil, p.fail(errors.UnsupportedError("`#define` directive", tok,
			"there is no preprocessor; use `const` instead"))
	}

	return p.parseStatement()
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok := p.peek()

	switch tok.Kind {
	case token.VAR:
		decl, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		return p.terminated(decl)

	case token.CONST:
		decl, err := p.parseConstDecl()
		if err != nil {
			return nil, err
		}
		return p.terminated(decl)

	case token.RETURN:
		ret, err := p.parseReturnStmt()
		if err != nil {
			return nil, err
		}
		return p.terminated(ret)

	case token.IF:
		stmt, err := p.parseIfStmt()
		if err != nil {
			return nil, err
		}
		return stmt, nil

	case token.FOR:
		loop, err := p.parseLoop()
		if err != nil {
			return nil, err
		}
		return loop, nil

	case token.WHILE:
		return nil, p.fail(errors.UnsupportedError("`while` loop", tok,
			"write the loop with `for`: `for cond { ... }`"))

	case token.LEFT_BRACE:
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return block, nil

	case token.IDENTIFIER, token.STAR:
		var expr ast.Expr
		var err error
		if tok.Kind == token.IDENTIFIER && p.peekNext().Kind == token.LEFT_PAREN {
			expr, err = p.parseFnCall()
		} else {
			expr, err = p.parseAssignExpr()
		}
		if err != nil {
			return nil, err
		}
		return p.terminated(expr)
	}

	return nil, p.fail(errors.UnexpectedStatementError(tok))
}

// terminated consumes the ';' that ends a simple statement.
func (p *Parser) terminated(stmt ast.Stmt) (ast.Stmt, error) {
	if _, err := p.consume(token.SEMICOLON, "statements end with `;`"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	keyword := p.advance()
	name, typ, value, err := p.parseDeclBody(keyword)
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{Token: keyword, Name: name, Type: typ, Value: value}, nil
}

func (p *Parser) parseConstDecl() (*ast.ConstDecl, error) {
	keyword := p.advance()
	name, typ, value, err := p.parseDeclBody(keyword)
	if err != nil {
		return nil, err
	}
	return &ast.ConstDecl{Token: keyword, Name: name, Type: typ, Value: value}, nil
}

// parseDeclBody parses `name [: Type] [= expr]` after var or const. At least
// one of the type and the value must be present.
func (p *Parser) parseDeclBody(keyword token.Token) (*ast.Literal, ast.Type, ast.Expr, error) {
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, nil, nil, err
	}
	name := &ast.Literal{Kind: ast.Identifier, Token: nameTok}

	var typ ast.Type
	if p.match(token.COLON) {
		typ, err = p.parseTypeExpr()
		if err != nil {
			return nil, nil, nil, err
		}
	}

	var value ast.Expr
	if p.match(token.EQUAL) {
		value, err = p.expectExpr("after `=`")
		if err != nil {
			return nil, nil, nil, err
		}
	}

	if typ == nil && value == nil {
		return nil, nil, nil, p.fail(errors.NewSyntaxError(errors.IncompleteDeclaration,
			fmt.Sprintf("`%s` is declared without a type or a value", nameTok.Text), p.peek().Location).
			At(p.peek()).
			WithHelp(fmt.Sprintf("add a type (`%s %s: int;`) or a value (`%s %s = 0;`)",
				keyword.Text, nameTok.Text, keyword.Text, nameTok.Text)).
			Build())
	}

	return name, typ, value, nil
}

func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	ifTok := p.advance()

	cond, err := p.expectExpr("after `if`")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if next := p.peek(); next.Kind == token.IDENTIFIER && next.Text == "else" {
		return nil, p.fail(errors.UnsupportedError("`else` branch", next,
			"use a second `if` with the negated condition"))
	}

	return &ast.IfStmt{Token: ifTok, Cond: cond, Body: body}, nil
}

// parseLoop parses `for [expr] { ... }`. The optional header expression is
// kept as the loop's iterable.
func (p *Parser) parseLoop() (*ast.LoopStmt, error) {
	forTok := p.advance()

	var iterable ast.Expr
	if !p.check(token.LEFT_BRACE) {
		var err error
		iterable, err = p.expectExpr("after `for`")
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.LoopStmt{Token: forTok, Iterable: iterable, Body: body}, nil
}

func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	retTok := p.advance()

	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		var err error
		value, err = p.expectExpr("after `return`")
		if err != nil {
			return nil, err
		}
	}

	return &ast.ReturnStmt{Token: retTok, Value: value}, nil
}

// parseBlock collects statements until '}', ';' or EOF and then requires
// the closing brace.
func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expect(token.LEFT_BRACE)
	if err != nil {
		return nil, err
	}

	block := &ast.Block{Token: open}
	for !p.check(token.RIGHT_BRACE) && !p.check(token.SEMICOLON) && !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}

	if _, err := p.expect(token.RIGHT_BRACE); err != nil {
		return nil, err
	}
	return block, nil
}
