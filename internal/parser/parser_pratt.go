package parser

import (
	"fmt"

	"lumen/internal/ast"
	"lumen/internal/errors"
	"lumen/token"
)

var binaryPrecedence = map[token.Kind]int{
	token.OR:  10,
	token.AND: 20,
	token.EQUAL_EQUAL: 30, token.BANG_EQUAL: 30,
	token.LESS: 30, token.GREATER: 30, token.LESS_EQUAL: 30, token.GREATER_EQUAL: 30,
	token.AMPERSAND: 40, token.PIPE: 40, token.CARET: 40,
	token.SHIFT_LEFT: 50, token.SHIFT_RIGHT: 50,
	token.PLUS: 60, token.MINUS: 60,
	token.STAR: 70, token.SLASH: 70,
}

var binaryOps = map[token.Kind]ast.Op{
	token.OR:            ast.BoolOr,
	token.AND:           ast.BoolAnd,
	token.EQUAL_EQUAL:   ast.EqualEqual,
	token.BANG_EQUAL:    ast.NotEqual,
	token.LESS:          ast.LessThan,
	token.GREATER:       ast.GreaterThan,
	token.LESS_EQUAL:    ast.LessEqual,
	token.GREATER_EQUAL: ast.GreaterEqual,
	token.AMPERSAND:     ast.BitAnd,
	token.PIPE:          ast.BitOr,
	token.CARET:         ast.BitXor,
	token.SHIFT_LEFT:    ast.ShiftLeft,
	token.SHIFT_RIGHT:   ast.ShiftRight,
	token.PLUS:          ast.Add,
	token.MINUS:         ast.Sub,
	token.STAR:          ast.Mul,
	token.SLASH:         ast.Div,
}

var prefixOps = map[token.Kind]ast.Op{
	token.BANG:      ast.BoolNot,
	token.MINUS:     ast.Negation,
	token.TILDE:     ast.BitNot,
	token.AMPERSAND: ast.AddressOf,
	token.STAR:      ast.Deref,
}

// parseExpr returns nil without consuming anything when no expression
// starts at the current token.
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parsePrattExpr(0)
}

// expectExpr is parseExpr where an absent expression is an error. context
// completes the message, e.g. "after `=`".
func (p *Parser) expectExpr(context string) (ast.Expr, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, p.fail(errors.ExpectedExpressionError(context, p.peek()))
	}
	return expr, nil
}

func (p *Parser) parsePrattExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parsePrefixExpr()
	if err != nil || left == nil {
		return nil, err
	}

	compared := false
	for {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Kind]
		if !ok || prec < minPrec {
			break
		}

		op := binaryOps[tok.Kind]
		if op.IsComparison() && compared {
			return nil, p.fail(errors.UnsupportedError("chained comparison", tok,
				"comparisons do not associate; join them with `&&` or add parentheses"))
		}

		p.advance()
		right, err := p.parsePrattExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, p.fail(errors.ExpectedExpressionError(fmt.Sprintf("after `%s`", tok.Text), p.peek()))
		}

		left = &ast.BinaryExpr{
			Op:    op,
			Token: tok,
			Left:  left,
			Right: right,
		}
		compared = compared || op.IsComparison()
	}

	return left, nil
}

func (p *Parser) parsePrefixExpr() (ast.Expr, error) {
	op, ok := prefixOps[p.peek().Kind]
	if !ok {
		return p.parsePrimaryExpr()
	}

	tok := p.advance()
	operand, err := p.parsePrefixExpr()
	if err != nil {
		return nil, err
	}
	if operand == nil {
		return nil, p.fail(errors.ExpectedExpressionError(fmt.Sprintf("after `%s`", tok.Text), p.peek()))
	}

	return &ast.UnaryExpr{
		Op:      op,
		Token:   tok,
		Operand: operand,
	}, nil
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Kind {
	case token.IDENTIFIER:
		var target ast.Expr
		if p.peekNext().Kind == token.LEFT_PAREN {
			call, err := p.parseFnCall()
			if err != nil {
				return nil, err
			}
			target = call
		} else {
			p.advance()
			target = &ast.Literal{Kind: ast.Identifier, Token: tok}
		}
		if !p.check(token.DOT) {
			return target, nil
		}
		return p.parseFieldAccess(target)

	case token.NUMBER:
		p.advance()
		return &ast.Literal{Kind: ast.Number, Token: tok}, nil

	case token.STRING:
		p.advance()
		return &ast.Literal{Kind: ast.String, Token: tok}, nil

	case token.CHAR:
		p.advance()
		return &ast.Literal{Kind: ast.Char, Token: tok}, nil

	case token.LEFT_PAREN:
		p.advance()
		inner, err := p.expectExpr("after `(`")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return inner, nil
	}

	return nil, nil
}

// parseFieldAccess nests to the right: a.b.c is a.(b.c). The name after '.'
// must be an identifier, optionally called or followed by further fields.
func (p *Parser) parseFieldAccess(target ast.Expr) (ast.Expr, error) {
	dot := p.advance()
	if !p.check(token.IDENTIFIER) {
		err := errors.UnexpectedTokenError(token.IDENTIFIER, p.peek())
		err.HelpText = "a field name follows `.`"
		return nil, p.fail(err)
	}

	field, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}

	return &ast.BinaryExpr{
		Op:    ast.FieldAccess,
		Token: dot,
		Left:  target,
		Right: field,
	}, nil
}

func (p *Parser) parseFnCall() (ast.Expr, error) {
	callee, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LEFT_PAREN); err != nil {
		return nil, err
	}

	call := &ast.CallExpr{Callee: callee}
	for !p.check(token.RIGHT_PAREN) {
		arg, err := p.expectExpr("in argument list")
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)

		if p.check(token.RIGHT_PAREN) {
			break
		}
		if _, err := p.consume(token.COMMA, "separate arguments with `,`"); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return call, nil
}

// isAssignable reports whether expr may appear on the left of '='.
func isAssignable(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Kind == ast.Identifier
	case *ast.BinaryExpr:
		return e.Op == ast.FieldAccess && isAssignable(e.Right)
	case *ast.UnaryExpr:
		return e.Op == ast.Deref
	}
	return false
}

func (p *Parser) parseAssignExpr() (ast.Expr, error) {
	target, err := p.expectExpr("at start of statement")
	if err != nil {
		return nil, err
	}
	if !isAssignable(target) {
		return nil, p.fail(errors.NewSyntaxError(errors.UnassignableExpression,
			fmt.Sprintf("cannot assign to `%s`", target), target.NodePos()).
			WithHelp("only variables, fields and dereferenced pointers can be assigned").
			Build())
	}

	eq, err := p.expect(token.EQUAL)
	if err != nil {
		return nil, err
	}
	value, err := p.expectExpr("after `=`")
	if err != nil {
		return nil, err
	}

	return &ast.BinaryExpr{
		Op:    ast.Assign,
		Token: eq,
		Left:  target,
		Right: value,
	}, nil
}
