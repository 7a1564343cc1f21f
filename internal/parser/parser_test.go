package parser

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/internal/ast"
	"lumen/internal/errors"
	"lumen/token"
)

func parse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, err := ParseSource("test.lm", source)
	require.NoError(t, err)
	require.NotNil(t, program)
	return program
}

func parseErr(t *testing.T, source string, kind errors.Kind) *errors.SyntaxError {
	t.Helper()
	program, err := ParseSource("test.lm", source)
	require.Error(t, err)
	assert.Nil(t, program, "no partial tree on error")

	synErr, ok := err.(*errors.SyntaxError)
	require.True(t, ok, "expected *errors.SyntaxError, got %T", err)
	assert.Equal(t, kind, synErr.Kind, synErr.Error())
	return synErr
}

func TestParseFunction(t *testing.T) {
	program := parse(t, "fn add(a: int, b: int) -> int { return a + b; }")
	require.Len(t, program.Nodes, 1)

	fn, ok := program.Nodes[0].(*ast.FnDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Text)
	assert.False(t, fn.Public)

	require.Len(t, fn.Params.Params, 2)
	assert.Equal(t, "a: int", fn.Params.Params[0].String())
	assert.Equal(t, "b: int", fn.Params.Params[1].String())
	assert.Equal(t, "int", fn.ReturnType.String())

	require.Len(t, fn.Body.Stmts, 1)
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	require.True(t, ok)

	add, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Add, add.Op)
	assert.Equal(t, "a", add.Left.String())
	assert.Equal(t, "b", add.Right.String())
}

func TestParseConstDecl(t *testing.T) {
	program := parse(t, "const x: int = 5;")
	require.Len(t, program.Nodes, 1)

	decl, ok := program.Nodes[0].(*ast.ConstDecl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name.Token.Text)
	assert.Equal(t, ast.Identifier, decl.Name.Kind)
	assert.Equal(t, "int", decl.Type.String())

	value, ok := decl.Value.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, ast.Number, value.Kind)
	assert.Equal(t, "5", value.Token.Text)
}

func TestParseTopLevelCall(t *testing.T) {
	program := parse(t, "foo(1, 2, 3);")
	require.Len(t, program.Nodes, 1)

	call, ok := program.Nodes[0].(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "foo", call.Callee.Text)
	require.Len(t, call.Args, 3)
	for i, want := range []string{"1", "2", "3"} {
		assert.Equal(t, want, call.Args[i].String())
	}
}

func TestParseIfStmt(t *testing.T) {
	program := parse(t, "if x { foo(); }")
	require.Len(t, program.Nodes, 1)

	stmt, ok := program.Nodes[0].(*ast.IfStmt)
	require.True(t, ok)

	cond, ok := stmt.Cond.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, ast.Identifier, cond.Kind)
	assert.Equal(t, "x", cond.Token.Text)

	require.Len(t, stmt.Body.Stmts, 1)
	call, ok := stmt.Body.Stmts[0].(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "foo", call.Callee.Text)
	assert.Empty(t, call.Args)
}

func TestParseWhileUnsupported(t *testing.T) {
	err := parseErr(t, "while x { }", errors.UnsupportedConstruct)
	assert.Equal(t, token.WHILE, err.Found.Kind)
	assert.Equal(t, 1, err.Location.Column)
}

func TestParseUnterminatedString(t *testing.T) {
	parseErr(t, `"abc`, errors.UnterminatedStringLiteral)
}

func TestPrecedence(t *testing.T) {
	program := parse(t, "x = 1 + 2 * 3;")
	assign := program.Nodes[0].(*ast.BinaryExpr)
	require.Equal(t, ast.Assign, assign.Op)

	add, ok := assign.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Add, add.Op)

	mul, ok := add.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Mul, mul.Op)
	assert.Equal(t, "(1 + (2 * 3))", add.String())
}

func TestLeftAssociativity(t *testing.T) {
	program := parse(t, "x = 10 - 4 - 3;")
	sub := program.Nodes[0].(*ast.BinaryExpr).Right.(*ast.BinaryExpr)

	assert.Equal(t, ast.Sub, sub.Op)
	left, ok := sub.Left.(*ast.BinaryExpr)
	require.True(t, ok, "subtraction should group to the left")
	assert.Equal(t, "10", left.Left.String())
	assert.Equal(t, "3", sub.Right.String())
}

func TestUnaryKeepsOperand(t *testing.T) {
	program := parse(t, "x = !!ok;")
	outer, ok := program.Nodes[0].(*ast.BinaryExpr).Right.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.BoolNot, outer.Op)

	inner, ok := outer.Operand.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, "ok", inner.Operand.String())
}

func TestFieldAccessAndDerefAssignment(t *testing.T) {
	program := parse(t, "a.b.c = 1;\n*p = &x;")
	require.Len(t, program.Nodes, 2)

	field := program.Nodes[0].(*ast.BinaryExpr).Left.(*ast.BinaryExpr)
	assert.Equal(t, ast.FieldAccess, field.Op)
	assert.Equal(t, "a", field.Left.String())
	assert.Equal(t, "b.c", field.Right.String())

	deref := program.Nodes[1].(*ast.BinaryExpr)
	assert.Equal(t, ast.Deref, deref.Left.(*ast.UnaryExpr).Op)
	assert.Equal(t, ast.AddressOf, deref.Right.(*ast.UnaryExpr).Op)
}

func TestDeclarationExclusivity(t *testing.T) {
	typed := parse(t, "var x: int;").Nodes[0].(*ast.VarDecl)
	assert.NotNil(t, typed.Type)
	assert.Nil(t, typed.Value)

	inferred := parse(t, "var x = 5;").Nodes[0].(*ast.VarDecl)
	assert.Nil(t, inferred.Type)
	assert.NotNil(t, inferred.Value)

	err := parseErr(t, "var x;", errors.IncompleteDeclaration)
	assert.Equal(t, token.SEMICOLON, err.Found.Kind)
	assert.Contains(t, err.HelpText, "var x: int;")
}

func TestParseTypes(t *testing.T) {
	program := parse(t, "fn f(p: *int, buf: [16]u8, rest: []*u8) -> *[]int { return p; }")
	fn := program.Nodes[0].(*ast.FnDecl)

	params := fn.Params.Params
	require.Len(t, params, 3)

	ptr, ok := params[0].Type.(*ast.PointerType)
	require.True(t, ok)
	assert.Equal(t, "int", ptr.Base.String())

	arr, ok := params[1].Type.(*ast.ArrayType)
	require.True(t, ok)
	assert.Equal(t, "16", arr.Len.String())

	unsized, ok := params[2].Type.(*ast.ArrayType)
	require.True(t, ok)
	assert.Nil(t, unsized.Len)
	assert.Equal(t, "*u8", unsized.Base.String())

	assert.Equal(t, "*[]int", fn.ReturnType.String())
}

func TestPublicFunctionAndTrailingCommas(t *testing.T) {
	program := parse(t, "pub fn main(argc: int,) -> int { run(argc, 'x',); return 0; }")
	fn := program.Nodes[0].(*ast.FnDecl)

	assert.True(t, fn.Public)
	assert.Len(t, fn.Params.Params, 1)

	call := fn.Body.Stmts[0].(*ast.CallExpr)
	require.Len(t, call.Args, 2)
	assert.Equal(t, ast.Char, call.Args[1].(*ast.Literal).Kind)
}

func TestParseLoop(t *testing.T) {
	program := parse(t, "for { } for i < n { i = i + 1; }")
	require.Len(t, program.Nodes, 2)

	bare := program.Nodes[0].(*ast.LoopStmt)
	assert.Nil(t, bare.Iterable)
	assert.Empty(t, bare.Body.Stmts)

	loop := program.Nodes[1].(*ast.LoopStmt)
	require.NotNil(t, loop.Iterable)
	assert.Nil(t, loop.Condition)
	assert.Nil(t, loop.Pattern)
	assert.Equal(t, "(i < n)", loop.Iterable.String())
	assert.Len(t, loop.Body.Stmts, 1)
}

func TestCommentsAreSkipped(t *testing.T) {
	program := parse(t, "// header\nvar x = 1; // trailing\n// footer")
	require.Len(t, program.Nodes, 1)
	assert.Equal(t, "var x = 1;", program.String())
}

func TestEmptyProgram(t *testing.T) {
	program := parse(t, "  \n// nothing here\n")
	assert.Empty(t, program.Nodes)
	assert.Equal(t, "test.lm", program.Filename)
}

func TestNewParserAppendsEOF(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.IDENTIFIER, Index: 0, Text: "f", Location: token.Location{Offset: 0, Line: 1, Column: 1}},
		{Kind: token.LEFT_PAREN, Index: 1, Text: "(", Location: token.Location{Offset: 1, Line: 1, Column: 2}},
		{Kind: token.RIGHT_PAREN, Index: 2, Text: ")", Location: token.Location{Offset: 2, Line: 1, Column: 3}},
		{Kind: token.SEMICOLON, Index: 3, Text: ";", Location: token.Location{Offset: 3, Line: 1, Column: 4}},
	}

	program, err := NewParser("tokens", tokens).ParseProgram()
	require.NoError(t, err)
	require.Len(t, program.Nodes, 1)
	assert.Equal(t, "f();", program.String())

	_, err = NewParser("tokens", tokens[:2]).ParseProgram()
	require.Error(t, err)
	synErr := err.(*errors.SyntaxError)
	assert.Equal(t, token.EOF, synErr.Found.Kind)
	assert.Equal(t, 3, synErr.Location.Column)
}

func TestNewParserEOFAfterMultilineToken(t *testing.T) {
	tokens, err := Tokenize("x = \"a\nb\"")
	require.NoError(t, err)
	require.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)

	_, err = NewParser("tokens", tokens[:len(tokens)-1]).ParseProgram()
	require.Error(t, err)
	synErr := err.(*errors.SyntaxError)
	require.Equal(t, token.EOF, synErr.Found.Kind)
	assert.Equal(t, "2:3", synErr.Location.String())
	assert.Equal(t, 9, synErr.Location.Offset)
	assert.Equal(t, 7, synErr.Location.LineStart)
	assert.Equal(t, tokens[len(tokens)-1].Location, synErr.Location)
}

func TestFieldNameMustBeIdentifier(t *testing.T) {
	err := parseErr(t, "x = a.1;", errors.UnexpectedToken)
	assert.Equal(t, token.IDENTIFIER, err.Expected)
	assert.Equal(t, "1", err.Found.Text)
	assert.Equal(t, 7, err.Location.Column)

	program := parse(t, "x = a.f(1).g;")
	assert.Equal(t, "x = a.f(1).g;", program.String())
}

func TestErrorCarriesSourceLine(t *testing.T) {
	err := parseErr(t, "fn f() -> int {\n  var x = 5 y\n}", errors.UnexpectedToken)

	assert.Equal(t, token.SEMICOLON, err.Expected)
	assert.Equal(t, "y", err.Found.Text)
	assert.Equal(t, 2, err.Location.Line)
	assert.Equal(t, 13, err.Location.Column)
	assert.Equal(t, "  var x = 5 y", err.SourceLine)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.lm")
	require.NoError(t, os.WriteFile(path, []byte("fn main() -> int { return 0; }\n"), 0o644))

	program, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, program.Filename)
	assert.Len(t, program.Nodes, 1)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.lm"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
