package ast

import "lumen/token"

// Program is the root of a parsed source file.
// Example: "fn main() -> int { return 0; }"
type Program struct {
	Filename string
	Nodes    []Stmt // top-level declarations and statements, in source order
}

// Literal is a leaf expression.
// Example: "x", "42", "\"hi\"", "'c'"
type Literal struct {
	Kind  LiteralKind
	Token token.Token
}

// BinaryExpr covers arithmetic, logic, comparison, field access and
// assignment.
// Example: "a + b", "p.x", "x = 1"
type BinaryExpr struct {
	Op    Op
	Token token.Token // operator
	Left  Expr
	Right Expr
}

// UnaryExpr is a prefix operation.
// Example: "!ok", "-n", "&x", "*p"
type UnaryExpr struct {
	Op      Op
	Token   token.Token
	Operand Expr
}

// CallExpr is a call to a named function.
// Example: "foo(1, 2, 3)"
type CallExpr struct {
	Callee token.Token
	Args   []Expr
}

// NamedType refers to a type by name.
// Example: "int"
type NamedType struct {
	Token token.Token
}

// PointerType wraps a base type.
// Example: "*int"
type PointerType struct {
	Token token.Token // '*'
	Base  Type
}

// ArrayType has an optional length expression; Len is nil when unsized.
// Example: "[4]int", "[]int"
type ArrayType struct {
	Token token.Token // '['
	Len   Expr
	Base  Type
}

// ParamDecl is a single function parameter.
// Example: "a: int"
type ParamDecl struct {
	Name token.Token
	Type Type
}

// ParamList is the parenthesised parameter list of a function.
type ParamList struct {
	Token  token.Token // '('
	Params []*ParamDecl
}

// VarDecl declares a mutable variable. At least one of Type and Value is set.
// Example: "var x: int = 5"
type VarDecl struct {
	Token token.Token // 'var'
	Name  *Literal
	Type  Type
	Value Expr
}

// ConstDecl declares a constant. At least one of Type and Value is set.
// Example: "const limit = 10"
type ConstDecl struct {
	Token token.Token // 'const'
	Name  *Literal
	Type  Type
	Value Expr
}

// Block is a braced statement sequence.
type Block struct {
	Token token.Token // '{'
	Stmts []Stmt
}

// IfStmt has no else branch.
// Example: "if x > 0 { ... }"
type IfStmt struct {
	Token token.Token
	Cond  Expr
	Body  *Block
}

// LoopStmt is a for loop. The parser only ever fills Iterable; Condition and
// Pattern are reserved for richer loop headers.
// Example: "for { ... }", "for items { ... }"
type LoopStmt struct {
	Token     token.Token
	Condition Expr
	Pattern   Stmt // binding introduced by the header, e.g. a var declaration
	Iterable  Expr
	Body      *Block
}

// ReturnStmt has an optional value.
// Example: "return a + b;"
type ReturnStmt struct {
	Token token.Token
	Value Expr
}

// FnDecl is a function declaration with a mandatory return type.
// Example: "pub fn add(a: int, b: int) -> int { return a + b; }"
type FnDecl struct {
	Token      token.Token // 'fn'
	Public     bool
	Name       token.Token
	Params     *ParamList
	ReturnType Type
	Body       *Block
}
