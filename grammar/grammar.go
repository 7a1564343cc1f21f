package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is the root of the reference grammar.
type Program struct {
	Pos   lexer.Position
	Items []*Item `@@*`
}

type Item struct {
	Function  *Function  `  @@`
	Statement *Statement `| @@`
}

type Function struct {
	Pos    lexer.Position
	Public bool     `@"pub"?`
	Name   string   `"fn" @Ident "("`
	Params []*Param `( @@ ( "," @@ )* ","? )? ")"`
	Return *Type    `"->" @@`
	Body   *Block   `@@`
}

type Param struct {
	Pos  lexer.Position
	Name string `@Ident ":"`
	Type *Type  `@@`
}

type Type struct {
	Pos     lexer.Position
	Pointer *Type      `  "*" @@`
	Array   *ArrayType `| @@`
	Name    string     `| @Ident`
}

type ArrayType struct {
	Len  *Expr `"[" @@? "]"`
	Elem *Type `@@`
}

type Block struct {
	Pos        lexer.Position
	Statements []*Statement `"{" @@* "}"`
}

type Statement struct {
	Pos    lexer.Position
	Var    *Decl   `  "var" @@ ";"`
	Const  *Decl   `| "const" @@ ";"`
	Return *Return `| @@ ";"`
	If     *If     `| @@`
	For    *For    `| @@`
	Block  *Block  `| @@`
	Expr   *Expr   `| @@ ";"`
}

type Decl struct {
	Name  string `@Ident`
	Type  *Type  `( ":" @@ )?`
	Value *Expr  `( "=" @@ )?`
}

type Return struct {
	Keyword string `@"return"`
	Value   *Expr  `@@?`
}

type If struct {
	Cond *Expr  `"if" @@`
	Body *Block `@@`
}

type For struct {
	Keyword  string `@"for"`
	Iterable *Expr  `@@?`
	Body     *Block `@@`
}

// Expr is an optional assignment over a flat operator chain. Precedence is
// resolved by the hand-written parser, not here.
type Expr struct {
	Pos    lexer.Position
	Left   *Binary `@@`
	Assign *Expr   `( "=" @@ )?`
}

type Binary struct {
	Left *Unary   `@@`
	Ops  []*BinOp `@@*`
}

type BinOp struct {
	Operator string `@("||" | "&&" | "==" | "!=" | "<=" | ">=" | "<<" | ">>" | "<" | ">" | "&" | "|" | "^" | "+" | "-" | "*" | "/")`
	Right    *Unary `@@`
}

type Unary struct {
	Prefix *Prefix  `  @@`
	Value  *Postfix `| @@`
}

type Prefix struct {
	Op      string `@("!" | "-" | "~" | "&" | "*")`
	Operand *Unary `@@`
}

// Postfix nests field access to the right: a.b.c is a.(b.c).
type Postfix struct {
	Primary *Primary `@@`
	Field   *Field   `( "." @@ )?`
}

// Field is a name after '.', possibly called.
type Field struct {
	Member *Member `@@`
	Field  *Field  `( "." @@ )?`
}

type Member struct {
	Call *Call  `  @@`
	Name string `| @Ident`
}

type Primary struct {
	Call   *Call  `  @@`
	Ident  string `| @Ident`
	Number string `| @Number`
	Str    string `| @String`
	Char   string `| @Char`
	Parens *Expr  `| "(" @@ ")"`
}

type Call struct {
	Callee string  `@Ident "("`
	Args   []*Expr `( @@ ( "," @@ )* ","? )? ")"`
}
