package ast

// Stmt is anything that may appear in a block or at the top level.
type Stmt interface {
	Node
	isStmt()
}

// Expr is a value-producing node. Every expression may stand as a statement.
type Expr interface {
	Stmt
	isExpr()
}

type Decl interface {
	Stmt
	isDecl()
}

type Type interface {
	Node
	isType()
}

func (*Literal) isExpr()    {}
func (*BinaryExpr) isExpr() {}
func (*UnaryExpr) isExpr()  {}
func (*CallExpr) isExpr()   {}

func (*Literal) isStmt()    {}
func (*BinaryExpr) isStmt() {}
func (*UnaryExpr) isStmt()  {}
func (*CallExpr) isStmt()   {}
func (*VarDecl) isStmt()    {}
func (*ConstDecl) isStmt()  {}
func (*FnDecl) isStmt()     {}
func (*Block) isStmt()      {}
func (*IfStmt) isStmt()     {}
func (*LoopStmt) isStmt()   {}
func (*ReturnStmt) isStmt() {}

func (*VarDecl) isDecl()   {}
func (*ConstDecl) isDecl() {}
func (*FnDecl) isDecl()    {}

func (*NamedType) isType()   {}
func (*PointerType) isType() {}
func (*ArrayType) isType()   {}
