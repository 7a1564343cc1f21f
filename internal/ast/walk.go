package ast

// Children returns the direct children of node in source order. Absent
// optional children are omitted.
func Children(node Node) []Node {
	var out []Node
	add := func(n Node) {
		if n != nil {
			out = append(out, n)
		}
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Nodes {
			add(s)
		}
	case *BinaryExpr:
		add(n.Left)
		add(n.Right)
	case *UnaryExpr:
		add(n.Operand)
	case *CallExpr:
		for _, arg := range n.Args {
			add(arg)
		}
	case *PointerType:
		add(n.Base)
	case *ArrayType:
		if n.Len != nil {
			add(n.Len)
		}
		add(n.Base)
	case *ParamDecl:
		add(n.Type)
	case *ParamList:
		for _, p := range n.Params {
			add(p)
		}
	case *VarDecl:
		out = appendDecl(out, n.Name, n.Type, n.Value)
	case *ConstDecl:
		out = appendDecl(out, n.Name, n.Type, n.Value)
	case *Block:
		for _, s := range n.Stmts {
			add(s)
		}
	case *IfStmt:
		add(n.Cond)
		if n.Body != nil {
			add(n.Body)
		}
	case *LoopStmt:
		add(n.Condition)
		add(n.Pattern)
		add(n.Iterable)
		if n.Body != nil {
			add(n.Body)
		}
	case *ReturnStmt:
		if n.Value != nil {
			add(n.Value)
		}
	case *FnDecl:
		if n.Params != nil {
			add(n.Params)
		}
		add(n.ReturnType)
		if n.Body != nil {
			add(n.Body)
		}
	}
	return out
}

func appendDecl(out []Node, name *Literal, typ Type, value Expr) []Node {
	if name != nil {
		out = append(out, name)
	}
	if typ != nil {
		out = append(out, typ)
	}
	if value != nil {
		out = append(out, value)
	}
	return out
}

// Inspect traverses the tree depth-first, calling f for each node. Children
// of a node are skipped when f returns false.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, f)
	}
}
