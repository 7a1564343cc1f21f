package ast

import (
	"fmt"
	"io"
	"strings"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func leaf(label string) *treeNode {
	return &treeNode{label: label}
}

func group(label string, children ...*treeNode) *treeNode {
	return &treeNode{label: label, children: children}
}

// Fprint writes node to w as a box-drawing tree:
//
//	FnDecl add
//	├── Params
//	│   └── ParamDecl a
//	│       └── Type int
//	├── Returns
//	│   └── Type int
//	└── Body
func Fprint(w io.Writer, node Node) error {
	_, err := io.WriteString(w, Sprint(node))
	return err
}

// Sprint returns the tree rendering of node.
func Sprint(node Node) string {
	var b strings.Builder
	root := describe(node)
	b.WriteString(root.label)
	b.WriteString("\n")
	writeTree(&b, root.children, "")
	return b.String()
}

// Fprint writes the program tree to w.
func (p *Program) Fprint(w io.Writer) error {
	return Fprint(w, p)
}

func writeTree(b *strings.Builder, children []*treeNode, prefix string) {
	for i, child := range children {
		branch, indent := "├── ", "│   "
		if i == len(children)-1 {
			branch, indent = "└── ", "    "
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(child.label)
		b.WriteString("\n")
		writeTree(b, child.children, prefix+indent)
	}
}

func describe(node Node) *treeNode {
	switch n := node.(type) {
	case nil:
		return leaf("<nil>")

	case *Program:
		label := "Program"
		if n.Filename != "" {
			label += " " + n.Filename
		}
		t := leaf(label)
		for _, s := range n.Nodes {
			t.children = append(t.children, describe(s))
		}
		return t

	case *Literal:
		return leaf(fmt.Sprintf("%s %s", n.Kind, n.Token.Text))

	case *BinaryExpr:
		return group(fmt.Sprintf("%s %s", n.Op, n.Op.Symbol()), describe(n.Left), describe(n.Right))

	case *UnaryExpr:
		return group(fmt.Sprintf("%s %s", n.Op, n.Op.Symbol()), describe(n.Operand))

	case *CallExpr:
		t := leaf("Call " + n.Callee.Text)
		for _, arg := range n.Args {
			t.children = append(t.children, describe(arg))
		}
		return t

	case *NamedType:
		return leaf("Type " + n.Token.Text)

	case *PointerType:
		return group("Pointer *", describe(n.Base))

	case *ArrayType:
		if n.Len == nil {
			return group("Array (unsized)", describe(n.Base))
		}
		return group("Array", group("Len", describe(n.Len)), describe(n.Base))

	case *ParamList:
		t := leaf("Params")
		for _, p := range n.Params {
			t.children = append(t.children, describe(p))
		}
		return t

	case *ParamDecl:
		return group("ParamDecl "+n.Name.Text, describe(n.Type))

	case *VarDecl:
		return describeDecl("VarDecl", n.Name, n.Type, n.Value)

	case *ConstDecl:
		return describeDecl("ConstDecl", n.Name, n.Type, n.Value)

	case *FnDecl:
		label := "FnDecl " + n.Name.Text
		if n.Public {
			label += " (pub)"
		}
		body := describe(n.Body)
		body.label = "Body"
		return group(label, describe(n.Params), group("Returns", describe(n.ReturnType)), body)

	case *Block:
		t := leaf("Block")
		for _, s := range n.Stmts {
			t.children = append(t.children, describe(s))
		}
		return t

	case *IfStmt:
		return group("If", group("Condition", describe(n.Cond)), describe(n.Body))

	case *LoopStmt:
		t := leaf("Loop")
		if n.Condition != nil {
			t.children = append(t.children, group("Condition", describe(n.Condition)))
		}
		if n.Pattern != nil {
			t.children = append(t.children, group("Pattern", describe(n.Pattern)))
		}
		if n.Iterable != nil {
			t.children = append(t.children, group("Iterable", describe(n.Iterable)))
		}
		t.children = append(t.children, describe(n.Body))
		return t

	case *ReturnStmt:
		if n.Value == nil {
			return leaf("Return")
		}
		return group("Return", describe(n.Value))
	}

	return leaf(fmt.Sprintf("%T", node))
}

func describeDecl(label string, name *Literal, typ Type, value Expr) *treeNode {
	t := leaf(label + " " + name.Token.Text)
	if typ != nil {
		t.children = append(t.children, describe(typ))
	} else {
		t.children = append(t.children, leaf("Type inferred"))
	}
	if value != nil {
		t.children = append(t.children, describe(value))
	}
	return t
}
