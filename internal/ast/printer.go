package ast

import (
	"fmt"
	"strings"
)

var opSymbols = [...]string{
	BAD_OP:       "?",
	Add:          "+",
	Sub:          "-",
	Mul:          "*",
	Div:          "/",
	BoolOr:       "||",
	BoolAnd:      "&&",
	EqualEqual:   "==",
	NotEqual:     "!=",
	LessThan:     "<",
	GreaterThan:  ">",
	LessEqual:    "<=",
	GreaterEqual: ">=",
	BitAnd:       "&",
	BitOr:        "|",
	BitXor:       "^",
	ShiftLeft:    "<<",
	ShiftRight:   ">>",
	FieldAccess:  ".",
	Assign:       "=",
	BoolNot:      "!",
	Negation:     "-",
	BitNot:       "~",
	AddressOf:    "&",
	Deref:        "*",
}

// Symbol returns the source spelling of o.
func (o Op) Symbol() string {
	if o >= 0 && int(o) < len(opSymbols) {
		return opSymbols[o]
	}
	return "?"
}

func (p *Program) String() string {
	var b strings.Builder
	for i, node := range p.Nodes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(statementString(node))
	}
	return b.String()
}

// statementString renders s as it would appear in a block; bare
// expressions get their terminating semicolon back.
func statementString(s Stmt) string {
	if s == nil {
		return "<nil>"
	}
	if _, ok := s.(Expr); ok {
		return s.String() + ";"
	}
	return s.String()
}

func (l *Literal) String() string {
	return l.Token.Text
}

func (b *BinaryExpr) String() string {
	switch b.Op {
	case FieldAccess:
		return fmt.Sprintf("%s.%s", b.Left, b.Right)
	case Assign:
		return fmt.Sprintf("%s = %s", b.Left, b.Right)
	}
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op.Symbol(), b.Right)
}

func (u *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", u.Op.Symbol(), u.Operand)
}

func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee.Text, strings.Join(args, ", "))
}

func (t *NamedType) String() string {
	return t.Token.Text
}

func (t *PointerType) String() string {
	return "*" + t.Base.String()
}

func (t *ArrayType) String() string {
	if t.Len == nil {
		return "[]" + t.Base.String()
	}
	return fmt.Sprintf("[%s]%s", t.Len, t.Base)
}

func (p *ParamDecl) String() string {
	return fmt.Sprintf("%s: %s", p.Name.Text, p.Type)
}

func (p *ParamList) String() string {
	params := make([]string, len(p.Params))
	for i, param := range p.Params {
		params[i] = param.String()
	}
	return "(" + strings.Join(params, ", ") + ")"
}

func (v *VarDecl) String() string {
	return declString("var", v.Name, v.Type, v.Value)
}

func (c *ConstDecl) String() string {
	return declString("const", c.Name, c.Type, c.Value)
}

func declString(keyword string, name *Literal, typ Type, value Expr) string {
	var b strings.Builder
	b.WriteString(keyword)
	b.WriteString(" ")
	b.WriteString(name.String())
	if typ != nil {
		b.WriteString(": ")
		b.WriteString(typ.String())
	}
	if value != nil {
		b.WriteString(" = ")
		b.WriteString(value.String())
	}
	b.WriteString(";")
	return b.String()
}

func (b *Block) String() string {
	if len(b.Stmts) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, stmt := range b.Stmts {
		sb.WriteString(statementString(stmt))
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}

func (i *IfStmt) String() string {
	return fmt.Sprintf("if %s %s", i.Cond, i.Body)
}

func (l *LoopStmt) String() string {
	if l.Iterable == nil {
		return "for " + l.Body.String()
	}
	return fmt.Sprintf("for %s %s", l.Iterable, l.Body)
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Value)
}

func (f *FnDecl) String() string {
	var b strings.Builder
	if f.Public {
		b.WriteString("pub ")
	}
	b.WriteString("fn ")
	b.WriteString(f.Name.Text)
	b.WriteString(f.Params.String())
	b.WriteString(" -> ")
	b.WriteString(f.ReturnType.String())
	b.WriteString(" ")
	b.WriteString(f.Body.String())
	return b.String()
}
