package grammar

import (
	"fmt"
	"strings"
)

// Printing produces canonical source: four-space indentation, one statement
// per line, single spaces around binary operators. Comments are elided by the
// lexer and do not survive.

func indent(level int) string {
	return strings.Repeat("    ", level)
}

func (p *Program) String() string {
	var b strings.Builder
	for i, item := range p.Items {
		// Blank line around functions
		if i > 0 && (item.Function != nil || p.Items[i-1].Function != nil) {
			b.WriteString("\n")
		}
		b.WriteString(item.StringWithIndent(0))
	}
	return b.String()
}

func (i *Item) StringWithIndent(level int) string {
	if i.Function != nil {
		return i.Function.StringWithIndent(level)
	}
	if i.Statement != nil {
		return i.Statement.StringWithIndent(level)
	}
	return ""
}

func (f *Function) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString(indent(level))
	if f.Public {
		b.WriteString("pub ")
	}
	b.WriteString(fmt.Sprintf("fn %s(", f.Name))
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(fmt.Sprintf(") -> %s ", f.Return))
	b.WriteString(f.Body.StringWithIndent(level))
	b.WriteString("\n")
	return b.String()
}

func (p *Param) String() string {
	return fmt.Sprintf("%s: %s", p.Name, p.Type)
}

func (t *Type) String() string {
	switch {
	case t.Pointer != nil:
		return "*" + t.Pointer.String()
	case t.Array != nil:
		return t.Array.String()
	default:
		return t.Name
	}
}

func (a *ArrayType) String() string {
	if a.Len == nil {
		return "[]" + a.Elem.String()
	}
	return fmt.Sprintf("[%s]%s", a.Len, a.Elem)
}

// StringWithIndent renders the block starting at the current column; the
// closing brace is indented to level.
func (b *Block) StringWithIndent(level int) string {
	if len(b.Statements) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Statements {
		sb.WriteString(s.StringWithIndent(level + 1))
	}
	sb.WriteString(indent(level) + "}")
	return sb.String()
}

func (s *Statement) StringWithIndent(level int) string {
	prefix := indent(level)
	switch {
	case s.Var != nil:
		return prefix + "var " + s.Var.String() + ";\n"
	case s.Const != nil:
		return prefix + "const " + s.Const.String() + ";\n"
	case s.Return != nil:
		return prefix + s.Return.String() + ";\n"
	case s.If != nil:
		return prefix + "if " + s.If.Cond.String() + " " + s.If.Body.StringWithIndent(level) + "\n"
	case s.For != nil:
		head := "for "
		if s.For.Iterable != nil {
			head += s.For.Iterable.String() + " "
		}
		return prefix + head + s.For.Body.StringWithIndent(level) + "\n"
	case s.Block != nil:
		return prefix + s.Block.StringWithIndent(level) + "\n"
	case s.Expr != nil:
		return prefix + s.Expr.String() + ";\n"
	}
	return ""
}

func (d *Decl) String() string {
	out := d.Name
	if d.Type != nil {
		out += ": " + d.Type.String()
	}
	if d.Value != nil {
		out += " = " + d.Value.String()
	}
	return out
}

func (r *Return) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

func (e *Expr) String() string {
	if e.Assign != nil {
		return e.Left.String() + " = " + e.Assign.String()
	}
	return e.Left.String()
}

func (b *Binary) String() string {
	var sb strings.Builder
	sb.WriteString(b.Left.String())
	for _, op := range b.Ops {
		sb.WriteString(" " + op.Operator + " " + op.Right.String())
	}
	return sb.String()
}

func (u *Unary) String() string {
	if u.Prefix != nil {
		return u.Prefix.Op + u.Prefix.Operand.String()
	}
	return u.Value.String()
}

func (p *Postfix) String() string {
	if p.Field != nil {
		return p.Primary.String() + "." + p.Field.String()
	}
	return p.Primary.String()
}

func (f *Field) String() string {
	name := f.Member.Name
	if f.Member.Call != nil {
		name = f.Member.Call.String()
	}
	if f.Field != nil {
		return name + "." + f.Field.String()
	}
	return name
}

func (p *Primary) String() string {
	switch {
	case p.Call != nil:
		return p.Call.String()
	case p.Parens != nil:
		return "(" + p.Parens.String() + ")"
	case p.Ident != "":
		return p.Ident
	case p.Number != "":
		return p.Number
	case p.Str != "":
		return p.Str
	default:
		return p.Char
	}
}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(args, ", "))
}
