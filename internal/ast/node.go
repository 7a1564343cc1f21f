package ast

import "lumen/token"

type Node interface {
	NodePos() token.Location
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() token.Location {
	if len(p.Nodes) == 0 {
		return token.Location{Line: 1, Column: 1}
	}
	return p.Nodes[0].NodePos()
}
func (*Program) NodeType() NodeType { return PROGRAM }

func (l *Literal) NodePos() token.Location { return l.Token.Location }
func (*Literal) NodeType() NodeType        { return LITERAL }

func (b *BinaryExpr) NodePos() token.Location { return b.Left.NodePos() }
func (*BinaryExpr) NodeType() NodeType        { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() token.Location { return u.Token.Location }
func (*UnaryExpr) NodeType() NodeType        { return UNARY_EXPR }

func (c *CallExpr) NodePos() token.Location { return c.Callee.Location }
func (*CallExpr) NodeType() NodeType        { return CALL_EXPR }

func (t *NamedType) NodePos() token.Location { return t.Token.Location }
func (*NamedType) NodeType() NodeType        { return NAMED_TYPE }

func (t *PointerType) NodePos() token.Location { return t.Token.Location }
func (*PointerType) NodeType() NodeType        { return POINTER_TYPE }

func (t *ArrayType) NodePos() token.Location { return t.Token.Location }
func (*ArrayType) NodeType() NodeType        { return ARRAY_TYPE }

func (p *ParamDecl) NodePos() token.Location { return p.Name.Location }
func (*ParamDecl) NodeType() NodeType        { return PARAM_DECL }

func (p *ParamList) NodePos() token.Location { return p.Token.Location }
func (*ParamList) NodeType() NodeType        { return PARAM_LIST }

func (v *VarDecl) NodePos() token.Location { return v.Token.Location }
func (*VarDecl) NodeType() NodeType        { return VAR_DECL }

func (c *ConstDecl) NodePos() token.Location { return c.Token.Location }
func (*ConstDecl) NodeType() NodeType        { return CONST_DECL }

func (f *FnDecl) NodePos() token.Location { return f.Token.Location }
func (*FnDecl) NodeType() NodeType        { return FN_DECL }

func (b *Block) NodePos() token.Location { return b.Token.Location }
func (*Block) NodeType() NodeType        { return BLOCK }

func (i *IfStmt) NodePos() token.Location { return i.Token.Location }
func (*IfStmt) NodeType() NodeType        { return IF_STMT }

func (l *LoopStmt) NodePos() token.Location { return l.Token.Location }
func (*LoopStmt) NodeType() NodeType        { return LOOP_STMT }

func (r *ReturnStmt) NodePos() token.Location { return r.Token.Location }
func (*ReturnStmt) NodeType() NodeType        { return RETURN_STMT }
