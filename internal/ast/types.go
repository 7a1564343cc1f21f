package ast

import "fmt"

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// Root
	PROGRAM

	// Expressions
	LITERAL
	BINARY_EXPR
	UNARY_EXPR
	CALL_EXPR

	// Types
	NAMED_TYPE
	POINTER_TYPE
	ARRAY_TYPE

	// Declarations
	PARAM_DECL
	PARAM_LIST
	VAR_DECL
	CONST_DECL
	FN_DECL

	// Statements
	BLOCK
	IF_STMT
	LOOP_STMT
	RETURN_STMT
)

var nodeTypeNames = [...]string{
	ILLEGAL:      "ILLEGAL",
	PROGRAM:      "PROGRAM",
	LITERAL:      "LITERAL",
	BINARY_EXPR:  "BINARY_EXPR",
	UNARY_EXPR:   "UNARY_EXPR",
	CALL_EXPR:    "CALL_EXPR",
	NAMED_TYPE:   "NAMED_TYPE",
	POINTER_TYPE: "POINTER_TYPE",
	ARRAY_TYPE:   "ARRAY_TYPE",
	PARAM_DECL:   "PARAM_DECL",
	PARAM_LIST:   "PARAM_LIST",
	VAR_DECL:     "VAR_DECL",
	CONST_DECL:   "CONST_DECL",
	FN_DECL:      "FN_DECL",
	BLOCK:        "BLOCK",
	IF_STMT:      "IF_STMT",
	LOOP_STMT:    "LOOP_STMT",
	RETURN_STMT:  "RETURN_STMT",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// Op tags the operation carried by a BinaryExpr or UnaryExpr.
type Op int

const (
	BAD_OP Op = iota

	// Binary
	Add
	Sub
	Mul
	Div
	BoolOr
	BoolAnd
	EqualEqual
	NotEqual
	LessThan
	GreaterThan
	LessEqual
	GreaterEqual
	BitAnd
	BitOr
	BitXor
	ShiftLeft
	ShiftRight
	FieldAccess
	Assign

	// Unary
	BoolNot
	Negation
	BitNot
	AddressOf
	Deref
)

var opNames = [...]string{
	BAD_OP:       "BadOp",
	Add:          "Add",
	Sub:          "Sub",
	Mul:          "Mul",
	Div:          "Div",
	BoolOr:       "BoolOr",
	BoolAnd:      "BoolAnd",
	EqualEqual:   "EqualEqual",
	NotEqual:     "NotEqual",
	LessThan:     "LessThan",
	GreaterThan:  "GreaterThan",
	LessEqual:    "LessEqual",
	GreaterEqual: "GreaterEqual",
	BitAnd:       "BitAnd",
	BitOr:        "BitOr",
	BitXor:       "BitXor",
	ShiftLeft:    "ShiftLeft",
	ShiftRight:   "ShiftRight",
	FieldAccess:  "FieldAccess",
	Assign:       "Assign",
	BoolNot:      "BoolNot",
	Negation:     "Negation",
	BitNot:       "BitNot",
	AddressOf:    "AddressOf",
	Deref:        "Deref",
}

func (o Op) String() string {
	if o >= 0 && int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// IsComparison reports whether o is one of the non-associative comparisons.
func (o Op) IsComparison() bool {
	return o >= EqualEqual && o <= GreaterEqual
}

// IsUnary reports whether o is a prefix operation.
func (o Op) IsUnary() bool {
	return o >= BoolNot && o <= Deref
}

type LiteralKind int

const (
	Identifier LiteralKind = iota
	String
	Number
	Char
)

func (k LiteralKind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case String:
		return "String"
	case Number:
		return "Number"
	case Char:
		return "Char"
	default:
		return fmt.Sprintf("LiteralKind(%d)", int(k))
	}
}
