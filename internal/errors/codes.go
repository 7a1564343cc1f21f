package errors

// Error codes for the Lumen front end.
//
// Error code ranges:
// E0100-E0149: Scanner errors
// E0150-E0199: Parser errors
type Kind int

const (
	UnhandledCharacter Kind = iota + 1
	UnterminatedStringLiteral
	UnterminatedCharLiteral

	UnexpectedToken
	ExpectedExpression
	ExpectedTypeExpression
	UnassignableExpression
	IncompleteDeclaration
	UnsupportedConstruct
)

const (
	// Scanner errors (E0100-E0149)

	// E0100: Byte outside every token class
	ErrorUnhandledCharacter = "E0100"

	// E0101: End of input inside a string literal
	ErrorUnterminatedString = "E0101"

	// E0102: Malformed or unterminated char literal
	ErrorUnterminatedChar = "E0102"

	// Parser errors (E0150-E0199)

	// E0150: A specific token kind was required
	ErrorUnexpectedToken = "E0150"

	// E0151: A grammar position required an expression
	ErrorExpectedExpression = "E0151"

	// E0152: A grammar position required a type
	ErrorExpectedType = "E0152"

	// E0153: Left-hand side of '=' cannot be assigned to
	ErrorUnassignable = "E0153"

	// E0154: var/const without type and without value
	ErrorIncompleteDeclaration = "E0154"

	// E0155: Recognized but not implemented (while, else, chained comparisons, directives)
	ErrorUnsupportedConstruct = "E0155"
)

var kindNames = map[Kind]string{
	UnhandledCharacter:        "UnhandledCharacter",
	UnterminatedStringLiteral: "UnterminatedStringLiteral",
	UnterminatedCharLiteral:   "UnterminatedCharLiteral",
	UnexpectedToken:           "UnexpectedToken",
	ExpectedExpression:        "ExpectedExpression",
	ExpectedTypeExpression:    "ExpectedTypeExpression",
	UnassignableExpression:    "UnassignableExpression",
	IncompleteDeclaration:     "IncompleteDeclaration",
	UnsupportedConstruct:      "UnsupportedConstruct",
}

var kindCodes = map[Kind]string{
	UnhandledCharacter:        ErrorUnhandledCharacter,
	UnterminatedStringLiteral: ErrorUnterminatedString,
	UnterminatedCharLiteral:   ErrorUnterminatedChar,
	UnexpectedToken:           ErrorUnexpectedToken,
	ExpectedExpression:        ErrorExpectedExpression,
	ExpectedTypeExpression:    ErrorExpectedType,
	UnassignableExpression:    ErrorUnassignable,
	IncompleteDeclaration:     ErrorIncompleteDeclaration,
	UnsupportedConstruct:      ErrorUnsupportedConstruct,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UnknownError"
}

// Code returns the stable error code for k.
func (k Kind) Code() string {
	return kindCodes[k]
}

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnhandledCharacter:
		return "The scanner met a character that starts no token"
	case ErrorUnterminatedString:
		return "A string literal is missing its closing quote"
	case ErrorUnterminatedChar:
		return "A char literal is missing its closing quote"
	case ErrorUnexpectedToken:
		return "The parser required a different token here"
	case ErrorExpectedExpression:
		return "An expression is required here"
	case ErrorExpectedType:
		return "A type is required here"
	case ErrorUnassignable:
		return "The left-hand side of an assignment is not assignable"
	case ErrorIncompleteDeclaration:
		return "A declaration needs a type, a value, or both"
	case ErrorUnsupportedConstruct:
		return "The construct is recognized but not supported"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0150":
		return "Scanner"
	case code >= "E0150" && code < "E0200":
		return "Parser"
	default:
		return "Unknown"
	}
}
