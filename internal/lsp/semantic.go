package lsp

import (
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"lumen/internal/ast"
	"lumen/token"
)

// SemanticTokenTypes is the legend advertised to clients. Token types are
// sent as indexes into this slice.
var SemanticTokenTypes = []string{
	"keyword",
	"function",
	"parameter",
	"variable",
	"type",
	"number",
	"string",
	"comment",
	"operator",
}

// SemanticTokenModifiers is sent as a bitmask over this slice.
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

const (
	modDeclaration = 1 << iota
	modReadonly
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask over SemanticTokenModifiers
}

type classification struct {
	tokenType string
	modifiers int
}

// collectSemanticTokens classifies every token of source. Identifiers are
// resolved through program when it is available; tokens scanned before a
// scanner error are still reported.
func collectSemanticTokens(source string, tokens []token.Token, program *ast.Program) []SemanticToken {
	idents := classifyIdentifiers(program)

	var result []SemanticToken
	for _, tok := range tokens {
		if tok.Kind == token.EOF || strings.ContainsRune(tok.Text, '\n') {
			continue
		}

		var class classification
		switch {
		case tok.Kind.IsKeyword():
			class = classification{tokenType: "keyword"}
		case tok.Kind == token.NUMBER:
			class = classification{tokenType: "number"}
		case tok.Kind == token.STRING || tok.Kind == token.CHAR:
			class = classification{tokenType: "string"}
		case tok.Kind == token.LINE_COMMENT:
			class = classification{tokenType: "comment"}
		case tok.Kind == token.INCLUDE || tok.Kind == token.DEFINE:
			class = classification{tokenType: "keyword"}
		case tok.Kind >= token.PLUS && tok.Kind <= token.TILDE:
			class = classification{tokenType: "operator"}
		case tok.Kind == token.IDENTIFIER:
			var ok bool
			if class, ok = idents[tok.Location.Offset]; !ok {
				class = classification{tokenType: "variable"}
			}
		default:
			continue
		}

		pos := lspPosition(source, tok.Location)
		result = append(result, SemanticToken{
			Line:           pos.Line,
			StartChar:      pos.Character,
			Length:         utf16Len(tok.Text),
			TokenType:      indexOf(class.tokenType, SemanticTokenTypes),
			TokenModifiers: class.modifiers,
		})
	}

	return result
}

// classifyIdentifiers maps the offset of each identifier the tree gives a
// role to.
func classifyIdentifiers(program *ast.Program) map[int]classification {
	idents := make(map[int]classification)
	if program == nil {
		return idents
	}

	mark := func(tok token.Token, tokenType string, modifiers int) {
		idents[tok.Location.Offset] = classification{tokenType: tokenType, modifiers: modifiers}
	}

	ast.Inspect(program, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.FnDecl:
			mark(v.Name, "function", modDeclaration)
			params := make(map[string]bool)
			if v.Params != nil {
				for _, param := range v.Params.Params {
					mark(param.Name, "parameter", modDeclaration)
					params[param.Name.Text] = true
				}
			}
			if v.Body != nil {
				markParamRefs(v.Body, params, mark)
			}
		case *ast.NamedType:
			mark(v.Token, "type", 0)
		case *ast.VarDecl:
			mark(v.Name.Token, "variable", modDeclaration)
		case *ast.ConstDecl:
			mark(v.Name.Token, "variable", modDeclaration|modReadonly)
		case *ast.CallExpr:
			mark(v.Callee, "function", 0)
		}
		return true
	})

	return idents
}

// markParamRefs tags identifier uses under node that name one of the
// function's parameters. Field names on the right of '.' are not references.
// Declarations visited later by the caller overwrite these marks.
func markParamRefs(node ast.Node, params map[string]bool, mark func(token.Token, string, int)) {
	if node == nil || len(params) == 0 {
		return
	}

	ast.Inspect(node, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.BinaryExpr:
			if v.Op == ast.FieldAccess {
				markParamRefs(v.Left, params, mark)
				return false
			}
		case *ast.Literal:
			if v.Kind == ast.Identifier && params[v.Token.Text] {
				mark(v.Token, "parameter", 0)
			}
		}
		return true
	})
}

func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		} else {
			deltaStart = tok.StartChar
		}

		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}

	return data
}

// lspPosition converts a scanner location to a 0-based LSP position with
// the character counted in UTF-16 code units.
func lspPosition(source string, loc token.Location) protocol.Position {
	start := min(max(loc.LineStart, 0), len(source))
	end := min(max(loc.Offset, start), len(source))
	return protocol.Position{
		Line:      uint32(max(loc.Line-1, 0)),
		Character: utf16Len(source[start:end]),
	}
}

func utf16Len(s string) uint32 {
	return uint32(len(utf16.Encode([]rune(s))))
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
