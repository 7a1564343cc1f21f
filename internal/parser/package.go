package parser

import (
	"fmt"
	"os"

	"lumen/internal/ast"
)

func ParseFile(path string) (*ast.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseSource(path, string(source))
}

// ParseSource scans and parses source. The returned error is a
// *errors.SyntaxError.
func ParseSource(filename, source string) (*ast.Program, error) {
	p, err := New(filename, source)
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}
