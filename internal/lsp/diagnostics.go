package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lumen/internal/errors"
)

const diagnosticSource = "lumen"

// ConvertSyntaxError transforms the single fatal scan or parse error into an
// LSP diagnostic spanning the offending token.
func ConvertSyntaxError(source string, err *errors.SyntaxError) protocol.Diagnostic {
	start := lspPosition(source, err.Location)
	end := start
	end.Character += uint32(max(err.Length, 1))

	message := err.Message
	if err.HelpText != "" {
		message += "\nhelp: " + err.HelpText
	}

	return protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: err.Code()},
		Source:   ptrString(diagnosticSource),
		Message:  message,
	}
}

// ConvertError wraps any parse failure. Errors that are not syntax errors are
// reported at the start of the document.
func ConvertError(source string, err error) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if err == nil {
		return diagnostics
	}

	if synErr, ok := err.(*errors.SyntaxError); ok {
		return append(diagnostics, ConvertSyntaxError(source, synErr))
	}

	return append(diagnostics, protocol.Diagnostic{
		Range:    protocol.Range{},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString(diagnosticSource),
		Message:  err.Error(),
	})
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
