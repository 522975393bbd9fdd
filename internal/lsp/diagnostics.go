package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"sdsl/internal/parser"
)

// ConvertParseErrors transforms recorded parser errors into LSP diagnostics.
// LSP positions are 0-based while the parser reports 1-based line/column.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),
					Character: uint32(parseErr.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),
					Character: uint32(parseErr.Position.Column + 5),
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("sdsl-parser"),
			Message:  parseErr.Message,
		})
	}

	return diagnostics
}

// ConvertLexError transforms the single fatal scanner error into a diagnostic.
func ConvertLexError(lexErr *parser.LexError) []protocol.Diagnostic {
	if lexErr == nil {
		return nil
	}

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(lexErr.Line - 1),
				Character: uint32(lexErr.Column - 1),
			},
			End: protocol.Position{
				Line:      uint32(lexErr.Line - 1),
				Character: uint32(lexErr.Column + 3),
			},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("sdsl-lexer"),
		Message:  lexErr.Message,
	}}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
