package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"sdsl/internal/parser"
)

func TestConvertParseErrors(t *testing.T) {
	diagnostics := ConvertParseErrors([]parser.ParseError{
		{Message: "expected ':' after config key", Position: parser.Position{Line: 3, Column: 5}},
		{Message: "unknown system section: bogus", Position: parser.Position{Line: 7, Column: 1}},
	})

	require.Len(t, diagnostics, 2)

	// LSP positions are 0-based.
	assert.Equal(t, uint32(2), diagnostics[0].Range.Start.Line)
	assert.Equal(t, uint32(4), diagnostics[0].Range.Start.Character)
	assert.Equal(t, "expected ':' after config key", diagnostics[0].Message)
	require.NotNil(t, diagnostics[0].Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diagnostics[0].Severity)
	require.NotNil(t, diagnostics[0].Source)
	assert.Equal(t, "sdsl-parser", *diagnostics[0].Source)

	assert.Equal(t, uint32(6), diagnostics[1].Range.Start.Line)
	assert.Equal(t, uint32(0), diagnostics[1].Range.Start.Character)
}

func TestConvertLexError(t *testing.T) {
	diagnostics := ConvertLexError(&parser.LexError{
		Line:    2,
		Column:  9,
		Message: "unterminated string",
	})

	require.Len(t, diagnostics, 1)
	assert.Equal(t, uint32(1), diagnostics[0].Range.Start.Line)
	assert.Equal(t, uint32(8), diagnostics[0].Range.Start.Character)
	require.NotNil(t, diagnostics[0].Source)
	assert.Equal(t, "sdsl-lexer", *diagnostics[0].Source)
}

func TestConvertLexErrorNil(t *testing.T) {
	assert.Nil(t, ConvertLexError(nil))
}

func TestURIToPath(t *testing.T) {
	path, err := uriToPath("file:///tmp/example.sdsl")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/example.sdsl", path)
}
