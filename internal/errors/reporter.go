package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"sdsl/internal/parser"
)

// Reporter renders lex and parse diagnostics with the offending source line
// and a caret marker. Presentation only; the structured records stay with the
// parser.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

func (r *Reporter) FormatLexError(err *parser.LexError) string {
	return r.format(err.Message, err.Line, err.Column, 1)
}

func (r *Reporter) FormatParseError(err parser.ParseError) string {
	return r.format(err.Message, err.Position.Line, err.Position.Column, 1)
}

func (r *Reporter) format(message string, line, column, length int) string {
	var lineContent string
	if line-1 >= 0 && line-1 < len(r.lines) {
		lineContent = r.lines[line-1]
	}

	marker := strings.Repeat(" ", max(0, column-1)) +
		strings.Repeat("^", max(1, length))

	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	lineNumberWidth := len(fmt.Sprintf("%d", line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	return fmt.Sprintf(
		"%s: %s\n%s┌─ %s:%d:%d\n%s│\n%3d│%s\n%s│%s\n\n",
		red("error"),
		message,
		indent,
		r.filename, line, column,
		indent,
		line, lineContent,
		indent,
		bold(marker),
	)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
