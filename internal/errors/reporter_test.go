package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"sdsl/internal/parser"
)

func TestFormatParseError(t *testing.T) {
	color.NoColor = true

	source := "system S {\n  bogus { x: 1 }\n}"
	reporter := NewReporter("test.sdsl", source)

	out := reporter.FormatParseError(parser.ParseError{
		Message:  "unknown system section: bogus",
		Position: parser.Position{Line: 2, Column: 3},
	})

	if !strings.Contains(out, "error: unknown system section: bogus") {
		t.Errorf("missing error header in output:\n%s", out)
	}
	if !strings.Contains(out, "test.sdsl:2:3") {
		t.Errorf("missing location in output:\n%s", out)
	}
	if !strings.Contains(out, "  bogus { x: 1 }") {
		t.Errorf("missing source line in output:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret marker in output:\n%s", out)
	}
}

func TestFormatLexError(t *testing.T) {
	color.NoColor = true

	source := `let s = "oops`
	reporter := NewReporter("broken.sdsl", source)

	out := reporter.FormatLexError(&parser.LexError{
		Line:    1,
		Column:  9,
		Message: "unterminated string",
	})

	if !strings.Contains(out, "unterminated string") {
		t.Errorf("missing message in output:\n%s", out)
	}
	if !strings.Contains(out, "broken.sdsl:1:9") {
		t.Errorf("missing location in output:\n%s", out)
	}
}

func TestFormatLineOutOfRange(t *testing.T) {
	color.NoColor = true

	reporter := NewReporter("test.sdsl", "one line")

	// A position past the end of the file must not panic.
	out := reporter.FormatParseError(parser.ParseError{
		Message:  "unexpected end of input",
		Position: parser.Position{Line: 99, Column: 1},
	})

	if !strings.Contains(out, "test.sdsl:99:1") {
		t.Errorf("missing location in output:\n%s", out)
	}
}
