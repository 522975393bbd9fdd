package parser

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sdsl/internal/ast"
)

func parseProgram(t *testing.T, source string) (*ast.Program, []ParseError) {
	t.Helper()
	program, errs, lexErr := ParseSource("test.sdsl", source)
	require.Nil(t, lexErr)
	return program, errs
}

func parseSystem(t *testing.T, source string) *ast.SystemDefinition {
	t.Helper()
	program, errs := parseProgram(t, source)
	require.Empty(t, errs)
	require.Len(t, program.Definitions, 1)
	system, ok := program.Definitions[0].(*ast.SystemDefinition)
	require.True(t, ok, "expected a system definition, got %T", program.Definitions[0])
	return system
}

func TestParseEmptyProgram(t *testing.T) {
	program, errs := parseProgram(t, "\n\n\n")

	assert.Empty(t, errs)
	assert.Empty(t, program.Definitions)
}

func TestParseEmptySystem(t *testing.T) {
	system := parseSystem(t, "system Thermostat {\n}")

	assert.Equal(t, "Thermostat", system.Name.Value)
	assert.Nil(t, system.Version)
	assert.Nil(t, system.Description)
	assert.Empty(t, system.Types)
	assert.Empty(t, system.Config)
	assert.Empty(t, system.Functions)
}

func TestParseTypeDefinitions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"type Temperature = number", "type Temperature = number"},
		{"type Grid = number[][]", "type Grid = number[][]"},
		{"type MaybeName = string?", "type MaybeName = string?"},
		{"type Names = string[]?", "type Names = string[]?"},
		{"type Point = { x: number, y: number }", "type Point = { x: number, y: number }"},
	}

	for _, tt := range tests {
		program, errs := parseProgram(t, tt.input)
		require.Empty(t, errs, "input: %s", tt.input)
		require.Len(t, program.Definitions, 1)
		assert.Equal(t, tt.expected, program.Definitions[0].String())
	}
}

func TestParseDirective(t *testing.T) {
	program, errs := parseProgram(t, "@cache(60) { return x }")

	require.Empty(t, errs)
	require.Len(t, program.Definitions, 1)

	directive, ok := program.Definitions[0].(*ast.Directive)
	require.True(t, ok)
	assert.Equal(t, "cache", directive.Name)
	assert.Len(t, directive.Args, 1)
	assert.Len(t, directive.Body, 1)
	assert.Equal(t, "@cache(60) { return x }", directive.String())
}

func TestParseBareDirective(t *testing.T) {
	program, errs := parseProgram(t, "@deprecated")

	require.Empty(t, errs)
	require.Len(t, program.Definitions, 1)
	assert.Equal(t, "@deprecated", program.Definitions[0].String())
}

func TestMultipleErrorsReported(t *testing.T) {
	source := "type = 3\n\nsystem {\n}"

	_, errs := parseProgram(t, source)

	require.GreaterOrEqual(t, len(errs), 2)
	assert.Equal(t, 1, errs[0].Position.Line)
	assert.Equal(t, 3, errs[1].Position.Line)
}

func TestParseCollectsErrorsIntoList(t *testing.T) {
	_, err := Parse("type = 3\n\nsystem {\n}")

	require.Error(t, err)

	var list *ParseErrorList
	require.True(t, stderrors.As(err, &list))
	assert.GreaterOrEqual(t, len(list.Errors), 2)
	assert.Contains(t, err.Error(), "and")
}

func TestLexErrorAbortsParse(t *testing.T) {
	program, err := Parse(`system S { config { a: "oops } }`)

	require.Error(t, err)
	assert.Nil(t, program)

	var lexErr *LexError
	require.True(t, stderrors.As(err, &lexErr))
	assert.Equal(t, 1, lexErr.Line)
	assert.Contains(t, lexErr.Message, "unterminated string")
}

func TestLayoutInsensitivity(t *testing.T) {
	compact := `system S {
  config { a: 1, b: 2 }
  rules { ok: a < b }
}`
	spread := `system S {

  // tuning knobs
  config {
    a: 1
    b: 2
  }

  rules {
    ok: a < b // invariant
  }
}`

	left, errsLeft := parseProgram(t, compact)
	right, errsRight := parseProgram(t, spread)

	require.Empty(t, errsLeft)
	require.Empty(t, errsRight)
	assert.Equal(t, left.String(), right.String())
}

func TestPrintingIsDeterministic(t *testing.T) {
	source := `system S {
  config { z: 1, m: 2, a: 3 }
}`

	first, errs := parseProgram(t, source)
	require.Empty(t, errs)
	second, _ := parseProgram(t, source)

	assert.Equal(t, first.String(), first.String())
	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, first.String(), "a: 3, m: 2, z: 1")
}

func TestStatementsInsideFunction(t *testing.T) {
	system := parseSystem(t, `system S {
  functions {
    function check(t: number) -> bool {
      let limit = 10
      if (t > limit) {
        emit alert(t)
        return true
      } else {
        log(t)
      }
      for (x in history) {
        require(x >= 0, "negative sample")
      }
      return false
    }
  }
}`)

	fn := system.Functions["check"]
	require.NotNil(t, fn)
	require.Len(t, fn.Body, 4)

	assert.IsType(t, &ast.LetStmt{}, fn.Body[0])

	ifStmt, ok := fn.Body[1].(*ast.IfStmt)
	require.True(t, ok)
	assert.Len(t, ifStmt.Then, 2)
	assert.Len(t, ifStmt.Else, 1)
	assert.IsType(t, &ast.EmitStmt{}, ifStmt.Then[0])
	assert.IsType(t, &ast.ReturnStmt{}, ifStmt.Then[1])
	assert.IsType(t, &ast.ExprStmt{}, ifStmt.Else[0])

	forStmt, ok := fn.Body[2].(*ast.ForStmt)
	require.True(t, ok)
	require.Len(t, forStmt.Body, 1)
	requireStmt, ok := forStmt.Body[0].(*ast.RequireStmt)
	require.True(t, ok)
	assert.NotNil(t, requireStmt.Message)

	ret, ok := fn.Body[3].(*ast.ReturnStmt)
	require.True(t, ok)
	assert.NotNil(t, ret.Value)
}

func TestElseIfChains(t *testing.T) {
	system := parseSystem(t, `system S {
  functions {
    function grade(x: number) {
      if (x > 2) {
        return high
      } else if (x > 1) {
        return mid
      } else {
        return low
      }
    }
  }
}`)

	fn := system.Functions["grade"]
	require.NotNil(t, fn)
	require.Len(t, fn.Body, 1)

	outer, ok := fn.Body[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, outer.Else, 1)

	nested, ok := outer.Else[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.Len(t, nested.Else, 1)
}

func TestBareReturn(t *testing.T) {
	system := parseSystem(t, `system S {
  functions {
    function stop() {
      return
    }
  }
}`)

	fn := system.Functions["stop"]
	require.NotNil(t, fn)
	require.Len(t, fn.Body, 1)

	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	require.True(t, ok)
	assert.Nil(t, ret.Value)
}
