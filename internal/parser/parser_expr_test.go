package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sdsl/internal/ast"
)

func parseExprFrom(t *testing.T, source string) (ast.Expr, []ParseError) {
	t.Helper()
	tokens, lexErr := NewScanner(source).ScanTokens()
	require.Nil(t, lexErr)
	p := NewParser("test.sdsl", tokens)
	return p.parseExpr(), p.errors
}

func renderExpr(t *testing.T, source string) string {
	t.Helper()
	expr, errs := parseExprFrom(t, source)
	require.Empty(t, errs)
	return expr.String()
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2 + 3 * 4", "(2 + (3 * 4))"},
		{"2 * 3 + 4", "((2 * 3) + 4)"},
		{"a + b < c * d == true", "(((a + b) < (c * d)) == true)"},
		{"a || b && c", "(a || (b && c))"},
		{"a - b - c", "((a - b) - c)"},
		{"a / b % c", "((a / b) % c)"},
		{"x != y || x > z", "((x != y) || (x > z))"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, renderExpr(t, tt.input), "input: %s", tt.input)
	}
}

func TestPowerIsRightAssociative(t *testing.T) {
	assert.Equal(t, "(2 ** (3 ** 2))", renderExpr(t, "2 ** 3 ** 2"))
	assert.Equal(t, "(2 * (3 ** 2))", renderExpr(t, "2 * 3 ** 2"))
}

func TestUnaryBinding(t *testing.T) {
	assert.Equal(t, "((-2) ** 3)", renderExpr(t, "-2 ** 3"))
	assert.Equal(t, "((!a) && b)", renderExpr(t, "!a && b"))
	assert.Equal(t, "(-(-x))", renderExpr(t, "--x"))
}

func TestAwaitExpression(t *testing.T) {
	assert.Equal(t, "(await fetch(url))", renderExpr(t, "await fetch(url)"))
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	assert.Equal(t, "((2 + 3) * 4)", renderExpr(t, "(2 + 3) * 4"))
}

func TestPostfixChain(t *testing.T) {
	assert.Equal(t, "obj.items[0].name(x, 1)", renderExpr(t, "obj.items[0].name(x, 1)"))
	assert.Equal(t, "f()()", renderExpr(t, "f()()"))
}

func TestLiterals(t *testing.T) {
	assert.Equal(t, "42", renderExpr(t, "42"))
	assert.Equal(t, "3.14", renderExpr(t, "3.14"))
	assert.Equal(t, `"hi"`, renderExpr(t, `"hi"`))
	assert.Equal(t, "true", renderExpr(t, "true"))
	assert.Equal(t, "false", renderExpr(t, "false"))
	assert.Equal(t, "[1, 2, 3]", renderExpr(t, "[1, 2, 3]"))
	assert.Equal(t, `{a: 1, b: "x"}`, renderExpr(t, `{a: 1, b: "x"}`))
	assert.Equal(t, "[]", renderExpr(t, "[]"))
}

func TestForallExpression(t *testing.T) {
	assert.Equal(t, "forall (x in xs) { (x > 0) }", renderExpr(t, "forall (x in xs) { x > 0 }"))
}

func TestObjectLiteralStringKeys(t *testing.T) {
	assert.Equal(t, `{max-retries: 3}`, renderExpr(t, `{"max-retries": 3}`))
}

func TestUnexpectedTokenProducesBadExpr(t *testing.T) {
	expr, errs := parseExprFrom(t, "+ 1")

	require.NotEmpty(t, errs)
	assert.IsType(t, &ast.BadExpr{}, expr)
	assert.Contains(t, errs[0].Message, "unexpected token in expression")
}
