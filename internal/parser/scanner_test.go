package parser

import (
	"testing"
)

func scan(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := NewScanner(input).ScanTokens()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	return tokens
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "system type function event on emit require if else for forall let return in async await customIdent"
	expected := []TokenType{
		SYSTEM, TYPE, FUNCTION, EVENT, ON, EMIT, REQUIRE, IF, ELSE,
		FOR, FORALL, LET, RETURN, IN, ASYNC, AWAIT, IDENTIFIER,
	}

	tokens := scan(t, input)

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestSectionKeywords(t *testing.T) {
	input := "version description types inputs outputs config subsystems state rules functions events orchestration"
	expected := []TokenType{
		VERSION, DESCRIPTION, TYPES, INPUTS, OUTPUTS, CONFIG,
		SUBSYSTEMS, STATE, RULES, FUNCTIONS, EVENTS, ORCHESTRATION,
	}

	tokens := scan(t, input)

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestKeywordBoundary(t *testing.T) {
	// An identifier that merely contains a keyword stays one identifier.
	tokens := scan(t, "systemName type_of forAll")

	expected := []struct {
		tt     TokenType
		lexeme string
	}{
		{IDENTIFIER, "systemName"},
		{IDENTIFIER, "type_of"},
		{IDENTIFIER, "forAll"},
	}

	for i, exp := range expected {
		if tokens[i].Type != exp.tt || tokens[i].Lexeme != exp.lexeme {
			t.Errorf("token %d: expected %s %q, got %s %q", i, exp.tt, exp.lexeme, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestBooleanLiterals(t *testing.T) {
	tokens := scan(t, "true false")

	if tokens[0].Type != BOOLEAN || tokens[0].Lexeme != "true" {
		t.Errorf("expected BOOLEAN 'true', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != BOOLEAN || tokens[1].Lexeme != "false" {
		t.Errorf("expected BOOLEAN 'false', got %s %q", tokens[1].Type, tokens[1].Lexeme)
	}
}

func TestNumbers(t *testing.T) {
	tokens := scan(t, "42 3.14 0.5 100")
	expectedLexemes := []string{"42", "3.14", "0.5", "100"}

	for i, lexeme := range expectedLexemes {
		if tokens[i].Type != NUMBER {
			t.Errorf("token %d: expected NUMBER, got %s", i, tokens[i].Type)
		}
		if tokens[i].Lexeme != lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, lexeme, tokens[i].Lexeme)
		}
	}
}

func TestNumberFollowedByDot(t *testing.T) {
	// A trailing '.' without digits is member access, not a fraction.
	tokens := scan(t, "42.foo")

	expected := []TokenType{NUMBER, DOT, IDENTIFIER}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestStrings(t *testing.T) {
	tokens := scan(t, `"hello" 'world'`)

	if tokens[0].Type != STRING || tokens[0].Lexeme != "hello" {
		t.Errorf("expected STRING 'hello', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != STRING || tokens[1].Lexeme != "world" {
		t.Errorf("expected STRING 'world', got %s %q", tokens[1].Type, tokens[1].Lexeme)
	}
}

func TestStringEscapes(t *testing.T) {
	tokens := scan(t, `"a\nb\tc\\d\"e"`)

	if tokens[0].Lexeme != "a\nb\tc\\d\"e" {
		t.Errorf("unexpected unescaped value: %q", tokens[0].Lexeme)
	}
}

func TestUnknownEscapeKept(t *testing.T) {
	tokens := scan(t, `"a\qb"`)

	if tokens[0].Lexeme != `a\qb` {
		t.Errorf("expected unknown escape to be preserved, got %q", tokens[0].Lexeme)
	}
}

func TestStringWithEmbeddedNewline(t *testing.T) {
	tokens := scan(t, "\"line one\nline two\" after")

	if tokens[0].Type != STRING {
		t.Fatalf("expected STRING, got %s", tokens[0].Type)
	}
	if tokens[1].Type != IDENTIFIER || tokens[1].Position.Line != 2 {
		t.Errorf("expected following identifier on line 2, got %s at line %d", tokens[1].Type, tokens[1].Position.Line)
	}
}

func TestOperatorsAndBrackets(t *testing.T) {
	input := `== != <= >= && || -> += ** + - * / % = < > ! . ? ( ) { } [ ] , : ;`
	expected := []TokenType{
		EQUAL_EQUAL, BANG_EQUAL, LESS_EQUAL, GREATER_EQUAL, AND, OR, ARROW,
		PLUS_EQUAL, STAR_STAR, PLUS, MINUS, STAR, SLASH, PERCENT, EQUAL,
		LESS, GREATER, BANG, DOT, QUESTION, LEFT_PAREN, RIGHT_PAREN,
		LEFT_BRACE, RIGHT_BRACE, LEFT_BRACKET, RIGHT_BRACKET, COMMA, COLON, SEMICOLON,
	}

	tokens := scan(t, input)

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestNewlineIsAToken(t *testing.T) {
	tokens := scan(t, "a\nb")

	expected := []TokenType{IDENTIFIER, NEWLINE, IDENTIFIER, EOF}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestCommentsAreDropped(t *testing.T) {
	tokens := scan(t, "a // trailing comment\nb")

	expected := []TokenType{IDENTIFIER, NEWLINE, IDENTIFIER, EOF}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestDirective(t *testing.T) {
	tokens := scan(t, "@cache(60)")

	if tokens[0].Type != DIRECTIVE || tokens[0].Lexeme != "cache" {
		t.Fatalf("expected DIRECTIVE 'cache', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != LEFT_PAREN || tokens[2].Type != NUMBER || tokens[3].Type != RIGHT_PAREN {
		t.Errorf("unexpected tokens after directive: %s %s %s", tokens[1].Type, tokens[2].Type, tokens[3].Type)
	}
}

func TestTokenPositions(t *testing.T) {
	tokens := scan(t, "let x\nlet y")

	if tokens[0].Position.Line != 1 || tokens[0].Position.Column != 1 {
		t.Errorf("expected 1:1 for first token, got %d:%d", tokens[0].Position.Line, tokens[0].Position.Column)
	}
	if tokens[1].Position.Line != 1 || tokens[1].Position.Column != 5 {
		t.Errorf("expected 1:5 for 'x', got %d:%d", tokens[1].Position.Line, tokens[1].Position.Column)
	}
	// tokens[2] is the newline; 'let' on the second line follows.
	if tokens[3].Position.Line != 2 || tokens[3].Position.Column != 1 {
		t.Errorf("expected 2:1 for second 'let', got %d:%d", tokens[3].Position.Line, tokens[3].Position.Column)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := NewScanner("let s = \"oops\nnever closed").ScanTokens()

	if err == nil {
		t.Fatal("expected an unterminated string error, got none")
	}
	if err.Line != 1 {
		t.Errorf("expected error at the opening quote line 1, got line %d", err.Line)
	}
	if err.Column != 9 {
		t.Errorf("expected error at column 9, got column %d", err.Column)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := NewScanner("let x = $").ScanTokens()

	if err == nil {
		t.Fatal("expected an unexpected character error, got none")
	}
	if err.Line != 1 || err.Column != 9 {
		t.Errorf("expected error at 1:9, got %d:%d", err.Line, err.Column)
	}
}

func TestLoneAmpersandIsFatal(t *testing.T) {
	_, err := NewScanner("a & b").ScanTokens()

	if err == nil {
		t.Fatal("expected a lex error for a lone '&', got none")
	}
}

func TestEOFAppended(t *testing.T) {
	tokens := scan(t, "")

	if len(tokens) != 1 || tokens[0].Type != EOF {
		t.Fatalf("expected a single EOF token, got %d tokens", len(tokens))
	}
}
