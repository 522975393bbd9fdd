package parser

import (
	"fmt"

	"sdsl/internal/ast"
)

// ParseError is a recoverable grammar error recorded during the descent pass.
type ParseError struct {
	Message  string
	Position Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// ParseErrorList aggregates every error recorded during one parse call, in
// source order.
type ParseErrorList struct {
	Errors []ParseError
}

func (e *ParseErrorList) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("parse error at %s", e.Errors[0].Error())
	}
	return fmt.Sprintf("parse error at %s (and %d more)", e.Errors[0].Error(), len(e.Errors)-1)
}

// ParseSource lexes and parses source in one pass and returns the tree along
// with any recorded parse errors. A fatal lex error aborts before parsing and
// is returned alone.
func ParseSource(path string, source string) (*ast.Program, []ParseError, *LexError) {
	scanner := NewScanner(source)
	tokens, lexErr := scanner.ScanTokens()
	if lexErr != nil {
		return nil, nil, lexErr
	}

	parser := NewParser(path, tokens)
	program := parser.ParseProgram()

	return program, parser.errors, nil
}

// Parse is the single-result entry point: the Program on success, otherwise a
// *LexError or a *ParseErrorList carrying every recorded error.
func Parse(source string) (*ast.Program, error) {
	program, parseErrors, lexErr := ParseSource("<input>", source)
	if lexErr != nil {
		return nil, lexErr
	}
	if len(parseErrors) > 0 {
		return nil, &ParseErrorList{Errors: parseErrors}
	}
	return program, nil
}
