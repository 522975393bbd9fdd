package parser

import "sdsl/internal/ast"

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume records a ParseError instead of failing hard: the offending token is
// replaced by an ILLEGAL placeholder and the cursor still moves, so the caller
// can keep going or synchronize.
func (p *Parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	illegal := Token{Type: ILLEGAL, Position: p.peek().Position}
	p.advance()
	return illegal
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) errorAtCurrent(message string) {
	p.errors = append(p.errors, ParseError{
		Message:  message,
		Position: p.peek().Position,
	})
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Line:   tok.Position.Line,
		Column: tok.Position.Column,
		Offset: tok.Position.Offset,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Line:   tok.Position.Line,
		Column: tok.Position.Column + len(tok.Lexeme),
		Offset: tok.Position.Offset + len(tok.Lexeme),
	}
}

func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

func (p *Parser) consumeIdent(message string) (ast.Ident, bool) {
	tok := p.consume(IDENTIFIER, message)
	if tok.Type == ILLEGAL {
		return ast.Ident{Value: "error"}, false
	}
	return p.makeIdent(tok), true
}

// skipNewlines discards the soft separators the grammar ignores.
func (p *Parser) skipNewlines() {
	for p.check(NEWLINE) {
		p.advance()
	}
}

// skipStmtSeparators discards newlines and semicolons between statements.
func (p *Parser) skipStmtSeparators() {
	for p.check(NEWLINE) || p.check(SEMICOLON) {
		p.advance()
	}
}

// skipEntrySeparators discards the separators allowed between section entries:
// commas, semicolons and newlines are all insignificant there.
func (p *Parser) skipEntrySeparators() {
	for p.check(NEWLINE) || p.check(COMMA) || p.check(SEMICOLON) {
		p.advance()
	}
}

// synchronize advances at least one token, then keeps going until the previous
// token terminated a statement or the next one starts a recognized construct.
// This is what bounds error cascades to one report per real mistake.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		switch p.previous().Type {
		case SEMICOLON, NEWLINE:
			return
		}

		switch p.peek().Type {
		case SYSTEM, TYPE, FUNCTION, EVENT, IF, FOR, RETURN:
			return
		}

		p.advance()
	}
}

// synchronizeSection recovers inside a system body: it skips to the next
// section keyword or to the closing brace of the enclosing body, stepping over
// nested braces so it never escapes the system definition.
func (p *Parser) synchronizeSection() {
	p.advance()

	depth := 0
	for !p.isAtEnd() {
		switch p.peek().Type {
		case LEFT_BRACE:
			depth++
		case RIGHT_BRACE:
			if depth == 0 {
				return
			}
			depth--
		case VERSION, DESCRIPTION, TYPES, INPUTS, OUTPUTS, CONFIG,
			SUBSYSTEMS, STATE, RULES, FUNCTIONS, EVENTS, ORCHESTRATION:
			if depth == 0 {
				return
			}
		}
		p.advance()
	}
}

// synchronizeUntil skips forward to one of the stop tokens without consuming it.
func (p *Parser) synchronizeUntil(stopTokens ...TokenType) {
	stop := make(map[TokenType]struct{})
	for _, t := range stopTokens {
		stop[t] = struct{}{}
	}

	for !p.isAtEnd() {
		if _, ok := stop[p.peek().Type]; ok {
			return
		}
		p.advance()
	}
}
