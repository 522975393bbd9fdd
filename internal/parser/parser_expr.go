package parser

import (
	"strconv"

	"sdsl/internal/ast"
)

var binaryPrecedence = map[TokenType]int{
	OR:            1,
	AND:           2,
	EQUAL_EQUAL:   3,
	BANG_EQUAL:    3,
	LESS:          4,
	LESS_EQUAL:    4,
	GREATER:       4,
	GREATER_EQUAL: 4,
	PLUS:          5,
	MINUS:         5,
	STAR:          6,
	SLASH:         6,
	PERCENT:       6,
	STAR_STAR:     7,
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinaryExpr(1)
}

// parseBinaryExpr climbs the precedence table. Every operator is
// left-associative except '**', which recurses at its own level so that
// 2 ** 3 ** 2 groups as 2 ** (3 ** 2).
func (p *Parser) parseBinaryExpr(minPrec int) ast.Expr {
	expr := p.parseUnaryExpr()

	for {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Type]
		if !ok || prec < minPrec {
			break
		}

		p.advance()
		nextMin := prec + 1
		if tok.Type == STAR_STAR {
			nextMin = prec
		}
		right := p.parseBinaryExpr(nextMin)

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Lexeme,
			Left:   expr,
			Right:  right,
		}
	}

	return expr
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	if p.match(MINUS, BANG, AWAIT) {
		op := p.previous()
		value := p.parseUnaryExpr()
		return &ast.UnaryExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Op:     op.Lexeme,
			Value:  value,
		}
	}

	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

func (p *Parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	for {
		if p.match(DOT) {
			property := p.consume(IDENTIFIER, "expected property name after '.'")
			expr = &ast.MemberExpr{
				Pos:      expr.NodePos(),
				EndPos:   p.makeEndPos(property),
				Target:   expr,
				Property: p.makeIdent(property),
			}
		} else if p.match(LEFT_BRACKET) {
			index := p.parseExpr()
			end := p.consume(RIGHT_BRACKET, "expected ']' after index")
			expr = &ast.IndexExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(end),
				Target: expr,
				Index:  index,
			}
		} else if p.match(LEFT_PAREN) {
			args := p.parseExprListUntil(RIGHT_PAREN)
			end := p.consume(RIGHT_PAREN, "expected ')' after arguments")
			expr = &ast.CallExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(end),
				Callee: expr,
				Args:   args,
			}
		} else {
			break
		}
	}

	return expr
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	switch p.peek().Type {
	case NUMBER:
		tok := p.advance()
		value, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return &ast.NumberLiteral{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  value,
		}
	case STRING:
		tok := p.advance()
		return &ast.StringLiteral{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  tok.Lexeme,
		}
	case BOOLEAN:
		tok := p.advance()
		return &ast.BooleanLiteral{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  tok.Lexeme == "true",
		}
	case IDENTIFIER:
		tok := p.advance()
		return &ast.IdentExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		}
	case LEFT_PAREN:
		p.advance()
		expr := p.parseExpr()
		p.consume(RIGHT_PAREN, "expected ')' after expression")
		return expr
	case LEFT_BRACKET:
		return p.parseArrayLiteral()
	case LEFT_BRACE:
		return p.parseObjectLiteral()
	case FORALL:
		return p.parseForallExpr()
	}

	tok := p.peek()
	p.errorAtCurrent("unexpected token in expression: " + tok.Type.String())
	bad := &ast.BadExpr{
		Bad: ast.BadNode{
			Pos:     p.makePos(tok),
			EndPos:  p.makeEndPos(tok),
			Message: "unexpected token in expression: " + tok.Lexeme,
		},
	}
	p.advance()
	return bad
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	start := p.advance()
	elements := p.parseExprListUntil(RIGHT_BRACKET)
	end := p.consume(RIGHT_BRACKET, "expected ']' after array elements")

	return &ast.ArrayLiteral{
		Pos:      p.makePos(start),
		EndPos:   p.makeEndPos(end),
		Elements: elements,
	}
}

func (p *Parser) parseObjectLiteral() ast.Expr {
	start := p.consume(LEFT_BRACE, "expected '{' to start object literal")
	obj := &ast.ObjectLiteral{
		Pos: p.makePos(start),
	}

	for {
		p.skipEntrySeparators()
		if p.check(RIGHT_BRACE) || p.isAtEnd() {
			break
		}

		var keyTok Token
		if p.check(IDENTIFIER) || p.check(STRING) {
			keyTok = p.advance()
		} else {
			p.errorAtCurrent("expected object key")
			p.synchronizeUntil(COMMA, NEWLINE, RIGHT_BRACE)
			continue
		}

		p.consume(COLON, "expected ':' after object key")
		value := p.parseExpr()
		obj.Fields = append(obj.Fields, &ast.ObjectField{
			Pos:    p.makePos(keyTok),
			EndPos: value.NodeEndPos(),
			Key:    keyTok.Lexeme,
			Value:  value,
		})

		if !p.check(COMMA) && !p.check(NEWLINE) {
			break
		}
	}

	end := p.consume(RIGHT_BRACE, "expected '}' after object literal")
	obj.EndPos = p.makeEndPos(end)
	return obj
}

// parseForallExpr parses the comprehension form: forall (x in domain) { body }
func (p *Parser) parseForallExpr() ast.Expr {
	start := p.advance()

	p.consume(LEFT_PAREN, "expected '(' after 'forall'")
	variable, ok := p.consumeIdent("expected loop variable after 'forall ('")
	if !ok {
		p.synchronize()
		return &ast.BadExpr{Bad: ast.BadNode{
			Pos:     p.makePos(start),
			EndPos:  p.makeEndPos(p.previous()),
			Message: "malformed forall expression",
		}}
	}
	p.consume(IN, "expected 'in' after forall variable")
	domain := p.parseExpr()
	p.consume(RIGHT_PAREN, "expected ')' after forall domain")

	p.consume(LEFT_BRACE, "expected '{' to start forall body")
	p.skipNewlines()
	body := p.parseExpr()
	p.skipNewlines()
	end := p.consume(RIGHT_BRACE, "expected '}' to close forall body")

	return &ast.ForallExpr{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Var:    variable,
		Domain: domain,
		Body:   body,
	}
}

// parseExprListUntil parses a comma-separated expression list, tolerating
// newlines around elements, and stops before the terminator.
func (p *Parser) parseExprListUntil(terminator TokenType) []ast.Expr {
	var exprs []ast.Expr

	p.skipNewlines()
	for !p.check(terminator) && !p.isAtEnd() {
		exprs = append(exprs, p.parseExpr())
		p.skipNewlines()
		if !p.match(COMMA) {
			break
		}
		p.skipNewlines()
	}

	return exprs
}
