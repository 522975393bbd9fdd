package parser

import "sdsl/internal/ast"

// parseBlock parses a brace-delimited statement sequence and returns the
// closing brace token so callers can place end positions.
func (p *Parser) parseBlock() ([]ast.Stmt, Token) {
	p.consume(LEFT_BRACE, "expected '{' to start block")

	var stmts []ast.Stmt
	for {
		p.skipStmtSeparators()
		if p.check(RIGHT_BRACE) || p.isAtEnd() {
			break
		}
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	end := p.consume(RIGHT_BRACE, "expected '}' to close block")
	return stmts, end
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.peek().Type {
	case IF:
		return p.parseIfStatement()
	case FOR:
		return p.parseForStatement()
	case RETURN:
		return p.parseReturnStatement()
	case LET:
		return p.parseLetStatement()
	case REQUIRE:
		return p.parseRequireStatement()
	case EMIT:
		return p.parseEmitStatement()
	}

	expr := p.parseExpr()
	return &ast.ExprStmt{
		Pos:    expr.NodePos(),
		EndPos: expr.NodeEndPos(),
		Expr:   expr,
	}
}

// parseIfStatement parses: if (cond) { then } [else { stmts } | else if ...]
func (p *Parser) parseIfStatement() ast.Stmt {
	startToken := p.advance()

	p.consume(LEFT_PAREN, "expected '(' after 'if'")
	cond := p.parseExpr()
	p.consume(RIGHT_PAREN, "expected ')' after if condition")

	then, end := p.parseBlock()

	stmt := &ast.IfStmt{
		Pos:    p.makePos(startToken),
		EndPos: p.makeEndPos(end),
		Cond:   cond,
		Then:   then,
	}

	if p.match(ELSE) {
		if p.check(IF) {
			nested := p.parseIfStatement()
			stmt.Else = []ast.Stmt{nested}
			stmt.EndPos = nested.NodeEndPos()
		} else {
			elseStmts, elseEnd := p.parseBlock()
			stmt.Else = elseStmts
			stmt.EndPos = p.makeEndPos(elseEnd)
		}
	}

	return stmt
}

// parseForStatement parses: for (x in domain) { body }
func (p *Parser) parseForStatement() ast.Stmt {
	startToken := p.advance()

	p.consume(LEFT_PAREN, "expected '(' after 'for'")
	variable, ok := p.consumeIdent("expected loop variable after 'for ('")
	if !ok {
		p.synchronize()
		return nil
	}
	p.consume(IN, "expected 'in' after loop variable")
	domain := p.parseExpr()
	p.consume(RIGHT_PAREN, "expected ')' after loop domain")

	body, end := p.parseBlock()

	return &ast.ForStmt{
		Pos:    p.makePos(startToken),
		EndPos: p.makeEndPos(end),
		Var:    variable,
		Domain: domain,
		Body:   body,
	}
}

// parseReturnStatement parses 'return' with an optional value on the same line.
func (p *Parser) parseReturnStatement() ast.Stmt {
	startToken := p.advance()

	stmt := &ast.ReturnStmt{
		Pos:    p.makePos(startToken),
		EndPos: p.makeEndPos(startToken),
	}

	switch p.peek().Type {
	case NEWLINE, SEMICOLON, RIGHT_BRACE, EOF:
	default:
		stmt.Value = p.parseExpr()
		stmt.EndPos = stmt.Value.NodeEndPos()
	}

	return stmt
}

func (p *Parser) parseLetStatement() ast.Stmt {
	startToken := p.advance()

	name, ok := p.consumeIdent("expected variable name after 'let'")
	if !ok {
		p.synchronize()
		return nil
	}
	p.consume(EQUAL, "expected '=' after variable name")
	value := p.parseExpr()

	return &ast.LetStmt{
		Pos:    p.makePos(startToken),
		EndPos: value.NodeEndPos(),
		Name:   name,
		Value:  value,
	}
}

// parseRequireStatement parses: require(cond [, message])
func (p *Parser) parseRequireStatement() ast.Stmt {
	startToken := p.advance()

	p.consume(LEFT_PAREN, "expected '(' after 'require'")
	cond := p.parseExpr()

	stmt := &ast.RequireStmt{
		Pos:  p.makePos(startToken),
		Cond: cond,
	}
	if p.match(COMMA) {
		stmt.Message = p.parseExpr()
	}

	end := p.consume(RIGHT_PAREN, "expected ')' after require arguments")
	stmt.EndPos = p.makeEndPos(end)
	return stmt
}

// parseEmitStatement parses: emit name(args)
func (p *Parser) parseEmitStatement() ast.Stmt {
	startToken := p.advance()

	name, ok := p.consumeIdent("expected event name after 'emit'")
	if !ok {
		p.synchronize()
		return nil
	}

	p.consume(LEFT_PAREN, "expected '(' after event name")
	args := p.parseExprListUntil(RIGHT_PAREN)
	end := p.consume(RIGHT_PAREN, "expected ')' after emit arguments")

	return &ast.EmitStmt{
		Pos:    p.makePos(startToken),
		EndPos: p.makeEndPos(end),
		Event:  name,
		Args:   args,
	}
}
