package parser

import "sdsl/internal/ast"

// parseSystemDefinition parses: system Name { sections }
func (p *Parser) parseSystemDefinition() *ast.SystemDefinition {
	startToken := p.consume(SYSTEM, "expected 'system' keyword")

	name, ok := p.consumeIdent("expected system name after 'system'")
	if !ok {
		p.synchronize()
		return nil
	}

	p.consume(LEFT_BRACE, "expected '{' to start system body")

	system := &ast.SystemDefinition{
		Pos:           p.makePos(startToken),
		Name:          name,
		Types:         make(map[string]ast.TypeExpr),
		Config:        make(map[string]ast.Expr),
		Subsystems:    make(map[string]*ast.Subsystem),
		State:         make(map[string]*ast.StateField),
		Rules:         make(map[string]ast.Expr),
		Functions:     make(map[string]*ast.FunctionDefinition),
		Events:        make(map[string]ast.Node),
		Orchestration: make(map[string]ast.Expr),
	}

	for {
		p.skipEntrySeparators()
		if p.check(RIGHT_BRACE) || p.isAtEnd() {
			break
		}
		p.parseSystemSection(system)
	}

	end := p.consume(RIGHT_BRACE, "expected '}' to close system body")
	system.EndPos = p.makeEndPos(end)
	return system
}

// parseSystemSection dispatches on the fixed section vocabulary. An unknown
// keyword records an error and resumes at the next section, still inside the
// enclosing braces.
func (p *Parser) parseSystemSection(system *ast.SystemDefinition) {
	switch p.peek().Type {
	case VERSION:
		p.advance()
		p.consume(COLON, "expected ':' after 'version'")
		if lit := p.parseStringValue("expected string literal for version"); lit != nil {
			system.Version = lit
		}
	case DESCRIPTION:
		p.advance()
		p.consume(COLON, "expected ':' after 'description'")
		if lit := p.parseStringValue("expected string literal for description"); lit != nil {
			system.Description = lit
		}
	case TYPES:
		p.advance()
		p.parseSectionBlock("types", func() {
			name, ok := p.consumeIdent("expected type name")
			if !ok {
				p.synchronizeUntil(COMMA, NEWLINE, RIGHT_BRACE)
				return
			}
			p.consume(COLON, "expected ':' after type name")
			system.Types[name.Value] = p.parseTypeExpr()
		})
	case INPUTS:
		p.advance()
		p.consume(COLON, "expected ':' after 'inputs'")
		system.Inputs = p.parseExprArray("inputs")
	case OUTPUTS:
		p.advance()
		p.consume(COLON, "expected ':' after 'outputs'")
		system.Outputs = p.parseExprArray("outputs")
	case CONFIG:
		p.advance()
		p.parseSectionBlock("config", func() {
			name, ok := p.consumeIdent("expected config key")
			if !ok {
				p.synchronizeUntil(COMMA, NEWLINE, RIGHT_BRACE)
				return
			}
			p.consume(COLON, "expected ':' after config key")
			system.Config[name.Value] = p.parseExpr()
		})
	case SUBSYSTEMS:
		p.advance()
		p.parseSectionBlock("subsystems", func() {
			sub := p.parseSubsystem()
			if sub != nil {
				system.Subsystems[sub.Name.Value] = sub
			}
		})
	case STATE:
		p.advance()
		p.parseSectionBlock("state", func() {
			field := p.parseStateField()
			if field != nil {
				system.State[field.Name.Value] = field
			}
		})
	case RULES:
		p.advance()
		p.parseSectionBlock("rules", func() {
			name, ok := p.consumeIdent("expected rule name")
			if !ok {
				p.synchronizeUntil(COMMA, NEWLINE, RIGHT_BRACE)
				return
			}
			p.consume(COLON, "expected ':' after rule name")
			system.Rules[name.Value] = p.parseExpr()
		})
	case FUNCTIONS:
		p.advance()
		p.parseSectionBlock("functions", func() {
			fn := p.parseFunctionDefinition()
			if fn != nil {
				system.Functions[fn.Name.Value] = fn
			}
		})
	case EVENTS:
		p.advance()
		p.parseSectionBlock("events", func() {
			p.parseEventEntry(system)
		})
	case ORCHESTRATION:
		p.advance()
		p.parseSectionBlock("orchestration", func() {
			name, ok := p.consumeIdent("expected orchestration key")
			if !ok {
				p.synchronizeUntil(COMMA, NEWLINE, RIGHT_BRACE)
				return
			}
			if p.check(LEFT_BRACE) {
				system.Orchestration[name.Value] = p.parseObjectLiteral()
			} else {
				p.consume(COLON, "expected ':' or '{' after orchestration key")
				system.Orchestration[name.Value] = p.parseExpr()
			}
		})
	default:
		p.errorAtCurrent("unknown system section: " + p.peek().Lexeme)
		p.synchronizeSection()
	}
}

// parseSectionBlock runs parseEntry over a brace-delimited entry list,
// skipping the insignificant separators between entries.
func (p *Parser) parseSectionBlock(section string, parseEntry func()) {
	p.consume(LEFT_BRACE, "expected '{' to start "+section+" section")

	for {
		p.skipEntrySeparators()
		if p.check(RIGHT_BRACE) || p.isAtEnd() {
			break
		}
		parseEntry()
	}

	p.consume(RIGHT_BRACE, "expected '}' to close "+section+" section")
}

func (p *Parser) parseStringValue(message string) *ast.StringLiteral {
	tok := p.consume(STRING, message)
	if tok.Type == ILLEGAL {
		return nil
	}
	return &ast.StringLiteral{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// parseExprArray parses the bracketed expression list of inputs/outputs.
func (p *Parser) parseExprArray(section string) []ast.Expr {
	p.consume(LEFT_BRACKET, "expected '[' to start "+section+" list")
	exprs := p.parseExprListUntil(RIGHT_BRACKET)
	p.consume(RIGHT_BRACKET, "expected ']' to close "+section+" list")
	return exprs
}

// parseSubsystem parses a named property bag: name { key: expr, ... }
func (p *Parser) parseSubsystem() *ast.Subsystem {
	name, ok := p.consumeIdent("expected subsystem name")
	if !ok {
		p.synchronizeUntil(COMMA, NEWLINE, RIGHT_BRACE)
		return nil
	}

	sub := &ast.Subsystem{
		Pos:        name.Pos,
		Name:       name,
		Properties: make(map[string]ast.Expr),
	}

	p.consume(LEFT_BRACE, "expected '{' after subsystem name")
	for {
		p.skipEntrySeparators()
		if p.check(RIGHT_BRACE) || p.isAtEnd() {
			break
		}
		key, ok := p.consumeIdent("expected subsystem property name")
		if !ok {
			p.synchronizeUntil(COMMA, NEWLINE, RIGHT_BRACE)
			continue
		}
		p.consume(COLON, "expected ':' after subsystem property name")
		sub.Properties[key.Value] = p.parseExpr()
	}
	end := p.consume(RIGHT_BRACE, "expected '}' to close subsystem")

	sub.EndPos = p.makeEndPos(end)
	return sub
}

// parseStateField parses: name: Type [= initializer]
func (p *Parser) parseStateField() *ast.StateField {
	name, ok := p.consumeIdent("expected state field name")
	if !ok {
		p.synchronizeUntil(COMMA, NEWLINE, RIGHT_BRACE)
		return nil
	}

	p.consume(COLON, "expected ':' after state field name")
	typ := p.parseTypeExpr()

	field := &ast.StateField{
		Pos:    name.Pos,
		EndPos: typ.NodeEndPos(),
		Name:   name,
		Type:   typ,
	}

	if p.match(EQUAL) {
		field.Init = p.parseExpr()
		field.EndPos = field.Init.NodeEndPos()
	}

	return field
}

// parseFunctionDefinition parses: [async] function name(params) [-> Type] { body }
func (p *Parser) parseFunctionDefinition() *ast.FunctionDefinition {
	var startToken Token
	async := false
	if p.check(ASYNC) {
		startToken = p.advance()
		async = true
		p.consume(FUNCTION, "expected 'function' after 'async'")
	} else {
		startToken = p.consume(FUNCTION, "expected 'function' keyword")
		if startToken.Type == ILLEGAL {
			p.synchronizeUntil(FUNCTION, ASYNC, RIGHT_BRACE)
			return nil
		}
	}

	name, ok := p.consumeIdent("expected function name")
	if !ok {
		p.synchronizeUntil(FUNCTION, ASYNC, RIGHT_BRACE)
		return nil
	}

	params := p.parseParameterList()

	var returnType ast.TypeExpr
	if p.match(ARROW) {
		returnType = p.parseTypeExpr()
	}

	body, end := p.parseBlock()

	return &ast.FunctionDefinition{
		Pos:    p.makePos(startToken),
		EndPos: p.makeEndPos(end),
		Async:  async,
		Name:   name,
		Params: params,
		Return: returnType,
		Body:   body,
	}
}

// parseEventEntry parses either an event declaration or a handler. Handlers
// are stored under "on_<event>" so a declaration and its handler coexist.
func (p *Parser) parseEventEntry(system *ast.SystemDefinition) {
	switch p.peek().Type {
	case EVENT:
		startToken := p.advance()
		name, ok := p.consumeIdent("expected event name")
		if !ok {
			p.synchronizeUntil(EVENT, ON, RIGHT_BRACE)
			return
		}
		params := p.parseParameterList()
		system.Events[name.Value] = &ast.EventDeclaration{
			Pos:    p.makePos(startToken),
			EndPos: p.makeEndPos(p.previous()),
			Name:   name,
			Params: params,
		}
	case ON:
		startToken := p.advance()
		name, ok := p.consumeIdent("expected event name after 'on'")
		if !ok {
			p.synchronizeUntil(EVENT, ON, RIGHT_BRACE)
			return
		}
		params := p.parseParameterList()
		body, end := p.parseBlock()
		system.Events["on_"+name.Value] = &ast.EventHandler{
			Pos:    p.makePos(startToken),
			EndPos: p.makeEndPos(end),
			Event:  name,
			Params: params,
			Body:   body,
		}
	default:
		p.errorAtCurrent("expected 'event' or 'on' in events section")
		p.synchronizeUntil(EVENT, ON, RIGHT_BRACE)
	}
}

// parseParameterList parses '(' name [':' TypeExpr] {',' ...} ')'
func (p *Parser) parseParameterList() []*ast.Parameter {
	p.consume(LEFT_PAREN, "expected '(' to start parameter list")
	var params []*ast.Parameter

	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		name, ok := p.consumeIdent("expected parameter name")
		if !ok {
			break
		}

		param := &ast.Parameter{
			Pos:    name.Pos,
			EndPos: name.EndPos,
			Name:   name,
		}
		if p.match(COLON) {
			param.Type = p.parseTypeExpr()
			param.EndPos = param.Type.NodeEndPos()
		}
		params = append(params, param)

		if !p.match(COMMA) {
			break
		}
	}

	p.consume(RIGHT_PAREN, "expected ')' to close parameter list")
	return params
}
