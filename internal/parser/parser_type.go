package parser

import "sdsl/internal/ast"

// parseTypeExpr parses a type expression: a named type or an object type,
// with any number of '[]' and '?' suffixes.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	var base ast.TypeExpr

	if p.check(LEFT_BRACE) {
		base = p.parseObjectType()
	} else {
		tok := p.consume(IDENTIFIER, "expected type name")
		if tok.Type == ILLEGAL {
			return &ast.NamedType{
				Pos:    p.makePos(tok),
				EndPos: p.makePos(tok),
				Name:   ast.Ident{Value: "error"},
			}
		}
		base = &ast.NamedType{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   p.makeIdent(tok),
		}
	}

	for {
		if p.match(LEFT_BRACKET) {
			end := p.consume(RIGHT_BRACKET, "expected ']' in array type")
			base = &ast.ArrayType{
				Pos:    base.NodePos(),
				EndPos: p.makeEndPos(end),
				Elem:   base,
			}
		} else if p.match(QUESTION) {
			base = &ast.OptionalType{
				Pos:    base.NodePos(),
				EndPos: p.makeEndPos(p.previous()),
				Inner:  base,
			}
		} else {
			break
		}
	}

	return base
}

// parseObjectType parses: { name: TypeExpr, ... }
func (p *Parser) parseObjectType() ast.TypeExpr {
	start := p.consume(LEFT_BRACE, "expected '{' to start object type")
	obj := &ast.ObjectType{
		Pos: p.makePos(start),
	}

	for {
		p.skipEntrySeparators()
		if p.check(RIGHT_BRACE) || p.isAtEnd() {
			break
		}

		name, ok := p.consumeIdent("expected field name in object type")
		if !ok {
			p.synchronizeUntil(COMMA, NEWLINE, RIGHT_BRACE)
			continue
		}
		p.consume(COLON, "expected ':' after field name")
		typ := p.parseTypeExpr()

		obj.Fields = append(obj.Fields, &ast.ObjectTypeField{
			Pos:    name.Pos,
			EndPos: typ.NodeEndPos(),
			Name:   name,
			Type:   typ,
		})

		if !p.check(COMMA) && !p.check(NEWLINE) {
			break
		}
	}

	end := p.consume(RIGHT_BRACE, "expected '}' to close object type")
	obj.EndPos = p.makeEndPos(end)
	return obj
}
