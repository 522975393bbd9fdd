package parser

import "sdsl/internal/ast"

// Parser consumes the complete token sequence produced by the Scanner in a
// single descent pass. State is per-call: a fresh Parser per source string.
type Parser struct {
	filename string
	tokens   []Token
	current  int
	errors   []ParseError
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

// ParseProgram parses zero or more top-level definitions until EOF. A token
// that starts none of them records one error and synchronizes, so several
// independent top-level mistakes surface from a single pass.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{
		Pos: ast.Position{Line: 1, Column: 1},
	}

	p.skipNewlines()
	for !p.isAtEnd() {
		switch p.peek().Type {
		case TYPE:
			if td := p.parseTypeDefinition(); td != nil {
				program.Definitions = append(program.Definitions, td)
			}
		case SYSTEM:
			if sd := p.parseSystemDefinition(); sd != nil {
				program.Definitions = append(program.Definitions, sd)
			}
		case DIRECTIVE:
			if d := p.parseDirective(); d != nil {
				program.Definitions = append(program.Definitions, d)
			}
		default:
			p.errorAtCurrent("expected type or system definition")
			p.synchronize()
		}
		p.skipNewlines()
	}

	program.EndPos = p.makePos(p.peek())
	return program
}

// parseTypeDefinition parses: type Name = TypeExpr
func (p *Parser) parseTypeDefinition() *ast.TypeDefinition {
	startToken := p.consume(TYPE, "expected 'type' keyword")

	name, ok := p.consumeIdent("expected type name after 'type'")
	if !ok {
		p.synchronize()
		return nil
	}

	p.consume(EQUAL, "expected '=' after type name")
	typ := p.parseTypeExpr()

	return &ast.TypeDefinition{
		Pos:    p.makePos(startToken),
		EndPos: typ.NodeEndPos(),
		Name:   name,
		Type:   typ,
	}
}

// parseDirective parses: @name ['(' args ')'] ['{' statements '}']
func (p *Parser) parseDirective() *ast.Directive {
	tok := p.advance()

	directive := &ast.Directive{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Name:   tok.Lexeme,
	}

	if p.match(LEFT_PAREN) {
		directive.Args = p.parseExprListUntil(RIGHT_PAREN)
		end := p.consume(RIGHT_PAREN, "expected ')' after directive arguments")
		directive.EndPos = p.makeEndPos(end)
	}

	if p.check(LEFT_BRACE) {
		body, end := p.parseBlock()
		directive.Body = body
		directive.EndPos = p.makeEndPos(end)
	}

	return directive
}
