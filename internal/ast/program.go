package ast

// Definition is a top-level entry of a Program.
type Definition interface {
	Node
	isDefinition()
}

func (*TypeDefinition) isDefinition()   {}
func (*SystemDefinition) isDefinition() {}
func (*Directive) isDefinition()        {}

// BadNode marks a region the parser could not make sense of. It is only ever
// produced alongside a recorded ParseError, never silently.
type BadNode struct {
	Pos     Position
	EndPos  Position
	Message string
}

type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Program is the root of the syntax tree: an ordered sequence of type
// definitions, system definitions and directives.
type Program struct {
	Pos         Position
	EndPos      Position
	Definitions []Definition
}

// TypeDefinition binds a name to a type expression: type Name = T
type TypeDefinition struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   TypeExpr
}

// SystemDefinition is a named entity with a fixed set of optional sections.
// Section maps overwrite silently on a repeated name; Inputs and Outputs keep
// declaration order. A handler for event x lives in Events under key "on_x".
type SystemDefinition struct {
	Pos    Position
	EndPos Position
	Name   Ident

	Version     *StringLiteral
	Description *StringLiteral

	Types         map[string]TypeExpr
	Inputs        []Expr
	Outputs       []Expr
	Config        map[string]Expr
	Subsystems    map[string]*Subsystem
	State         map[string]*StateField
	Rules         map[string]Expr
	Functions     map[string]*FunctionDefinition
	Events        map[string]Node
	Orchestration map[string]Expr
}

// Directive is an @name annotation with optional arguments and statement body.
type Directive struct {
	Pos    Position
	EndPos Position
	Name   string
	Args   []Expr
	Body   []Stmt
}
