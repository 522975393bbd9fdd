package ast

// FunctionDefinition is an entry of the functions section:
// [async] function name(params) [-> Type] { body }
type FunctionDefinition struct {
	Pos    Position
	EndPos Position
	Async  bool
	Name   Ident
	Params []*Parameter
	Return TypeExpr
	Body   []Stmt
}

// Parameter is a function or event parameter with an optional type.
type Parameter struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   TypeExpr
}

// EventDeclaration declares an event signature: event name(params)
type EventDeclaration struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []*Parameter
}

// EventHandler reacts to an event: on name(params) { body }
type EventHandler struct {
	Pos    Position
	EndPos Position
	Event  Ident
	Params []*Parameter
	Body   []Stmt
}

// StateField is an entry of the state section: name: Type [= init]
type StateField struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   TypeExpr
	Init   Expr
}

// Subsystem is an entry of the subsystems section: a named property bag.
type Subsystem struct {
	Pos        Position
	EndPos     Position
	Name       Ident
	Properties map[string]Expr
}
