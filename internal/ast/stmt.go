package ast

type Stmt interface {
	Node
	isStmt()
}

func (*IfStmt) isStmt() {}

func (*ForStmt) isStmt() {}

func (*ReturnStmt) isStmt() {}

func (*LetStmt) isStmt() {}

func (*RequireStmt) isStmt() {}

func (*EmitStmt) isStmt() {}

func (*ExprStmt) isStmt() {}

type IfStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   []Stmt
	Else   []Stmt
}

// ForStmt iterates a domain expression: for (x in domain) { body }
type ForStmt struct {
	Pos    Position
	EndPos Position
	Var    Ident
	Domain Expr
	Body   []Stmt
}

type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

type LetStmt struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

// RequireStmt asserts a condition with an optional message expression.
type RequireStmt struct {
	Pos     Position
	EndPos  Position
	Cond    Expr
	Message Expr
}

type EmitStmt struct {
	Pos    Position
	EndPos Position
	Event  Ident
	Args   []Expr
}

type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}
