package ast

type Expr interface {
	Node
	isExpr()
}

func (*BadExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*MemberExpr) isExpr() {}

func (*IndexExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*NumberLiteral) isExpr() {}

func (*StringLiteral) isExpr() {}

func (*BooleanLiteral) isExpr() {}

func (*ArrayLiteral) isExpr() {}

func (*ObjectLiteral) isExpr() {}

func (*ForallExpr) isExpr() {}

type BadExpr struct {
	Bad BadNode
}

type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}

// MemberExpr is property access: target.property
type MemberExpr struct {
	Pos      Position
	EndPos   Position
	Target   Expr
	Property Ident
}

// IndexExpr is subscript access: target[index]
type IndexExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Index  Expr
}

type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

type NumberLiteral struct {
	Pos    Position
	EndPos Position
	Value  float64
}

type StringLiteral struct {
	Pos    Position
	EndPos Position
	Value  string
}

type BooleanLiteral struct {
	Pos    Position
	EndPos Position
	Value  bool
}

type ArrayLiteral struct {
	Pos      Position
	EndPos   Position
	Elements []Expr
}

type ObjectLiteral struct {
	Pos    Position
	EndPos Position
	Fields []*ObjectField
}

// ObjectField is a key: value entry of an object literal. Keys are identifiers
// or string literals.
type ObjectField struct {
	Pos    Position
	EndPos Position
	Key    string
	Value  Expr
}

// ForallExpr is the comprehension form: forall (x in domain) { body }
type ForallExpr struct {
	Pos    Position
	EndPos Position
	Var    Ident
	Domain Expr
	Body   Expr
}
