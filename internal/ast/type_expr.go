package ast

type TypeExpr interface {
	Node
	isTypeExpr()
}

func (*NamedType) isTypeExpr() {}

func (*ArrayType) isTypeExpr() {}

func (*OptionalType) isTypeExpr() {}

func (*ObjectType) isTypeExpr() {}

type NamedType struct {
	Pos    Position
	EndPos Position
	Name   Ident
}

// ArrayType is Elem[].
type ArrayType struct {
	Pos    Position
	EndPos Position
	Elem   TypeExpr
}

// OptionalType is Inner?.
type OptionalType struct {
	Pos    Position
	EndPos Position
	Inner  TypeExpr
}

type ObjectType struct {
	Pos    Position
	EndPos Position
	Fields []*ObjectTypeField
}

type ObjectTypeField struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   TypeExpr
}
