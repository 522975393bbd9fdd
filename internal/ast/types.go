package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota
	BAD_EXPR

	// High-level constructs
	PROGRAM
	TYPE_DEFINITION
	SYSTEM_DEFINITION
	DIRECTIVE
	IDENT

	// System-body entries
	FUNCTION_DEFINITION
	PARAMETER
	EVENT_DECLARATION
	EVENT_HANDLER
	STATE_FIELD
	SUBSYSTEM

	// Expressions
	BINARY_EXPR
	UNARY_EXPR
	MEMBER_EXPR
	INDEX_EXPR
	CALL_EXPR
	IDENT_EXPR
	NUMBER_LITERAL
	STRING_LITERAL
	BOOLEAN_LITERAL
	ARRAY_LITERAL
	OBJECT_LITERAL
	OBJECT_FIELD
	FORALL_EXPR

	// Statements
	IF_STMT
	FOR_STMT
	RETURN_STMT
	LET_STMT
	REQUIRE_STMT
	EMIT_STMT
	EXPR_STMT

	// Type expressions
	NAMED_TYPE
	ARRAY_TYPE
	OPTIONAL_TYPE
	OBJECT_TYPE
	OBJECT_TYPE_FIELD
)

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
