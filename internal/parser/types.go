package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF
	NEWLINE
	COMMENT
	DIRECTIVE

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	STRING
	BOOLEAN

	// Keywords
	SYSTEM
	TYPE
	FUNCTION
	EVENT
	ON
	EMIT
	REQUIRE
	IF
	ELSE
	FOR
	FORALL
	LET
	RETURN
	IN
	ASYNC
	AWAIT

	// Section keywords
	VERSION
	DESCRIPTION
	TYPES
	INPUTS
	OUTPUTS
	CONFIG
	SUBSYSTEMS
	STATE
	RULES
	FUNCTIONS
	EVENTS
	ORCHESTRATION

	// Operators
	PLUS
	PLUS_EQUAL
	MINUS
	STAR
	STAR_STAR
	SLASH
	PERCENT
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	AND
	OR
	ARROW

	// Separators
	COMMA
	DOT
	SEMICOLON
	COLON
	QUESTION

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET
)

var tokenNames = [...]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	NEWLINE:       "NEWLINE",
	COMMENT:       "COMMENT",
	DIRECTIVE:     "DIRECTIVE",
	IDENTIFIER:    "IDENTIFIER",
	NUMBER:        "NUMBER",
	STRING:        "STRING",
	BOOLEAN:       "BOOLEAN",
	SYSTEM:        "SYSTEM",
	TYPE:          "TYPE",
	FUNCTION:      "FUNCTION",
	EVENT:         "EVENT",
	ON:            "ON",
	EMIT:          "EMIT",
	REQUIRE:       "REQUIRE",
	IF:            "IF",
	ELSE:          "ELSE",
	FOR:           "FOR",
	FORALL:        "FORALL",
	LET:           "LET",
	RETURN:        "RETURN",
	IN:            "IN",
	ASYNC:         "ASYNC",
	AWAIT:         "AWAIT",
	VERSION:       "VERSION",
	DESCRIPTION:   "DESCRIPTION",
	TYPES:         "TYPES",
	INPUTS:        "INPUTS",
	OUTPUTS:       "OUTPUTS",
	CONFIG:        "CONFIG",
	SUBSYSTEMS:    "SUBSYSTEMS",
	STATE:         "STATE",
	RULES:         "RULES",
	FUNCTIONS:     "FUNCTIONS",
	EVENTS:        "EVENTS",
	ORCHESTRATION: "ORCHESTRATION",
	PLUS:          "PLUS",
	PLUS_EQUAL:    "PLUS_EQUAL",
	MINUS:         "MINUS",
	STAR:          "STAR",
	STAR_STAR:     "STAR_STAR",
	SLASH:         "SLASH",
	PERCENT:       "PERCENT",
	BANG:          "BANG",
	BANG_EQUAL:    "BANG_EQUAL",
	EQUAL:         "EQUAL",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	AND:           "AND",
	OR:            "OR",
	ARROW:         "ARROW",
	COMMA:         "COMMA",
	DOT:           "DOT",
	SEMICOLON:     "SEMICOLON",
	COLON:         "COLON",
	QUESTION:      "QUESTION",
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	LEFT_BRACKET:  "LEFT_BRACKET",
	RIGHT_BRACKET: "RIGHT_BRACKET",
}

func (tt TokenType) String() string {
	if int(tt) < len(tokenNames) && tokenNames[tt] != "" {
		return tokenNames[tt]
	}
	return "UNKNOWN"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}
