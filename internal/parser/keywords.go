package parser

var KEYWORDS = map[string]TokenType{
	"system":   SYSTEM,
	"type":     TYPE,
	"function": FUNCTION,
	"event":    EVENT,
	"on":       ON,
	"emit":     EMIT,
	"require":  REQUIRE,
	"if":       IF,
	"else":     ELSE,
	"for":      FOR,
	"forall":   FORALL,
	"let":      LET,
	"return":   RETURN,
	"in":       IN,
	"async":    ASYNC,
	"await":    AWAIT,
	"true":     BOOLEAN,
	"false":    BOOLEAN,

	"version":       VERSION,
	"description":   DESCRIPTION,
	"types":         TYPES,
	"inputs":        INPUTS,
	"outputs":       OUTPUTS,
	"config":        CONFIG,
	"subsystems":    SUBSYSTEMS,
	"state":         STATE,
	"rules":         RULES,
	"functions":     FUNCTIONS,
	"events":        EVENTS,
	"orchestration": ORCHESTRATION,
}
