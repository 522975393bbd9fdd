package parser

import (
	"fmt"
	"strings"
	"unicode"
)

// LexError is fatal: the scanner stops at the first malformed input and no
// token sequence is produced.
type LexError struct {
	Line    int
	Column  int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d:%d: %s", e.Line, e.Column, e.Message)
}

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
	err         *LexError
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// ScanTokens tokenizes the whole source. On a malformed character or an
// unterminated string it aborts immediately and returns the error alone.
func (s *Scanner) ScanTokens() ([]Token, *LexError) {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
		if s.err != nil {
			return nil, s.err
		}
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens, nil
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case '[':
		s.addToken(LEFT_BRACKET)
	case ']':
		s.addToken(RIGHT_BRACKET)
	case ',':
		s.addToken(COMMA)
	case '.':
		s.addToken(DOT)
	case ';':
		s.addToken(SEMICOLON)
	case ':':
		s.addToken(COLON)
	case '?':
		s.addToken(QUESTION)
	case '%':
		s.addToken(PERCENT)

	// Operators with potential two-character variants
	case '+':
		if s.matchNext('=') {
			s.addToken(PLUS_EQUAL)
		} else {
			s.addToken(PLUS)
		}
	case '-':
		if s.matchNext('>') {
			s.addToken(ARROW)
		} else {
			s.addToken(MINUS)
		}
	case '*':
		if s.matchNext('*') {
			s.addToken(STAR_STAR)
		} else {
			s.addToken(STAR)
		}
	case '!':
		if s.matchNext('=') {
			s.addToken(BANG_EQUAL)
		} else {
			s.addToken(BANG)
		}
	case '=':
		if s.matchNext('=') {
			s.addToken(EQUAL_EQUAL)
		} else {
			s.addToken(EQUAL)
		}
	case '<':
		if s.matchNext('=') {
			s.addToken(LESS_EQUAL)
		} else {
			s.addToken(LESS)
		}
	case '>':
		if s.matchNext('=') {
			s.addToken(GREATER_EQUAL)
		} else {
			s.addToken(GREATER)
		}
	case '&':
		if s.matchNext('&') {
			s.addToken(AND)
		} else {
			s.fail("unexpected character: '&'")
		}
	case '|':
		if s.matchNext('|') {
			s.addToken(OR)
		} else {
			s.fail("unexpected character: '|'")
		}
	case '/':
		if s.matchNext('/') {
			s.skipLineComment()
		} else {
			s.addToken(SLASH)
		}

	// Whitespace (ignored); newline is a real token
	case ' ', '\r', '\t':
	case '\n':
		s.addToken(NEWLINE)

	case '"', '\'':
		s.scanString(c)

	case '@':
		s.scanDirective()

	default:
		if isDigit(c) {
			s.scanNumber()
		} else if isAlpha(c) {
			s.scanIdentifier()
		} else {
			s.fail(fmt.Sprintf("unexpected character: %q", c))
		}
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.addTokenLexeme(tokenType, s.source[s.start:s.current])
}

func (s *Scanner) addTokenLexeme(tokenType TokenType, lexeme string) {
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

// fail records the fatal error at the start of the current token.
func (s *Scanner) fail(message string) {
	s.err = &LexError{
		Line:    s.startLine,
		Column:  s.startColumn,
		Message: message,
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	if t, ok := KEYWORDS[text]; ok {
		s.addToken(t)
	} else {
		s.addToken(IDENTIFIER)
	}
}

// scanNumber scans a digit run with an optional fraction. No exponent or hex
// notation is recognized.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	s.addToken(NUMBER)
}

// scanString scans a literal delimited by the quote that opened it. Escape
// sequences are resolved here; an unknown escape keeps backslash and character
// verbatim. A raw newline inside the literal is allowed.
func (s *Scanner) scanString(quote byte) {
	var value strings.Builder
	for !s.isAtEnd() && s.peek() != quote {
		c := s.advance()
		if c != '\\' {
			value.WriteByte(c)
			continue
		}
		if s.isAtEnd() {
			break
		}
		esc := s.advance()
		switch esc {
		case 'n':
			value.WriteByte('\n')
		case 't':
			value.WriteByte('\t')
		case 'r':
			value.WriteByte('\r')
		case '\\':
			value.WriteByte('\\')
		case '"':
			value.WriteByte('"')
		case '\'':
			value.WriteByte('\'')
		default:
			value.WriteByte('\\')
			value.WriteByte(esc)
		}
	}

	if s.isAtEnd() {
		s.fail("unterminated string")
		return
	}

	s.advance() // closing quote
	s.addTokenLexeme(STRING, value.String())
}

// scanDirective scans '@' immediately followed by a name; the '@' is not part
// of the token lexeme.
func (s *Scanner) scanDirective() {
	if !isAlpha(s.peek()) && !isDigit(s.peek()) {
		s.fail("expected directive name after '@'")
		return
	}
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	s.addTokenLexeme(DIRECTIVE, s.source[s.start+1:s.current])
}

// skipLineComment discards '//' to end of line; the parser never sees comments.
func (s *Scanner) skipLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}
