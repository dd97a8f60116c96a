package lexer

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	// Special
	ILLEGAL TokenType = iota
	EOF

	// Literals
	IDENTIFIER // column name
	STRING     // 'value' or "value"
	NUMBER     // 123, 1.23

	// Keywords
	AND
	OR
	NOT
	TRUE
	FALSE

	// Operators & Punctuation
	PAREN_OPEN  // (
	PAREN_CLOSE // )
	MINUS       // -
	GT          // >
	GTE         // >=
	LT          // <
	LTE         // <=
	EQ          // ==
	NEQ         // !=
)

var keywords = map[string]TokenType{
	"AND":   AND,
	"OR":    OR,
	"NOT":   NOT,
	"TRUE":  TRUE,
	"FALSE": FALSE,
}

type Token struct {
	Type    TokenType
	Literal string
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%d, %q)", t.Type, t.Literal)
}

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	column       int
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition += 1
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	col := l.column

	switch l.ch {
	case '(':
		tok = newToken(PAREN_OPEN, "(", col)
	case ')':
		tok = newToken(PAREN_CLOSE, ")", col)
	case '-':
		tok = newToken(MINUS, "-", col)
	case '>', '<', '=', '!':
		return l.readOperator()
	case '\'', '"':
		tok.Type = STRING
		tok.Column = col
		lit, ok := l.readString(l.ch)
		if !ok {
			tok.Type = ILLEGAL
		}
		tok.Literal = lit
		return tok
	case 0:
		tok = newToken(EOF, "", col)
	default:
		if isLetter(l.ch) {
			tok.Column = col
			tok.Literal = l.readIdentifier()
			tok.Type = LookupIdent(tok.Literal)
			return tok
		} else if isDigit(l.ch) {
			tok.Column = col
			tok.Type = NUMBER
			tok.Literal = l.readNumber()
			return tok
		} else {
			tok = newToken(ILLEGAL, string(l.ch), col)
		}
	}

	l.readChar()
	return tok
}

// readOperator reads a one or two character comparison operator
func (l *Lexer) readOperator() Token {
	col := l.column
	first := l.ch
	l.readChar()

	if l.ch == '=' {
		l.readChar()
		switch first {
		case '>':
			return newToken(GTE, ">=", col)
		case '<':
			return newToken(LTE, "<=", col)
		case '=':
			return newToken(EQ, "==", col)
		case '!':
			return newToken(NEQ, "!=", col)
		}
	}

	switch first {
	case '>':
		return newToken(GT, ">", col)
	case '<':
		return newToken(LT, "<", col)
	}
	// a lone '=' or '!'
	return newToken(ILLEGAL, string(first), col)
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	// Support simple floats
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[position:l.position]
}

// readString reads up to the matching quote; false if the input ends first
func (l *Lexer) readString(quote byte) (string, bool) {
	position := l.position + 1
	for {
		l.readChar()
		if l.ch == quote || l.ch == 0 {
			break
		}
	}
	lit := l.input[position:l.position]

	if l.ch != quote {
		return lit, false
	}
	// Consume the closing quote
	l.readChar()
	return lit, true
}

func newToken(tokenType TokenType, lit string, col int) Token {
	return Token{Type: tokenType, Literal: lit, Column: col}
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToUpper(ident)]; ok {
		return tok
	}
	return IDENTIFIER
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize lexes the entire expression at once
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		if tok.Type == ILLEGAL {
			return nil, fmt.Errorf("illegal token at col %d: %q", tok.Column, tok.Literal)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
