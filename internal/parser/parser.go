package parser

import (
	"fmt"
	"strconv"

	"github.com/leengari/tableclean/internal/parser/ast"
	"github.com/leengari/tableclean/internal/parser/lexer"
)

// Parser turns query tokens into a boolean expression tree
//
//	expr       := and_expr ( OR and_expr )*
//	and_expr   := unary ( AND unary )*
//	unary      := NOT unary | '(' expr ')' | comparison
//	comparison := IDENTIFIER op literal
type Parser struct {
	tokens  []lexer.Token
	curPos  int
	curTok  lexer.Token
	peekTok lexer.Token
}

func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens, curPos: 0}
	// Read two tokens to set curTok and peekTok
	p.nextToken()
	p.nextToken()
	return p
}

// ParseQuery tokenizes and parses a query string such as "A > 2 and C == 'x'"
func ParseQuery(query string) (ast.Expression, error) {
	tokens, err := lexer.Tokenize(query)
	if err != nil {
		return nil, fmt.Errorf("lexer error: %w", err)
	}
	expr, err := New(tokens).Parse()
	if err != nil {
		return nil, fmt.Errorf("parse error in %q: %w", query, err)
	}
	return expr, nil
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.curPos < len(p.tokens) {
		p.peekTok = p.tokens[p.curPos]
		p.curPos++
	} else {
		p.peekTok = lexer.Token{Type: lexer.EOF}
	}
}

// Parse parses the whole token stream as one expression
func (p *Parser) Parse() (ast.Expression, error) {
	if p.curTok.Type == lexer.EOF {
		return nil, fmt.Errorf("empty expression")
	}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.curTok.Type != lexer.EOF {
		return nil, fmt.Errorf("unexpected token %q at col %d", p.curTok.Literal, p.curTok.Column)
	}
	return expr, nil
}

func (p *Parser) parseOr() (ast.Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.curTok.Type == lexer.OR {
		p.nextToken()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpression{Left: left, Operator: "or", Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.curTok.Type == lexer.AND {
		p.nextToken()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpression{Left: left, Operator: "and", Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	switch p.curTok.Type {
	case lexer.NOT:
		p.nextToken()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.NotExpression{Operand: operand}, nil

	case lexer.PAREN_OPEN:
		p.nextToken()
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.curTok.Type != lexer.PAREN_CLOSE {
			return nil, fmt.Errorf("expected ) at col %d, got %q", p.curTok.Column, p.curTok.Literal)
		}
		p.nextToken()
		return expr, nil
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	if p.curTok.Type != lexer.IDENTIFIER {
		return nil, fmt.Errorf("expected column name at col %d, got %q", p.curTok.Column, p.curTok.Literal)
	}
	column := p.curTok.Literal
	p.nextToken()

	var op string
	switch p.curTok.Type {
	case lexer.GT, lexer.GTE, lexer.LT, lexer.LTE, lexer.EQ, lexer.NEQ:
		op = p.curTok.Literal
	default:
		return nil, fmt.Errorf("expected comparison operator after %s, got %q", column, p.curTok.Literal)
	}
	p.nextToken()

	value, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	return &ast.Comparison{Column: column, Operator: op, Value: value}, nil
}

func (p *Parser) parseLiteral() (interface{}, error) {
	negative := false
	if p.curTok.Type == lexer.MINUS {
		negative = true
		p.nextToken()
		if p.curTok.Type != lexer.NUMBER {
			return nil, fmt.Errorf("expected number after - at col %d", p.curTok.Column)
		}
	}

	tok := p.curTok
	p.nextToken()

	switch tok.Type {
	case lexer.NUMBER:
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", tok.Literal, err)
		}
		if negative {
			f = -f
		}
		return f, nil
	case lexer.STRING:
		return tok.Literal, nil
	case lexer.TRUE:
		return true, nil
	case lexer.FALSE:
		return false, nil
	default:
		return nil, fmt.Errorf("expected literal at col %d, got %q", tok.Column, tok.Literal)
	}
}
