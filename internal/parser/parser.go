// Package parser implements the expression parser using Pratt parsing.
//
// The parser is a precedence-climbing recursive-descent parser: each token
// type maps to a prefix and/or infix parse function, and parseExpression
// drives the precedence loop. Error recovery is minimal: the first failure
// is recorded with the byte index of the cursor at the point of failure and
// parsing stops.
package parser

import (
	"fmt"

	"github.com/cwbudde/go-exp/internal/ast"
	"github.com/cwbudde/go-exp/internal/lexer"
	"github.com/cwbudde/go-exp/internal/token"
)

// Precedence levels for operators (lowest to highest).
const (
	_ int = iota
	LOWEST
	CONDITIONAL // ?:
	PIPELINE    // |>
	OR          // ||
	AND         // &&
	EQUALS      // == !=
	LESSGREATER // < <= > >=
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // !x -x +x
	CALL        // f(args)
	MEMBER      // obj.prop
)

// precedences maps token types to their precedence levels.
var precedences = map[token.TokenType]int{
	token.QUESTION:   CONDITIONAL,
	token.PIPE:       PIPELINE,
	token.OR:         OR,
	token.AND:        AND,
	token.EQ:         EQUALS,
	token.NOT_EQ:     EQUALS,
	token.LESS:       LESSGREATER,
	token.LESS_EQ:    LESSGREATER,
	token.GREATER:    LESSGREATER,
	token.GREATER_EQ: LESSGREATER,
	token.PLUS:       SUM,
	token.MINUS:      SUM,
	token.ASTERISK:   PRODUCT,
	token.SLASH:      PRODUCT,
	token.PERCENT:    PRODUCT,
	token.LPAREN:     CALL,
	token.DOT:        MEMBER,
}

func getPrecedence(t token.TokenType) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}

// prefixParseFn parses prefix expressions (literals, unary ops, grouping).
type prefixParseFn func() ast.Expression

// infixParseFn parses infix expressions (binary ops, calls, member access).
type infixParseFn func(ast.Expression) ast.Expression

// Parser represents the expression parser.
type Parser struct {
	l              *lexer.Lexer
	curToken       token.Token
	peekToken      token.Token
	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
	errors         []*Error
}

// New creates a new Parser reading from the given lexer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.NUMBER: p.parseNumberLiteral,
		token.STRING: p.parseStringLiteral,
		token.TRUE:   p.parseBooleanLiteral,
		token.FALSE:  p.parseBooleanLiteral,
		token.NULL:   p.parseNullLiteral,
		token.IDENT:  p.parseIdentifier,
		token.LBRACK: p.parseArrayLiteral,
		token.LPAREN: p.parseGroupedExpression,
		token.BANG:   p.parseUnaryExpression,
		token.PLUS:   p.parseUnaryExpression,
		token.MINUS:  p.parseUnaryExpression,
	}

	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.PLUS:       p.parseBinaryExpression,
		token.MINUS:      p.parseBinaryExpression,
		token.ASTERISK:   p.parseBinaryExpression,
		token.SLASH:      p.parseBinaryExpression,
		token.PERCENT:    p.parseBinaryExpression,
		token.EQ:         p.parseBinaryExpression,
		token.NOT_EQ:     p.parseBinaryExpression,
		token.LESS:       p.parseBinaryExpression,
		token.LESS_EQ:    p.parseBinaryExpression,
		token.GREATER:    p.parseBinaryExpression,
		token.GREATER_EQ: p.parseBinaryExpression,
		token.AND:        p.parseBinaryExpression,
		token.OR:         p.parseBinaryExpression,
		token.QUESTION:   p.parseConditionalExpression,
		token.PIPE:       p.parsePipelineExpression,
		token.DOT:        p.parseMemberExpression,
		token.LPAREN:     p.parseCallExpression,
	}

	// Read two tokens so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the list of parsing errors.
func (p *Parser) Errors() []*Error {
	return p.errors
}

// Parse parses a complete expression. The whole input must be consumed:
// leftover non-trivia after the expression is a parse error. On failure it
// returns nil; the failure is available via Errors.
func (p *Parser) Parse() ast.Expression {
	expr := p.parseExpression(LOWEST)
	if expr == nil || len(p.errors) > 0 {
		p.adoptLexerError()
		return nil
	}
	if !p.peekTokenIs(token.EOF) {
		if p.peekTokenIs(token.ILLEGAL) {
			p.addErrorAt(p.peekToken.Pos.Offset, p.peekToken.Literal)
		} else {
			p.addErrorAt(p.peekToken.Pos.Offset,
				fmt.Sprintf("unexpected token %q after expression", p.peekToken.Literal))
		}
		return nil
	}
	if len(p.l.Errors()) > 0 {
		p.adoptLexerError()
		return nil
	}
	return expr
}

// adoptLexerError surfaces the first lexical error when no parser error
// points at it already; the lexer's index is the more precise one.
func (p *Parser) adoptLexerError() {
	lexErrs := p.l.Errors()
	if len(lexErrs) == 0 {
		return
	}
	first := lexErrs[0]
	if len(p.errors) == 0 || p.errors[0].Message != first.Message {
		p.errors = append([]*Error{{Message: first.Message, Index: first.Pos.Offset}}, p.errors...)
	}
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) peekPrecedence() int {
	return getPrecedence(p.peekToken.Type)
}

// expectPeek advances if the peek token matches, otherwise records an error
// and returns false.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) addErrorAt(index int, message string) {
	p.errors = append(p.errors, &Error{Message: message, Index: index})
}

func (p *Parser) peekError(t token.TokenType) {
	if p.peekTokenIs(token.ILLEGAL) {
		p.addErrorAt(p.peekToken.Pos.Offset, p.peekToken.Literal)
		return
	}
	got := p.peekToken.Literal
	if p.peekTokenIs(token.EOF) {
		got = "end of input"
		p.addErrorAt(p.peekToken.Pos.Offset, fmt.Sprintf("expected %q, found %s", t, got))
		return
	}
	p.addErrorAt(p.peekToken.Pos.Offset, fmt.Sprintf("expected %q, found %q", t, got))
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	switch tok.Type {
	case token.EOF:
		p.addErrorAt(tok.Pos.Offset, "unexpected end of input")
	case token.ILLEGAL:
		p.addErrorAt(tok.Pos.Offset, tok.Literal)
	default:
		p.addErrorAt(tok.Pos.Offset, fmt.Sprintf("unexpected token %q", tok.Literal))
	}
}

// parseExpression is the precedence-climbing core.
// PRE: curToken is the first token of the expression.
// POST: curToken is the last token of the expression.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()

	for leftExp != nil && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}

	return leftExp
}

// anchorFor builds an anchor token for an infix-constructed node so the
// node's span starts at its leftmost operand rather than at the operator.
func anchorFor(left ast.Expression, operator token.Token) token.Token {
	operator.Pos = left.Pos()
	return operator
}
