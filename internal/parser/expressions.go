package parser

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/go-exp/internal/ast"
	"github.com/cwbudde/go-exp/internal/token"
)

// parseNumberLiteral parses a number literal.
// POST: curToken is the NUMBER token (unchanged).
func (p *Parser) parseNumberLiteral() ast.Expression {
	tok := p.curToken
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.addErrorAt(tok.Pos.Offset, fmt.Sprintf("could not parse %q as number", tok.Literal))
		return nil
	}
	return &ast.NumberLiteral{
		BaseNode: ast.BaseNode{Token: tok, EndOff: tok.End},
		Value:    value,
	}
}

// parseStringLiteral parses a string literal. The lexer has already decoded
// escape sequences into the token's literal.
func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.curToken
	return &ast.StringLiteral{
		BaseNode: ast.BaseNode{Token: tok, EndOff: tok.End},
		Value:    tok.Literal,
	}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	tok := p.curToken
	return &ast.BooleanLiteral{
		BaseNode: ast.BaseNode{Token: tok, EndOff: tok.End},
		Value:    tok.Type == token.TRUE,
	}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	tok := p.curToken
	return &ast.NullLiteral{
		BaseNode: ast.BaseNode{Token: tok, EndOff: tok.End},
	}
}

func (p *Parser) parseIdentifier() ast.Expression {
	tok := p.curToken
	return &ast.Identifier{
		BaseNode: ast.BaseNode{Token: tok, EndOff: tok.End},
		Value:    tok.Literal,
	}
}

// parseUnaryExpression parses a prefix operator: !x, +x, -x.
// Prefix operators are right-associative, so !!x parses naturally.
func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	if operand == nil {
		return nil
	}
	return &ast.UnaryExpression{
		BaseNode: ast.BaseNode{Token: tok, EndOff: operand.End()},
		Operator: tok.Literal,
		Operand:  operand,
	}
}

// parseGroupedExpression parses a parenthesized expression. The inner node
// is re-anchored so its span includes the parentheses.
func (p *Parser) parseGroupedExpression() ast.Expression {
	openTok := p.curToken
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	ast.Enclose(expr, openTok, p.curToken.End)
	return expr
}

// parseArrayLiteral parses [e1, e2, …]. Empty arrays are allowed; a
// trailing comma is not.
func (p *Parser) parseArrayLiteral() ast.Expression {
	openTok := p.curToken
	elements, ok := p.parseExpressionList(token.RBRACK)
	if !ok {
		return nil
	}
	return &ast.ArrayLiteral{
		BaseNode: ast.BaseNode{Token: openTok, EndOff: p.curToken.End},
		Elements: elements,
	}
}

// parseExpressionList parses a comma-separated list of expressions
// terminated by the given closer.
// PRE: curToken is the opening delimiter.
// POST: curToken is the closing delimiter.
func (p *Parser) parseExpressionList(closer token.TokenType) ([]ast.Expression, bool) {
	elements := []ast.Expression{}

	if p.peekTokenIs(closer) {
		p.nextToken()
		return elements, true
	}

	p.nextToken()
	elem := p.parseExpression(LOWEST)
	if elem == nil {
		return nil, false
	}
	elements = append(elements, elem)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		elem := p.parseExpression(LOWEST)
		if elem == nil {
			return nil, false
		}
		elements = append(elements, elem)
	}

	if !p.expectPeek(closer) {
		return nil, false
	}
	return elements, true
}

// parseBinaryExpression parses a left-associative infix operator.
// PRE: curToken is the operator.
func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	opTok := p.curToken
	precedence := getPrecedence(opTok.Type)
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &ast.BinaryExpression{
		BaseNode: ast.BaseNode{Token: anchorFor(left, opTok), EndOff: right.End()},
		Left:     left,
		Operator: opTok.Literal,
		Right:    right,
	}
}

// parseConditionalExpression parses test ? consequent : alternate. Both
// branches recurse into full expressions, which makes the operator
// right-associative.
// PRE: curToken is '?'.
func (p *Parser) parseConditionalExpression(test ast.Expression) ast.Expression {
	opTok := p.curToken
	p.nextToken()
	consequent := p.parseExpression(LOWEST)
	if consequent == nil {
		return nil
	}
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()
	alternate := p.parseExpression(LOWEST)
	if alternate == nil {
		return nil
	}
	return &ast.ConditionalExpression{
		BaseNode:   ast.BaseNode{Token: anchorFor(test, opTok), EndOff: alternate.End()},
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}
}

// parseMemberExpression parses obj.property. The property must be a plain
// identifier; reserved words are not valid property names.
// PRE: curToken is '.'.
func (p *Parser) parseMemberExpression(object ast.Expression) ast.Expression {
	opTok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.MemberExpression{
		BaseNode: ast.BaseNode{Token: anchorFor(object, opTok), EndOff: p.curToken.End},
		Object:   object,
		Property: p.curToken.Literal,
	}
}

// parseCallExpression parses callee(arg1, arg2, …).
// PRE: curToken is '('.
func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	opTok := p.curToken
	args, ok := p.parseExpressionList(token.RPAREN)
	if !ok {
		return nil
	}
	return &ast.CallExpression{
		BaseNode:  ast.BaseNode{Token: anchorFor(callee, opTok), EndOff: p.curToken.End},
		Callee:    callee,
		Arguments: args,
	}
}

// parsePipelineExpression parses a |> f and desugars it into a call at
// parse time: a |> f becomes f(a), a |> f(x, y) becomes f(a, x, y). The
// right-hand side must be a postfix chain — an identifier, member access,
// or call; anything else is a parse error.
// PRE: curToken is '|>'.
func (p *Parser) parsePipelineExpression(left ast.Expression) ast.Expression {
	opTok := p.curToken
	p.nextToken()
	right := p.parseExpression(PIPELINE)
	if right == nil {
		return nil
	}

	switch rhs := right.(type) {
	case *ast.CallExpression:
		rhs.Arguments = append([]ast.Expression{left}, rhs.Arguments...)
		rhs.Token = anchorFor(left, opTok)
		return rhs
	case *ast.Identifier, *ast.MemberExpression:
		return &ast.CallExpression{
			BaseNode:  ast.BaseNode{Token: anchorFor(left, opTok), EndOff: right.End()},
			Callee:    right,
			Arguments: []ast.Expression{left},
		}
	default:
		p.addErrorAt(right.Pos().Offset,
			"right-hand side of '|>' must be a call, identifier, or member access")
		return nil
	}
}
