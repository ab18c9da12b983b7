// Package ast defines the Abstract Syntax Tree node types for the
// expression language.
package ast

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-exp/internal/token"
)

// Span is a half-open byte range [Start, End) into the original input.
// It covers the node's source text from its first consumed character up to
// (but excluding) the first unconsumed character; trailing trivia is not
// part of the span.
type Span struct {
	Start int
	End   int
}

// Node is the base interface for all AST nodes.
type Node interface {
	// TokenLiteral returns the literal value of the node's anchor token.
	TokenLiteral() string

	// String returns a string representation of the node for debugging and
	// testing.
	String() string

	// Pos returns the position of the node's first character.
	Pos() token.Position

	// End returns the byte offset one past the node's last character.
	End() int
}

// Expression represents any node that produces a value. Every node in this
// language is an expression; there are no statements.
type Expression interface {
	Node
	expressionNode()
}

// BaseNode carries the anchor token and end offset shared by all nodes.
type BaseNode struct {
	Token  token.Token // first token of the node
	EndOff int         // byte offset one past the node's last character
}

func (b BaseNode) TokenLiteral() string { return b.Token.Literal }
func (b BaseNode) Pos() token.Position  { return b.Token.Pos }
func (b BaseNode) End() int             { return b.EndOff }

// SpanOf returns the byte span of a node.
func SpanOf(n Node) Span {
	return Span{Start: n.Pos().Offset, End: n.End()}
}

func (b *BaseNode) setAnchor(t token.Token) { b.Token.Pos = t.Pos }
func (b *BaseNode) setEnd(off int)          { b.EndOff = off }

// Enclose widens a node's span to start at the anchor token's position and
// end at the given end offset; the node keeps its own token literal. The
// parser uses it so a parenthesized expression's span includes the
// parentheses.
func Enclose(n Expression, anchor token.Token, end int) {
	type anchorable interface {
		setAnchor(token.Token)
		setEnd(int)
	}
	if a, ok := n.(anchorable); ok {
		a.setAnchor(anchor)
		a.setEnd(end)
	}
}

// NumberLiteral represents a number literal. Values are IEEE-754 doubles.
type NumberLiteral struct {
	BaseNode
	Value float64
}

func (nl *NumberLiteral) expressionNode() {}
func (nl *NumberLiteral) String() string  { return nl.Token.Literal }

// StringLiteral represents a string literal. Value holds the decoded text,
// with all escape sequences already resolved.
type StringLiteral struct {
	BaseNode
	Value string
}

func (sl *StringLiteral) expressionNode() {}
func (sl *StringLiteral) String() string  { return strconv.Quote(sl.Value) }

// BooleanLiteral represents true or false.
type BooleanLiteral struct {
	BaseNode
	Value bool
}

func (bl *BooleanLiteral) expressionNode() {}
func (bl *BooleanLiteral) String() string {
	if bl.Value {
		return "true"
	}
	return "false"
}

// NullLiteral represents the null literal.
type NullLiteral struct {
	BaseNode
}

func (nl *NullLiteral) expressionNode() {}
func (nl *NullLiteral) String() string  { return "null" }

// Identifier represents a name to be resolved against the environment.
// The reserved words true, false and null never appear as identifiers.
type Identifier struct {
	BaseNode
	Value string
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) String() string  { return i.Value }

// ArrayLiteral represents an array literal [e1, e2, …]. Elements preserve
// source order and may be empty.
type ArrayLiteral struct {
	BaseNode
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode() {}
func (al *ArrayLiteral) String() string {
	var out strings.Builder
	out.WriteString("[")
	for i, el := range al.Elements {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(el.String())
	}
	out.WriteString("]")
	return out.String()
}

// UnaryExpression represents a prefix operator application: !x, +x, -x.
type UnaryExpression struct {
	BaseNode
	Operator string
	Operand  Expression
}

func (ue *UnaryExpression) expressionNode() {}
func (ue *UnaryExpression) String() string {
	return "(" + ue.Operator + ue.Operand.String() + ")"
}

// BinaryExpression represents an infix operator application.
type BinaryExpression struct {
	BaseNode
	Left     Expression
	Operator string
	Right    Expression
}

func (be *BinaryExpression) expressionNode() {}
func (be *BinaryExpression) String() string {
	return "(" + be.Left.String() + " " + be.Operator + " " + be.Right.String() + ")"
}

// MemberExpression represents property access: object.property.
// Property is always a syntactically valid identifier.
type MemberExpression struct {
	BaseNode
	Object   Expression
	Property string
}

func (me *MemberExpression) expressionNode() {}
func (me *MemberExpression) String() string {
	return "(" + me.Object.String() + "." + me.Property + ")"
}

// CallExpression represents a call: callee(arg1, arg2, …). Pipeline
// applications a |> f(x) desugar to calls at parse time, so they appear
// here too.
type CallExpression struct {
	BaseNode
	Callee    Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode() {}
func (ce *CallExpression) String() string {
	var out strings.Builder
	out.WriteString(ce.Callee.String())
	out.WriteString("(")
	for i, arg := range ce.Arguments {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(arg.String())
	}
	out.WriteString(")")
	return out.String()
}

// ConditionalExpression represents the ternary operator test ? consequent :
// alternate.
type ConditionalExpression struct {
	BaseNode
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (ce *ConditionalExpression) expressionNode() {}
func (ce *ConditionalExpression) String() string {
	return "(" + ce.Test.String() + " ? " + ce.Consequent.String() + " : " + ce.Alternate.String() + ")"
}
