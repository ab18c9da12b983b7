// Package exp is an embeddable expression language toolkit: a
// recursive-descent parser producing a span-annotated AST, and a budgeted
// tree-walking evaluator executing it against a host-provided environment
// under a conservative safe-access policy.
//
// The language is a single-expression language — no statements, assignment
// or user-defined functions. Hosts supply an environment of values and
// functions; the reserved identifier std exposes the built-in standard
// library and cannot be overridden.
//
//	val, err := exp.Evaluate("user.plan == 'pro' ? 10 : 1",
//		exp.WithEnv(exp.NewObject(map[string]exp.Value{
//			"user": exp.NewObject(map[string]exp.Value{"plan": exp.Str("pro")}),
//		})))
package exp

import (
	"github.com/cwbudde/go-exp/internal/ast"
	"github.com/cwbudde/go-exp/internal/interp"
	"github.com/cwbudde/go-exp/internal/lexer"
	"github.com/cwbudde/go-exp/internal/parser"
)

// Core types, re-exported for hosts.
type (
	// Expression is a parsed, span-annotated AST node.
	Expression = ast.Expression
	// Span is a half-open byte range [Start, End) into the input.
	Span = ast.Span
	// Value is a runtime value of the closed admissible model.
	Value = interp.Value
	// Object is a mapping from string keys to values. Environments are
	// objects.
	Object = interp.ObjectValue
	// Array is an ordered sequence of values.
	Array = interp.ArrayValue
	// Function is an opaque host callable.
	Function = interp.FunctionValue
	// HostFunc is the Go signature of a host callable.
	HostFunc = interp.HostFunc

	// ParseError is returned by Parse; Index is a byte offset into the
	// input.
	ParseError = parser.Error
	// EvalError is returned by Evaluate and EvaluateAST; it carries the
	// responsible node's span and the step counter at failure.
	EvalError = interp.EvalError
	// ErrorKind is the stable tag on an EvalError.
	ErrorKind = interp.ErrorKind

	// Option configures an evaluation.
	Option = interp.Option
)

// The two nullary values.
var (
	Undefined = interp.Undefined
	Null      = interp.Null
)

// Default resource budgets.
const (
	DefaultMaxSteps         = interp.DefaultMaxSteps
	DefaultMaxDepth         = interp.DefaultMaxDepth
	DefaultMaxArrayElements = interp.DefaultMaxArrayElements
)

// Evaluation options.
var (
	// WithEnv sets the host environment object.
	WithEnv = interp.WithEnv
	// WithMaxSteps overrides the step budget (default 10000).
	WithMaxSteps = interp.WithMaxSteps
	// WithMaxDepth overrides the recursion depth budget (default 256).
	WithMaxDepth = interp.WithMaxDepth
	// WithMaxArrayElements overrides the array literal element budget
	// (default 1000).
	WithMaxArrayElements = interp.WithMaxArrayElements
	// WithUndefinedIdentifiers makes unknown identifiers evaluate to
	// undefined instead of failing.
	WithUndefinedIdentifiers = interp.WithUndefinedIdentifiers
)

// Value constructors.
var (
	// NewObject builds an object value over the given fields.
	NewObject = interp.NewObject
	// NewArray builds an array value.
	NewArray = interp.NewArray
	// NewFunction wraps a host callable.
	NewFunction = interp.NewFunction
	// FromGo converts native Go data (nil, bool, numbers, string, []any,
	// map[string]any, host funcs) into a value.
	FromGo = interp.FromGo
)

// IsKind reports whether err is an *EvalError of the given kind.
var IsKind = interp.IsKind

// Number builds a number value.
func Number(f float64) Value { return &interp.NumberValue{Value: f} }

// Str builds a string value.
func Str(s string) Value { return &interp.StringValue{Value: s} }

// Bool builds a boolean value.
func Bool(b bool) Value { return &interp.BooleanValue{Value: b} }

// Parse parses a single expression into its AST. The entire input must be
// one expression: leftover non-trivia is an error. On failure the returned
// error is a *ParseError whose Index is a byte offset into input.
func Parse(input string) (Expression, error) {
	l := lexer.New(input)
	p := parser.New(l)
	expr := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, errs[0]
	}
	return expr, nil
}

// EvaluateAST evaluates a parsed expression. The AST is immutable and may
// be shared across concurrent evaluations; each call uses its own
// evaluation context. On failure the returned error is an *EvalError.
func EvaluateAST(expr Expression, opts ...Option) (Value, error) {
	return interp.New(opts...).Run(expr)
}

// Evaluate parses and evaluates input. Parse failures surface as an
// *EvalError of kind ParseError with Index set to the failure offset.
func Evaluate(input string, opts ...Option) (Value, error) {
	expr, err := Parse(input)
	if err != nil {
		pe := err.(*ParseError)
		return nil, &EvalError{Kind: interp.ErrParse, Message: pe.Message, Index: pe.Index}
	}
	return EvaluateAST(expr, opts...)
}
