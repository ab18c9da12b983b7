package interp

import (
	"fmt"

	"github.com/cwbudde/go-exp/internal/ast"
)

// ErrorKind is the stable tag identifying a class of evaluation failure.
// Every kind is user-visible and recognizable from the message prefix.
type ErrorKind string

const (
	// ErrParse wraps a parse failure surfaced through Evaluate.
	ErrParse ErrorKind = "ParseError"
	// ErrEnvInvalid: the environment is not an object or contains a value
	// outside the admissible model.
	ErrEnvInvalid ErrorKind = "EnvInvalid"
	// ErrUnknownIdentifier: identifier lookup missed under the default policy.
	ErrUnknownIdentifier ErrorKind = "UnknownIdentifier"
	// ErrForbiddenMember: access to __proto__, prototype or constructor.
	ErrForbiddenMember ErrorKind = "ForbiddenMember"
	// ErrExpectedPrimitive: numeric/string operator applied to a non-primitive.
	ErrExpectedPrimitive ErrorKind = "ExpectedPrimitive"
	// ErrNotCallable: call target is not a function.
	ErrNotCallable ErrorKind = "NotCallable"
	// ErrHostError: a host function failed; the message is wrapped unchanged.
	ErrHostError ErrorKind = "HostError"
	// ErrUnsupportedReturn: a host function returned an inadmissible value.
	ErrUnsupportedReturn ErrorKind = "UnsupportedReturn"
	// ErrArrayTooLarge: array literal exceeds the element budget.
	ErrArrayTooLarge ErrorKind = "ArrayTooLarge"
	// ErrBudgetExceeded: step budget exhausted.
	ErrBudgetExceeded ErrorKind = "BudgetExceeded"
	// ErrRecursionLimit: recursion depth budget exhausted.
	ErrRecursionLimit ErrorKind = "RecursionLimit"
	// ErrBadOperator: the AST contains an operator the evaluator does not
	// recognize. Reachable only for synthesized ASTs.
	ErrBadOperator ErrorKind = "BadOperator"
)

// EvalError is an evaluation failure. Span is the byte span of the
// responsible AST node when one is attributable; Steps is the step counter
// at the point of failure. Index is set (>= 0) only when the underlying
// cause is a parse failure.
type EvalError struct {
	Kind    ErrorKind
	Message string
	Span    *ast.Span
	Steps   int
	Index   int
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// errorAt builds an EvalError attached to the given node's span, carrying
// the current step counter.
func (i *Interpreter) errorAt(kind ErrorKind, node ast.Expression, format string, args ...any) *EvalError {
	span := ast.SpanOf(node)
	return &EvalError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Span:    &span,
		Steps:   i.steps,
		Index:   -1,
	}
}

// envError builds an EvalError for environment validation failures, which
// precede evaluation and have no responsible node.
func envError(format string, args ...any) *EvalError {
	return &EvalError{
		Kind:    ErrEnvInvalid,
		Message: fmt.Sprintf(format, args...),
		Index:   -1,
	}
}

// IsKind reports whether err is an *EvalError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := err.(*EvalError)
	return ok && e.Kind == kind
}
