package interp

import (
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/go-exp/internal/ast"
)

// isTruthy implements the truthiness predicate: false, null, undefined,
// NaN, 0 and the empty string are falsy; everything else is truthy.
func isTruthy(v Value) bool {
	switch val := v.(type) {
	case *UndefinedValue, *NullValue:
		return false
	case *BooleanValue:
		return val.Value
	case *NumberValue:
		return val.Value != 0 && !math.IsNaN(val.Value)
	case *StringValue:
		return val.Value != ""
	default:
		return true
	}
}

// toNumber coerces a primitive to a number. Non-primitives are never
// implicitly converted; they fail with ExpectedPrimitive.
func (i *Interpreter) toNumber(v Value, node ast.Expression) (float64, *EvalError) {
	switch val := v.(type) {
	case *NumberValue:
		return val.Value, nil
	case *BooleanValue:
		if val.Value {
			return 1, nil
		}
		return 0, nil
	case *NullValue:
		return 0, nil
	case *UndefinedValue:
		return math.NaN(), nil
	case *StringValue:
		return parseNumericString(val.Value), nil
	default:
		return 0, i.errorAt(ErrExpectedPrimitive, node, "cannot convert %s to a number", v.Type())
	}
}

// toString coerces a primitive to a string. Non-primitives fail with
// ExpectedPrimitive; no host method is ever consulted.
func (i *Interpreter) toString(v Value, node ast.Expression) (string, *EvalError) {
	switch val := v.(type) {
	case *StringValue:
		return val.Value, nil
	case *NumberValue:
		return FormatNumber(val.Value), nil
	case *BooleanValue:
		if val.Value {
			return "true", nil
		}
		return "false", nil
	case *NullValue:
		return "null", nil
	case *UndefinedValue:
		return "undefined", nil
	default:
		return "", i.errorAt(ErrExpectedPrimitive, node, "cannot convert %s to a string", v.Type())
	}
}

// FormatNumber renders a float64 in canonical decimal form: plain decimal
// notation in the mid range, exponent notation for very large or very small
// magnitudes, "NaN" / "Infinity" / "-Infinity" for the specials. Negative
// zero renders as "0".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseNumericString parses a string operand for numeric coercion:
// surrounding whitespace is trimmed, the empty string converts to 0, and
// anything that is not a plain decimal literal (optional sign, digits with
// optional fraction and exponent) converts to NaN.
func parseNumericString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if !isDecimalLiteral(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// isDecimalLiteral reports whether s is a decimal number literal of the
// form [+-] digits [. digits] [ (e|E) [+-] digits ], allowing a leading
// ".digits" form. It rejects the hex, infinity and underscore spellings
// strconv would otherwise accept.
func isDecimalLiteral(s string) bool {
	i := 0
	n := len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := 0
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == n
}
