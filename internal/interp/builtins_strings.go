package interp

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf16"
)

// String members of the std table. Indices and lengths are measured in
// UTF-16 code units, matching the \uHHHH escape semantics of string
// literals.

func stringArg(name string, arg Value) (string, error) {
	s, ok := arg.(*StringValue)
	if !ok {
		return "", fmt.Errorf("%s() expects a string, got %s", name, arg.Type())
	}
	return s.Value, nil
}

func arity(name string, want int, args []Value) error {
	if len(args) != want {
		return fmt.Errorf("%s() expects exactly %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

func builtinLower(args []Value) (Value, error) {
	if err := arity("lower", 1, args); err != nil {
		return nil, err
	}
	s, err := stringArg("lower", args[0])
	if err != nil {
		return nil, err
	}
	return &StringValue{Value: strings.ToLower(s)}, nil
}

func builtinUpper(args []Value) (Value, error) {
	if err := arity("upper", 1, args); err != nil {
		return nil, err
	}
	s, err := stringArg("upper", args[0])
	if err != nil {
		return nil, err
	}
	return &StringValue{Value: strings.ToUpper(s)}, nil
}

func builtinTrim(args []Value) (Value, error) {
	if err := arity("trim", 1, args); err != nil {
		return nil, err
	}
	s, err := stringArg("trim", args[0])
	if err != nil {
		return nil, err
	}
	return &StringValue{Value: strings.TrimSpace(s)}, nil
}

func builtinStartsWith(args []Value) (Value, error) {
	if err := arity("startsWith", 2, args); err != nil {
		return nil, err
	}
	s, err := stringArg("startsWith", args[0])
	if err != nil {
		return nil, err
	}
	prefix, err := stringArg("startsWith", args[1])
	if err != nil {
		return nil, err
	}
	return &BooleanValue{Value: strings.HasPrefix(s, prefix)}, nil
}

func builtinEndsWith(args []Value) (Value, error) {
	if err := arity("endsWith", 2, args); err != nil {
		return nil, err
	}
	s, err := stringArg("endsWith", args[0])
	if err != nil {
		return nil, err
	}
	suffix, err := stringArg("endsWith", args[1])
	if err != nil {
		return nil, err
	}
	return &BooleanValue{Value: strings.HasSuffix(s, suffix)}, nil
}

// builtinSlice implements slice(s, start, end?): the standard substring
// with negative indices counting from the end and out-of-range indices
// clamped.
func builtinSlice(args []Value) (Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, fmt.Errorf("slice() expects 2 or 3 arguments, got %d", len(args))
	}
	s, err := stringArg("slice", args[0])
	if err != nil {
		return nil, err
	}
	startNum, ok := args[1].(*NumberValue)
	if !ok {
		return nil, fmt.Errorf("slice() expects a number index, got %s", args[1].Type())
	}

	units := utf16.Encode([]rune(s))
	n := len(units)

	start := sliceIndex(startNum.Value, n, 0)
	end := n
	if len(args) == 3 {
		endNum, ok := args[2].(*NumberValue)
		if !ok {
			return nil, fmt.Errorf("slice() expects a number index, got %s", args[2].Type())
		}
		end = sliceIndex(endNum.Value, n, n)
	}

	if start >= end {
		return &StringValue{Value: ""}, nil
	}
	return &StringValue{Value: string(utf16.Decode(units[start:end]))}, nil
}

// sliceIndex normalizes a slice index: NaN maps to the given default,
// negative values count from the end, and the result is clamped to [0, n].
func sliceIndex(f float64, n, def int) int {
	if math.IsNaN(f) {
		return def
	}
	if f >= float64(n) {
		return n
	}
	if f <= -float64(n) {
		return 0
	}
	idx := int(math.Trunc(f))
	if idx < 0 {
		idx += n
	}
	if idx < 0 {
		return 0
	}
	if idx > n {
		return n
	}
	return idx
}
