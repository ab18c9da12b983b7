package interp

import (
	"fmt"
	"math"
)

// Numeric members of the std table. Arguments are validated strictly:
// these functions do not coerce, they require numbers.

// numberArgs checks the arity and that every argument is a number.
func numberArgs(name string, want int, args []Value) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%s() expects exactly %d argument(s), got %d", name, want, len(args))
	}
	out := make([]float64, len(args))
	for idx, arg := range args {
		n, ok := arg.(*NumberValue)
		if !ok {
			return nil, fmt.Errorf("%s() expects a number, got %s", name, arg.Type())
		}
		out[idx] = n.Value
	}
	return out, nil
}

func builtinAbs(args []Value) (Value, error) {
	n, err := numberArgs("abs", 1, args)
	if err != nil {
		return nil, err
	}
	return &NumberValue{Value: math.Abs(n[0])}, nil
}

func builtinFloor(args []Value) (Value, error) {
	n, err := numberArgs("floor", 1, args)
	if err != nil {
		return nil, err
	}
	return &NumberValue{Value: math.Floor(n[0])}, nil
}

func builtinCeil(args []Value) (Value, error) {
	n, err := numberArgs("ceil", 1, args)
	if err != nil {
		return nil, err
	}
	return &NumberValue{Value: math.Ceil(n[0])}, nil
}

func builtinRound(args []Value) (Value, error) {
	n, err := numberArgs("round", 1, args)
	if err != nil {
		return nil, err
	}
	return &NumberValue{Value: math.Round(n[0])}, nil
}

func builtinTrunc(args []Value) (Value, error) {
	n, err := numberArgs("trunc", 1, args)
	if err != nil {
		return nil, err
	}
	return &NumberValue{Value: math.Trunc(n[0])}, nil
}

func builtinSqrt(args []Value) (Value, error) {
	n, err := numberArgs("sqrt", 1, args)
	if err != nil {
		return nil, err
	}
	return &NumberValue{Value: math.Sqrt(n[0])}, nil
}

func builtinPow(args []Value) (Value, error) {
	n, err := numberArgs("pow", 2, args)
	if err != nil {
		return nil, err
	}
	return &NumberValue{Value: math.Pow(n[0], n[1])}, nil
}

func builtinMin(args []Value) (Value, error) {
	n, err := numberArgs("min", 2, args)
	if err != nil {
		return nil, err
	}
	return &NumberValue{Value: math.Min(n[0], n[1])}, nil
}

func builtinMax(args []Value) (Value, error) {
	n, err := numberArgs("max", 2, args)
	if err != nil {
		return nil, err
	}
	return &NumberValue{Value: math.Max(n[0], n[1])}, nil
}

// builtinClamp returns min(hi, max(lo, x)).
func builtinClamp(args []Value) (Value, error) {
	n, err := numberArgs("clamp", 3, args)
	if err != nil {
		return nil, err
	}
	x, lo, hi := n[0], n[1], n[2]
	return &NumberValue{Value: math.Min(hi, math.Max(lo, x))}, nil
}
