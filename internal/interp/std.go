package interp

import "sync"

// The std table is a fixed, read-only mapping exposed under the reserved
// identifier "std". It is built once at first use; every member is
// deterministic and side-effect-free.

var (
	stdOnce  sync.Once
	stdTable *ObjectValue
)

// Std returns the standard library object. Callers must not mutate it.
func Std() *ObjectValue {
	stdOnce.Do(func() {
		stdTable = &ObjectValue{Fields: map[string]Value{
			"len":        stdFunc("len", builtinLen),
			"abs":        stdFunc("abs", builtinAbs),
			"floor":      stdFunc("floor", builtinFloor),
			"ceil":       stdFunc("ceil", builtinCeil),
			"round":      stdFunc("round", builtinRound),
			"trunc":      stdFunc("trunc", builtinTrunc),
			"sqrt":       stdFunc("sqrt", builtinSqrt),
			"pow":        stdFunc("pow", builtinPow),
			"min":        stdFunc("min", builtinMin),
			"max":        stdFunc("max", builtinMax),
			"clamp":      stdFunc("clamp", builtinClamp),
			"lower":      stdFunc("lower", builtinLower),
			"upper":      stdFunc("upper", builtinUpper),
			"trim":       stdFunc("trim", builtinTrim),
			"startsWith": stdFunc("startsWith", builtinStartsWith),
			"endsWith":   stdFunc("endsWith", builtinEndsWith),
			"includes":   stdFunc("includes", builtinIncludes),
			"slice":      stdFunc("slice", builtinSlice),
		}}
	})
	return stdTable
}

func stdFunc(name string, fn func(args []Value) (Value, error)) *FunctionValue {
	return &FunctionValue{
		Name: "std." + name,
		Fn: func(_ Value, args []Value) (Value, error) {
			return fn(args)
		},
	}
}
