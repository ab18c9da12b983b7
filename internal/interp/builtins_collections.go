package interp

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// Collection members of the std table.

// builtinLen returns the length of a string (in UTF-16 code units) or
// array. Objects and other shapes are rejected.
func builtinLen(args []Value) (Value, error) {
	if err := arity("len", 1, args); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case *StringValue:
		return &NumberValue{Value: float64(len(utf16.Encode([]rune(v.Value))))}, nil
	case *ArrayValue:
		return &NumberValue{Value: float64(len(v.Elements))}, nil
	default:
		return nil, fmt.Errorf("len() expects a string or array, got %s", args[0].Type())
	}
}

// builtinIncludes tests substring containment on strings and strict value
// membership on arrays.
func builtinIncludes(args []Value) (Value, error) {
	if err := arity("includes", 2, args); err != nil {
		return nil, err
	}
	switch haystack := args[0].(type) {
	case *StringValue:
		needle, err := stringArg("includes", args[1])
		if err != nil {
			return nil, err
		}
		return &BooleanValue{Value: strings.Contains(haystack.Value, needle)}, nil
	case *ArrayValue:
		for _, el := range haystack.Elements {
			if strictEquals(el, args[1]) {
				return &BooleanValue{Value: true}, nil
			}
		}
		return &BooleanValue{Value: false}, nil
	default:
		return nil, fmt.Errorf("includes() expects a string or array, got %s", args[0].Type())
	}
}
