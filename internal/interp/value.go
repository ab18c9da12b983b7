// Package interp provides the runtime value model and the budgeted
// tree-walking evaluator for the expression language.
package interp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Value represents a runtime value. The value model is closed: a value is
// exactly one of undefined, null, boolean, number, string, array, object or
// function. No other shapes are admissible at evaluation time.
type Value interface {
	// Type returns the type name of the value (e.g. "NUMBER", "STRING").
	Type() string
	// String returns a display representation of the value.
	String() string
}

// Shared singletons for the two nullary values. Hosts may use these when
// building environments.
var (
	Undefined Value = &UndefinedValue{}
	Null      Value = &NullValue{}
)

// UndefinedValue represents the undefined value.
type UndefinedValue struct{}

func (u *UndefinedValue) Type() string   { return "UNDEFINED" }
func (u *UndefinedValue) String() string { return "undefined" }

// NullValue represents the null value.
type NullValue struct{}

func (n *NullValue) Type() string   { return "NULL" }
func (n *NullValue) String() string { return "null" }

// BooleanValue represents a boolean value.
type BooleanValue struct {
	Value bool
}

func (b *BooleanValue) Type() string { return "BOOLEAN" }
func (b *BooleanValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// NumberValue represents an IEEE-754 double-precision number, including NaN
// and the infinities.
type NumberValue struct {
	Value float64
}

func (n *NumberValue) Type() string   { return "NUMBER" }
func (n *NumberValue) String() string { return FormatNumber(n.Value) }

// StringValue represents a string value.
type StringValue struct {
	Value string
}

func (s *StringValue) Type() string   { return "STRING" }
func (s *StringValue) String() string { return s.Value }

// ArrayValue represents an ordered sequence of values.
type ArrayValue struct {
	Elements []Value
}

func (a *ArrayValue) Type() string { return "ARRAY" }
func (a *ArrayValue) String() string {
	var out strings.Builder
	out.WriteString("[")
	for i, el := range a.Elements {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(displayString(el))
	}
	out.WriteString("]")
	return out.String()
}

// ObjectValue represents a mapping from string keys to values. Objects have
// no inherited members; only the fields present in the map exist. Field
// order is irrelevant to semantics.
type ObjectValue struct {
	Fields map[string]Value
}

func (o *ObjectValue) Type() string { return "OBJECT" }
func (o *ObjectValue) String() string {
	keys := make([]string, 0, len(o.Fields))
	for k := range o.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out strings.Builder
	out.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(k)
		out.WriteString(": ")
		out.WriteString(displayString(o.Fields[k]))
	}
	out.WriteString("}")
	return out.String()
}

// HostFunc is the signature of an invocable host callable. recv is the
// bound receiver for member calls (nil for free calls); args are the
// evaluated call arguments in source order.
type HostFunc func(recv Value, args []Value) (Value, error)

// FunctionValue represents an opaque host callable. Expressions cannot read
// a function's properties; they can only invoke it.
type FunctionValue struct {
	Name string
	Fn   HostFunc
}

func (f *FunctionValue) Type() string { return "FUNCTION" }
func (f *FunctionValue) String() string {
	if f.Name != "" {
		return "function " + f.Name
	}
	return "function"
}

// displayString renders a value for embedding in a composite display,
// quoting strings so array and object output is unambiguous.
func displayString(v Value) string {
	if s, ok := v.(*StringValue); ok {
		return strconv.Quote(s.Value)
	}
	return v.String()
}

// isPrimitive reports whether v is one of the primitive kinds: undefined,
// null, boolean, number or string.
func isPrimitive(v Value) bool {
	switch v.(type) {
	case *UndefinedValue, *NullValue, *BooleanValue, *NumberValue, *StringValue:
		return true
	}
	return false
}

// validateValue checks that v belongs to the closed value model,
// recursively for arrays and objects. Cycles are rejected: admissible
// values are finite trees.
func validateValue(v Value) error {
	return validateValueRec(v, make(map[Value]bool))
}

func validateValueRec(v Value, seen map[Value]bool) error {
	switch val := v.(type) {
	case nil:
		return fmt.Errorf("nil is not an admissible value")
	case *UndefinedValue, *NullValue, *BooleanValue, *NumberValue, *StringValue, *FunctionValue:
		return nil
	case *ArrayValue:
		if seen[v] {
			return fmt.Errorf("value contains a cyclic reference")
		}
		seen[v] = true
		for _, el := range val.Elements {
			if err := validateValueRec(el, seen); err != nil {
				return err
			}
		}
		delete(seen, v)
		return nil
	case *ObjectValue:
		if seen[v] {
			return fmt.Errorf("value contains a cyclic reference")
		}
		seen[v] = true
		for _, field := range val.Fields {
			if err := validateValueRec(field, seen); err != nil {
				return err
			}
		}
		delete(seen, v)
		return nil
	default:
		return fmt.Errorf("value of type %T is not admissible", v)
	}
}

// NewObject creates an object value over the given fields. The map is used
// as-is, not copied.
func NewObject(fields map[string]Value) *ObjectValue {
	if fields == nil {
		fields = map[string]Value{}
	}
	return &ObjectValue{Fields: fields}
}

// NewArray creates an array value over the given elements.
func NewArray(elements ...Value) *ArrayValue {
	return &ArrayValue{Elements: elements}
}

// NewFunction wraps a host callable as a function value.
func NewFunction(name string, fn HostFunc) *FunctionValue {
	return &FunctionValue{Name: name, Fn: fn}
}

// FromGo converts native Go data into a runtime value. Supported inputs:
// nil, bool, string, all integer and float kinds, []any, map[string]any,
// HostFunc, and values that are already a Value.
func FromGo(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null, nil
	case Value:
		return val, nil
	case bool:
		return &BooleanValue{Value: val}, nil
	case string:
		return &StringValue{Value: val}, nil
	case float64:
		return &NumberValue{Value: val}, nil
	case float32:
		return &NumberValue{Value: float64(val)}, nil
	case int:
		return &NumberValue{Value: float64(val)}, nil
	case int8:
		return &NumberValue{Value: float64(val)}, nil
	case int16:
		return &NumberValue{Value: float64(val)}, nil
	case int32:
		return &NumberValue{Value: float64(val)}, nil
	case int64:
		return &NumberValue{Value: float64(val)}, nil
	case uint:
		return &NumberValue{Value: float64(val)}, nil
	case uint8:
		return &NumberValue{Value: float64(val)}, nil
	case uint16:
		return &NumberValue{Value: float64(val)}, nil
	case uint32:
		return &NumberValue{Value: float64(val)}, nil
	case uint64:
		return &NumberValue{Value: float64(val)}, nil
	case HostFunc:
		return &FunctionValue{Fn: val}, nil
	case func(recv Value, args []Value) (Value, error):
		return &FunctionValue{Fn: val}, nil
	case []any:
		elements := make([]Value, len(val))
		for i, el := range val {
			converted, err := FromGo(el)
			if err != nil {
				return nil, err
			}
			elements[i] = converted
		}
		return &ArrayValue{Elements: elements}, nil
	case map[string]any:
		fields := make(map[string]Value, len(val))
		for k, field := range val {
			converted, err := FromGo(field)
			if err != nil {
				return nil, err
			}
			fields[k] = converted
		}
		return &ObjectValue{Fields: fields}, nil
	default:
		return nil, fmt.Errorf("cannot convert Go value of type %T", v)
	}
}
