package interp

// looseEquals implements the == operator's safe loose equality.
//
// For primitive pairs it follows conventional loose equality: identical
// primitives are equal, null equals undefined, booleans coerce to numbers,
// and mixed string/number pairs compare numerically. When either side is
// non-primitive (object, array, function) the comparison is reference
// identity only: no conversion-to-primitive is attempted and no host method
// is ever invoked.
func looseEquals(a, b Value) bool {
	if !isPrimitive(a) || !isPrimitive(b) {
		return a == b
	}

	switch av := a.(type) {
	case *UndefinedValue, *NullValue:
		switch b.(type) {
		case *UndefinedValue, *NullValue:
			return true
		}
		return false
	case *BooleanValue:
		return looseEquals(&NumberValue{Value: boolToNumber(av.Value)}, b)
	case *NumberValue:
		switch bv := b.(type) {
		case *NumberValue:
			return av.Value == bv.Value
		case *StringValue:
			return av.Value == parseNumericString(bv.Value)
		case *BooleanValue:
			return av.Value == boolToNumber(bv.Value)
		}
		return false
	case *StringValue:
		switch bv := b.(type) {
		case *StringValue:
			return av.Value == bv.Value
		case *NumberValue:
			return parseNumericString(av.Value) == bv.Value
		case *BooleanValue:
			return parseNumericString(av.Value) == boolToNumber(bv.Value)
		}
		return false
	}
	return false
}

// strictEquals is same-kind, same-value equality for primitives and
// reference identity for everything else. std.includes uses it for array
// membership.
func strictEquals(a, b Value) bool {
	switch av := a.(type) {
	case *UndefinedValue:
		_, ok := b.(*UndefinedValue)
		return ok
	case *NullValue:
		_, ok := b.(*NullValue)
		return ok
	case *BooleanValue:
		bv, ok := b.(*BooleanValue)
		return ok && av.Value == bv.Value
	case *NumberValue:
		bv, ok := b.(*NumberValue)
		return ok && av.Value == bv.Value
	case *StringValue:
		bv, ok := b.(*StringValue)
		return ok && av.Value == bv.Value
	default:
		return a == b
	}
}

func boolToNumber(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
