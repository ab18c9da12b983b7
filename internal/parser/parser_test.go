package parser

import (
	"testing"

	"github.com/cwbudde/go-exp/internal/ast"
	"github.com/cwbudde/go-exp/internal/lexer"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// parseOK parses input and fails the test on any error.
func parseOK(t *testing.T, input string) ast.Expression {
	t.Helper()
	p := New(lexer.New(input))
	expr := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse error for %q: %v", input, errs[0])
	}
	if expr == nil {
		t.Fatalf("Parse returned nil for %q", input)
	}
	return expr
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"1 + 2 + 3", "((1 + 2) + 3)"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"2 * 3 % 2", "((2 * 3) % 2)"},
		{"a + b / c", "(a + (b / c))"},
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"!!a", "(!(!a))"},
		{"+1", "(+1)"},
		{"a < b == c > d", "((a < b) == (c > d))"},
		{"a <= b != c >= d", "((a <= b) != (c >= d))"},
		{"1 + 2 < 3 * 4", "((1 + 2) < (3 * 4))"},
		{"a && b || c && d", "((a && b) || (c && d))"},
		{"a == b && c != d", "((a == b) && (c != d))"},
		{"a || b == c", "(a || (b == c))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"-(1 + 2)", "(-(1 + 2))"},
		{"a ? b : c", "(a ? b : c)"},
		{"a ? b : c ? d : e", "(a ? b : (c ? d : e))"},
		{"a ? b ? c : d : e", "(a ? (b ? c : d) : e)"},
		{"a || b ? c : d", "((a || b) ? c : d)"},
		{"a ? b + 1 : c * 2", "(a ? (b + 1) : (c * 2))"},
		{"a.b.c", "((a.b).c)"},
		{"a.b(1)", "(a.b)(1)"},
		{"f(1)(2)", "f(1)(2)"},
		{"f(a + b, c)", "f((a + b), c)"},
		{"-a.b", "(-(a.b))"},
		{"!f(x)", "(!f(x))"},
		{"a.b * c", "((a.b) * c)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr := parseOK(t, tt.input)
			if got := expr.String(); got != tt.expected {
				t.Errorf("wrong parse.\ninput:    %s\nexpected: %s\ngot:      %s", tt.input, tt.expected, got)
			}
		})
	}
}

func TestArrayLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"[]", "[]"},
		{"[1]", "[1]"},
		{"[1, 2, 3]", "[1, 2, 3]"},
		{"[1 + 2, a, 'x']", `[(1 + 2), a, "x"]`},
		{"[[1, 2], [3]]", "[[1, 2], [3]]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr := parseOK(t, tt.input)
			if got := expr.String(); got != tt.expected {
				t.Errorf("wrong parse: expected %s, got %s", tt.expected, got)
			}
		})
	}
}

// Array literals preserve element order and count.
func TestArrayElementOrder(t *testing.T) {
	expr := parseOK(t, "[5, 4, 3, 2, 1]")
	arr, ok := expr.(*ast.ArrayLiteral)
	if !ok {
		t.Fatalf("expected *ast.ArrayLiteral, got %T", expr)
	}
	if len(arr.Elements) != 5 {
		t.Fatalf("expected 5 elements, got %d", len(arr.Elements))
	}
	for i, want := range []float64{5, 4, 3, 2, 1} {
		num, ok := arr.Elements[i].(*ast.NumberLiteral)
		if !ok {
			t.Fatalf("element %d: expected *ast.NumberLiteral, got %T", i, arr.Elements[i])
		}
		if num.Value != want {
			t.Errorf("element %d: expected %v, got %v", i, want, num.Value)
		}
	}
}

func TestLiteralValues(t *testing.T) {
	tests := []struct {
		input string
		check func(t *testing.T, expr ast.Expression)
	}{
		{"42", func(t *testing.T, expr ast.Expression) {
			n := expr.(*ast.NumberLiteral)
			if n.Value != 42 {
				t.Errorf("value wrong: %v", n.Value)
			}
		}},
		{"3.14", func(t *testing.T, expr ast.Expression) {
			n := expr.(*ast.NumberLiteral)
			if n.Value != 3.14 {
				t.Errorf("value wrong: %v", n.Value)
			}
		}},
		{".5", func(t *testing.T, expr ast.Expression) {
			n := expr.(*ast.NumberLiteral)
			if n.Value != 0.5 {
				t.Errorf("value wrong: %v", n.Value)
			}
		}},
		{"'hi\\n'", func(t *testing.T, expr ast.Expression) {
			s := expr.(*ast.StringLiteral)
			if s.Value != "hi\n" {
				t.Errorf("value wrong: %q", s.Value)
			}
		}},
		{"true", func(t *testing.T, expr ast.Expression) {
			b := expr.(*ast.BooleanLiteral)
			if !b.Value {
				t.Error("value wrong")
			}
		}},
		{"false", func(t *testing.T, expr ast.Expression) {
			b := expr.(*ast.BooleanLiteral)
			if b.Value {
				t.Error("value wrong")
			}
		}},
		{"null", func(t *testing.T, expr ast.Expression) {
			if _, ok := expr.(*ast.NullLiteral); !ok {
				t.Errorf("expected *ast.NullLiteral, got %T", expr)
			}
		}},
		{"foo", func(t *testing.T, expr ast.Expression) {
			id := expr.(*ast.Identifier)
			if id.Value != "foo" {
				t.Errorf("value wrong: %q", id.Value)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tt.check(t, parseOK(t, tt.input))
		})
	}
}

// Spans cover the expression from its first character up to, but not
// including, the first unconsumed character; trivia on either side is
// excluded.
func TestSpans(t *testing.T) {
	tests := []struct {
		input         string
		expectedStart int
		expectedEnd   int
	}{
		{"1 + 2", 0, 5},
		{"  1 + 2  ", 2, 7},
		{"1 + 2  // trailing", 0, 5},
		{"/* lead */ x", 11, 12},
		{"(1 + 2)", 0, 7},
		{"[1, 2]", 0, 6},
		{"f(a, b)", 0, 7},
		{"user.plan", 0, 9},
		{"a ? b : c", 0, 9},
		{"x |> f", 0, 6},
		{"'héllo'", 0, 8},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr := parseOK(t, tt.input)
			span := ast.SpanOf(expr)
			if span.Start != tt.expectedStart || span.End != tt.expectedEnd {
				t.Errorf("span wrong: got [%d,%d), want [%d,%d)",
					span.Start, span.End, tt.expectedStart, tt.expectedEnd)
			}
		})
	}
}

func TestInnerSpans(t *testing.T) {
	expr := parseOK(t, "ab + cde")
	binary := expr.(*ast.BinaryExpression)

	left := ast.SpanOf(binary.Left)
	if left.Start != 0 || left.End != 2 {
		t.Errorf("left span wrong: got [%d,%d), want [0,2)", left.Start, left.End)
	}
	right := ast.SpanOf(binary.Right)
	if right.Start != 5 || right.End != 8 {
		t.Errorf("right span wrong: got [%d,%d), want [5,8)", right.Start, right.End)
	}
}

// Structural comparison of a full tree, ignoring position bookkeeping.
func TestStructure(t *testing.T) {
	expr := parseOK(t, "user.age >= 18 && std.len(name) > 0")

	want := &ast.BinaryExpression{
		Operator: "&&",
		Left: &ast.BinaryExpression{
			Operator: ">=",
			Left: &ast.MemberExpression{
				Object:   &ast.Identifier{Value: "user"},
				Property: "age",
			},
			Right: &ast.NumberLiteral{Value: 18},
		},
		Right: &ast.BinaryExpression{
			Operator: ">",
			Left: &ast.CallExpression{
				Callee: &ast.MemberExpression{
					Object:   &ast.Identifier{Value: "std"},
					Property: "len",
				},
				Arguments: []ast.Expression{
					&ast.Identifier{Value: "name"},
				},
			},
			Right: &ast.NumberLiteral{Value: 0},
		},
	}

	if diff := cmp.Diff(want, expr, cmpopts.IgnoreTypes(ast.BaseNode{})); diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}
}
