package lexer

import (
	"testing"

	"github.com/cwbudde/go-exp/internal/token"
)

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedLiteral string
	}{
		{"integer", "123", "123"},
		{"zero", "0", "0"},
		{"decimal", "3.14", "3.14"},
		{"leading dot", ".5", ".5"},
		{"trailing zeros", "10.00", "10.00"},
		{"long integer", "1000000", "1000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			tok := l.NextToken()
			if tok.Type != token.NUMBER {
				t.Fatalf("tokentype wrong. expected=%q, got=%q", token.NUMBER, tok.Type)
			}
			if tok.Literal != tt.expectedLiteral {
				t.Fatalf("literal wrong. expected=%q, got=%q", tt.expectedLiteral, tok.Literal)
			}
		})
	}
}

// A '.' not followed by a digit is member access, not part of the number.
func TestNumberFollowedByDot(t *testing.T) {
	l := New("1.foo")

	tok := l.NextToken()
	if tok.Type != token.NUMBER || tok.Literal != "1" {
		t.Fatalf("expected NUMBER \"1\", got %q %q", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.DOT {
		t.Fatalf("expected DOT, got %q", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "foo" {
		t.Fatalf("expected IDENT \"foo\", got %q %q", tok.Type, tok.Literal)
	}
}

// Signs are not part of the number token; they lex as operators.
func TestSignsAreSeparateTokens(t *testing.T) {
	l := New("-1")

	tok := l.NextToken()
	if tok.Type != token.MINUS {
		t.Fatalf("expected MINUS, got %q", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != token.NUMBER || tok.Literal != "1" {
		t.Fatalf("expected NUMBER \"1\", got %q %q", tok.Type, tok.Literal)
	}
}
