package lexer

import (
	"testing"

	"github.com/cwbudde/go-exp/internal/token"
)

// collect scans all tokens up to and including EOF.
func collect(t *testing.T, input string) []token.Token {
	t.Helper()
	l := New(input)
	var tokens []token.Token
	for i := 0; i < 1000; i++ {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			return tokens
		}
	}
	t.Fatalf("lexer did not terminate for input %q", input)
	return nil
}

func TestNextTokenBasic(t *testing.T) {
	input := `1 + 2 * 3 - x / y % 2`

	expected := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.NUMBER, "1"},
		{token.PLUS, "+"},
		{token.NUMBER, "2"},
		{token.ASTERISK, "*"},
		{token.NUMBER, "3"},
		{token.MINUS, "-"},
		{token.IDENT, "x"},
		{token.SLASH, "/"},
		{token.IDENT, "y"},
		{token.PERCENT, "%"},
		{token.NUMBER, "2"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range expected {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `== != < <= > >= && || |> ! ? : . , ( ) [ ]`

	expected := []token.TokenType{
		token.EQ, token.NOT_EQ, token.LESS, token.LESS_EQ,
		token.GREATER, token.GREATER_EQ, token.AND, token.OR,
		token.PIPE, token.BANG, token.QUESTION, token.COLON,
		token.DOT, token.COMMA, token.LPAREN, token.RPAREN,
		token.LBRACK, token.RBRACK, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, want, tok.Type)
		}
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input        string
		expectedType token.TokenType
	}{
		{"true", token.TRUE},
		{"false", token.FALSE},
		{"null", token.NULL},
		{"truely", token.IDENT},
		{"nullable", token.IDENT},
		{"True", token.IDENT},
		{"_true", token.IDENT},
		{"true1", token.IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			tok := l.NextToken()
			if tok.Type != tt.expectedType {
				t.Fatalf("tokentype wrong. expected=%q, got=%q", tt.expectedType, tok.Type)
			}
			if tok.Literal != tt.input {
				t.Fatalf("literal wrong. expected=%q, got=%q", tt.input, tok.Literal)
			}
		})
	}
}

func TestTokenOffsets(t *testing.T) {
	input := "  foo + 12 "

	l := New(input)

	foo := l.NextToken()
	if foo.Pos.Offset != 2 || foo.End != 5 {
		t.Errorf("foo span wrong: got [%d,%d), want [2,5)", foo.Pos.Offset, foo.End)
	}

	plus := l.NextToken()
	if plus.Pos.Offset != 6 || plus.End != 7 {
		t.Errorf("plus span wrong: got [%d,%d), want [6,7)", plus.Pos.Offset, plus.End)
	}

	num := l.NextToken()
	if num.Pos.Offset != 8 || num.End != 10 {
		t.Errorf("number span wrong: got [%d,%d), want [8,10)", num.Pos.Offset, num.End)
	}

	eof := l.NextToken()
	if eof.Type != token.EOF {
		t.Fatalf("expected EOF, got %q", eof.Type)
	}
	if eof.Pos.Offset != len(input) {
		t.Errorf("EOF offset wrong: got %d, want %d", eof.Pos.Offset, len(input))
	}
}

func TestLineAndColumn(t *testing.T) {
	input := "a +\n  b"

	l := New(input)

	a := l.NextToken()
	if a.Pos.Line != 1 || a.Pos.Column != 1 {
		t.Errorf("a position wrong: got %d:%d, want 1:1", a.Pos.Line, a.Pos.Column)
	}

	l.NextToken() // +

	b := l.NextToken()
	if b.Pos.Line != 2 || b.Pos.Column != 3 {
		t.Errorf("b position wrong: got %d:%d, want 2:3", b.Pos.Line, b.Pos.Column)
	}
}

func TestIllegalCharacters(t *testing.T) {
	tests := []struct {
		input         string
		expectedIndex int
	}{
		{"#", 0},
		{"1 @ 2", 2},
		{"a = b", 2},
		{"a & b", 2},
		{"a | b", 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := collect(t, tt.input)
			last := tokens[len(tokens)-1]
			if last.Type != token.ILLEGAL {
				t.Fatalf("expected ILLEGAL token, got %q", last.Type)
			}
			if last.Pos.Offset != tt.expectedIndex {
				t.Errorf("error index wrong: got %d, want %d", last.Pos.Offset, tt.expectedIndex)
			}
			l := New(tt.input)
			for {
				tok := l.NextToken()
				if tok.Type == token.ILLEGAL || tok.Type == token.EOF {
					break
				}
			}
			if len(l.Errors()) == 0 {
				t.Error("expected a recorded lexer error")
			}
		})
	}
}

func TestBOMStripping(t *testing.T) {
	l := New("\xEF\xBB\xBF42")
	tok := l.NextToken()
	if tok.Type != token.NUMBER || tok.Literal != "42" {
		t.Fatalf("expected NUMBER 42 after BOM, got %q %q", tok.Type, tok.Literal)
	}
}
