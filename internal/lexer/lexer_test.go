package lexer

import (
	"testing"

	"github.com/papagiannakis/glossa/internal/token"
)

func TestNextTokenKeywordsAndPunctuation(t *testing.T) {
	input := `ΠΡΟΓΡΑΜΜΑ Τεστ
ΜΕΤΑΒΛΗΤΕΣ
  ΑΚΕΡΑΙΕΣ: χ
ΑΡΧΗ
  χ <- 1 + 2 * 3
  ΑΝ χ = 3 ΤΟΤΕ
    ΓΡΑΨΕ "γεια"
  ΤΕΛΟΣ_ΑΝ
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ`

	tokens, err := Lex(input)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}

	want := []token.Kind{
		token.PROGRAM, token.IDENT,
		token.VARS,
		token.TYPE_INT, token.COLON, token.IDENT,
		token.BEGIN,
		token.IDENT, token.ASSIGN, token.NUMBER, token.PLUS, token.NUMBER, token.MUL, token.NUMBER,
		token.IF, token.IDENT, token.EQ, token.NUMBER, token.THEN,
		token.WRITE, token.STRING,
		token.END_IF,
		token.END_PROGRAM,
		token.EOF,
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s (%v)", i, tokens[i].Kind, k, tokens[i])
		}
	}
}

func TestNextTokenMultiCharOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"<-", token.ASSIGN},
		{"<=", token.LE},
		{">=", token.GE},
		{"<>", token.NE},
		{"<", token.LT},
		{">", token.GT},
		{"=", token.EQ},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokens[0].Kind != tt.kind {
				t.Errorf("got %s, want %s", tokens[0].Kind, tt.kind)
			}
		})
	}
}

func TestNextTokenNumbers(t *testing.T) {
	tokens, err := Lex("42 3.14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Kind != token.NUMBER {
		t.Fatalf("got %s", tokens[0].Kind)
	}
	if v, ok := tokens[0].Value.(int64); !ok || v != 42 {
		t.Errorf("got %#v, want int64(42)", tokens[0].Value)
	}
	if v, ok := tokens[1].Value.(float64); !ok || v != 3.14 {
		t.Errorf("got %#v, want float64(3.14)", tokens[1].Value)
	}
}

func TestNextTokenStringEscapes(t *testing.T) {
	tokens, err := Lex(`"γεια \"σου\""`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Value != `γεια "σου"` {
		t.Errorf("got %q", tokens[0].Value)
	}
}

func TestNextTokenUnterminatedString(t *testing.T) {
	_, err := Lex(`"γεια`)
	if err == nil {
		t.Fatal("expected an error for an unterminated string")
	}
}

func TestNextTokenCommentSkipped(t *testing.T) {
	tokens, err := Lex("χ ! this is a comment\nψ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 3 { // IDENT, IDENT, EOF
		t.Fatalf("got %d tokens: %v", len(tokens), tokens)
	}
	if tokens[1].Line != 2 {
		t.Errorf("got line %d, want 2", tokens[1].Line)
	}
}

func TestNextTokenBooleanLiterals(t *testing.T) {
	tokens, err := Lex("ΑΛΗΘΗΣ ΨΕΥΔΗΣ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Kind != token.TRUE || tokens[0].Value != true {
		t.Errorf("got %v", tokens[0])
	}
	if tokens[1].Kind != token.FALSE || tokens[1].Value != false {
		t.Errorf("got %v", tokens[1])
	}
}
