package lexer

import (
	"testing"

	"github.com/quill-lang/quill/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeOperatorsAndPunctuation(t *testing.T) {
	src := `+ - ! * / = ( ) { } [ ] < > ;`
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{
		token.PLUS, token.MINUS, token.BANG, token.ASTERISK, token.SLASH,
		token.ASSIGN, token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACKET, token.RBRACKET, token.LT, token.GT, token.SEMICOLON,
		token.EOF,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenizeCompoundOperators(t *testing.T) {
	src := `== != <= >= && ||`
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{token.EQ, token.NOT_EQ, token.LT_EQ, token.GT_EQ, token.AND, token.OR, token.EOF}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenizeKeywordsAreCaseInsensitive(t *testing.T) {
	src := `LET x = TRUE; If FOR Else Return Function FALSE`
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{
		token.LET, token.IDENTIFIER, token.ASSIGN, token.TRUE, token.SEMICOLON,
		token.IF, token.FOR, token.ELSE, token.RETURN, token.FUNCTION, token.FALSE,
		token.EOF,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
	if tokens[0].Literal != "LET" {
		t.Errorf("literal should preserve source casing, got %q", tokens[0].Literal)
	}
}

func TestTokenizeStringLiteral(t *testing.T) {
	src := `"hello = world; {}" next`
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Kind != token.STRING || tokens[0].Literal != "hello = world; {}" {
		t.Fatalf("got %+v", tokens[0])
	}
	if tokens[1].Kind != token.IDENTIFIER || tokens[1].Literal != "next" {
		t.Fatalf("got %+v", tokens[1])
	}
}

func TestTokenizeNumberAndDecimal(t *testing.T) {
	tokens, err := Tokenize(`42 3.14`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Kind != token.NUMBER || tokens[0].Literal != "42" {
		t.Fatalf("got %+v", tokens[0])
	}
	if tokens[1].Kind != token.NUMBER || tokens[1].Literal != "3.14" {
		t.Fatalf("got %+v", tokens[1])
	}
}

func TestTokenizeMalformedNumericIsFatal(t *testing.T) {
	_, err := Tokenize(`1.2.3`)
	if err == nil {
		t.Fatal("expected a lex error for a second '.' in a numeric literal")
	}
	var lexErr *LexError
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("expected *LexError, got %T", err)
	}
	lexErr = err.(*LexError)
	if lexErr.Line != 0 {
		t.Errorf("expected line 0, got %d", lexErr.Line)
	}
}

func TestTokenizeMalformedNumericNonDotTrailer(t *testing.T) {
	_, err := Tokenize(`1a`)
	if err == nil {
		t.Fatal("expected a lex error for a letter immediately after a digit run")
	}
}

func TestLineNumbersAreMonotonic(t *testing.T) {
	src := "let a = 1;\nlet b = 2;\nlet c = 3;"
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := -1
	for _, tok := range tokens {
		if tok.Line < last {
			t.Fatalf("line numbers not monotonic: saw %d after %d", tok.Line, last)
		}
		last = tok.Line
	}
	if last != 2 {
		t.Fatalf("expected final line 2, got %d", last)
	}
}

func TestImplicitMultiplicationLexesAsTwoFactors(t *testing.T) {
	// The lexer itself has no notion of implicit multiplication (that is
	// a parser-level concern); it just emits the tokens as written.
	tokens, err := Tokenize(`2(x+1)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{token.NUMBER, token.LPAREN, token.IDENTIFIER, token.PLUS, token.NUMBER, token.RPAREN, token.EOF}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}
