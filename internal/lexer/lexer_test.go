package lexer

import (
	"testing"

	"ryl/internal/diag"
	"ryl/internal/source"
	"ryl/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ryl", []byte(src))
	lx := New(fs.Get(id), Options{})
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
		if len(out) > 10000 {
			t.Fatalf("lexer did not terminate")
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestLexUseDeclaration(t *testing.T) {
	toks := lexAll(t, "use crate::a::{b as c, self as d};")
	want := []token.Kind{
		token.KwUse, token.KwCrate, token.ColonColon, token.Ident,
		token.ColonColon, token.LBrace, token.Ident, token.KwAs, token.Ident,
		token.Comma, token.KwSelf, token.KwAs, token.Ident, token.RBrace,
		token.Semicolon, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count: got %d want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestLexModDeclaration(t *testing.T) {
	toks := lexAll(t, "pub mod fruit;")
	want := []token.Kind{token.KwPub, token.KwMod, token.Ident, token.Semicolon, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %d want %d", i, got[i], want[i])
		}
	}
	if toks[2].Text != "fruit" {
		t.Fatalf("ident text: %q", toks[2].Text)
	}
}

func TestLexSpans(t *testing.T) {
	toks := lexAll(t, "mod a;")
	// "mod" [0,3), "a" [4,5), ";" [5,6)
	if toks[0].Span.Start != 0 || toks[0].Span.End != 3 {
		t.Fatalf("mod span: %v", toks[0].Span)
	}
	if toks[1].Span.Start != 4 || toks[1].Span.End != 5 {
		t.Fatalf("a span: %v", toks[1].Span)
	}
}

func TestLexLeadingTrivia(t *testing.T) {
	toks := lexAll(t, "// note\nmod a;")
	if len(toks[0].Leading) == 0 {
		t.Fatalf("expected leading trivia on first token")
	}
	if toks[0].Leading[0].Kind != token.TriviaLineComment {
		t.Fatalf("trivia kind: %d", toks[0].Leading[0].Kind)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ryl", []byte("\"oops"))
	bag := diag.NewBag(16)
	lx := New(fs.Get(id), Options{Reporter: &diag.BagReporter{Bag: bag}})
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid token, got %d", tok.Kind)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected LexUnterminatedString diagnostic")
	}
}

func TestLexPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ryl", []byte("mod a;"))
	lx := New(fs.Get(id), Options{})
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Span != n.Span {
		t.Fatalf("peek and next disagree: %v vs %v", p, n)
	}
}
