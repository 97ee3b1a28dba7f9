package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		ident string
		kind  Kind
		ok    bool
	}{
		{"mod", KwMod, true},
		{"use", KwUse, true},
		{"pub", KwPub, true},
		{"crate", KwCrate, true},
		{"super", KwSuper, true},
		{"self", KwSelf, true},
		{"struct", KwStruct, true},
		{"enum", KwEnum, true},
		{"fn", KwFn, true},
		{"const", KwConst, true},
		{"type", KwType, true},
		{"as", KwAs, true},
		{"Mod", 0, false},
		{"USE", 0, false},
		{"modx", 0, false},
	}
	for _, c := range cases {
		k, ok := LookupKeyword(c.ident)
		if ok != c.ok {
			t.Fatalf("%q: ok=%v want %v", c.ident, ok, c.ok)
		}
		if ok && k != c.kind {
			t.Fatalf("%q: kind=%d want %d", c.ident, k, c.kind)
		}
	}
}

func TestClassifiers(t *testing.T) {
	if !(Token{Kind: KwCrate}).IsPathMarker() {
		t.Fatalf("crate must be a path marker")
	}
	if (Token{Kind: KwMod}).IsPathMarker() {
		t.Fatalf("mod is not a path marker")
	}
	if !(Token{Kind: ColonColon}).IsPunctOrOp() {
		t.Fatalf(":: is punctuation")
	}
	if !(Token{Kind: KwUse}).IsKeyword() {
		t.Fatalf("use is a keyword")
	}
	if !(Token{Kind: StringLit}).IsLiteral() {
		t.Fatalf("string literal is a literal")
	}
}
