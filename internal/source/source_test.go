package source

import (
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	in := []byte("a\r\nb\rc\r\n")
	out, changed := normalizeCRLF(in)
	if !changed {
		t.Fatalf("expected changed=true")
	}
	if string(out) != "a\nb\rc\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	in = []byte("no carriage returns")
	out, changed = normalizeCRLF(in)
	if changed {
		t.Fatalf("expected changed=false")
	}
	if string(out) != string(in) {
		t.Fatalf("content must be unchanged")
	}
}

func TestRemoveBOM(t *testing.T) {
	in := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	out, had := removeBOM(in)
	if !had || string(out) != "hi" {
		t.Fatalf("BOM not stripped: %q", out)
	}

	out, had = removeBOM([]byte("hi"))
	if had || string(out) != "hi" {
		t.Fatalf("short content mangled: %q", out)
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("one\ntwo\nthree")
	idx := buildLineIndex(content)

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{6, 2, 3},
		{8, 3, 1},
		{12, 3, 5},
	}
	for _, c := range cases {
		lc := toLineCol(idx, c.off)
		if lc.Line != c.line || lc.Col != c.col {
			t.Fatalf("off %d: got %d:%d want %d:%d", c.off, lc.Line, lc.Col, c.line, c.col)
		}
	}
}

func TestFileSetResolveAndGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ryl", []byte("mod a;\nuse a::b;\n"))

	start, end := fs.Resolve(Span{File: id, Start: 7, End: 10})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("start: got %d:%d", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 4 {
		t.Fatalf("end: got %d:%d", end.Line, end.Col)
	}

	f := fs.Get(id)
	if got := f.GetLine(1); got != "mod a;" {
		t.Fatalf("line 1: %q", got)
	}
	if got := f.GetLine(2); got != "use a::b;" {
		t.Fatalf("line 2: %q", got)
	}
	if got := f.GetLine(5); got != "" {
		t.Fatalf("line 5 should be empty, got %q", got)
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	a := in.Intern("alpha")
	b := in.Intern("beta")
	if a == b {
		t.Fatalf("distinct strings must have distinct IDs")
	}
	if in.Intern("alpha") != a {
		t.Fatalf("interning twice must return the same ID")
	}
	if got := in.MustLookup(a); got != "alpha" {
		t.Fatalf("lookup: %q", got)
	}
	if s, ok := in.Lookup(NoStringID); !ok || s != "" {
		t.Fatalf("NoStringID must map to empty string")
	}
}
