package diagfmt

import (
	"strings"
	"testing"

	"ryl/internal/diag"
	"ryl/internal/source"
)

func span(f source.FileID, start, end uint32) source.Span {
	return source.Span{File: f, Start: start, End: end}
}

func render(t *testing.T, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) string {
	t.Helper()
	var sb strings.Builder
	Pretty(&sb, diags, fs, opts)
	return sb.String()
}

func TestPrettyDuplicateAcrossLines(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.AddVirtual("main.ryl", []byte("mod a;\nmod a;\n"))

	prev := span(f, 4, 5)     // `a` в первой строке
	primary := span(f, 11, 12) // `a` во второй
	d := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ResDuplicateName,
		Message:  "the name `a` is defined multiple times",
		Primary:  primary,
		Labels: []diag.Label{
			{Span: prev, Msg: "previous definition of the name `a` here"},
			{Span: primary, Msg: "`a` redefined here"},
		},
		Notes: []string{"`a` must be defined only once in the type namespace of this module"},
	}

	got := render(t, []diag.Diagnostic{d}, fs, PrettyOpts{ShowNotes: true})
	want := "error[RES3001]: the name `a` is defined multiple times\n" +
		" --> main.ryl:2:5\n" +
		"  |\n" +
		"1 | mod a;\n" +
		"  |     - previous definition of the name `a` here\n" +
		"2 | mod a;\n" +
		"  |     ^ `a` redefined here\n" +
		"  |\n" +
		"  = note: `a` must be defined only once in the type namespace of this module\n" +
		"\n"
	if got != want {
		t.Fatalf("output mismatch:\n--- got ---\n%s--- want ---\n%s", got, want)
	}
}

func TestPrettyStackedLabelsOnOneLine(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.AddVirtual("main.ryl", []byte("use a::{b, b};\n"))

	first := span(f, 8, 9)
	primary := span(f, 11, 12)
	d := diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.ResRedundantImport,
		Message:  "the name `b` is imported multiple times",
		Primary:  primary,
		Labels: []diag.Label{
			{Span: first, Msg: "`b` imported here"},
			{Span: primary, Msg: "`b` reimported here"},
		},
	}

	got := render(t, []diag.Diagnostic{d}, fs, PrettyOpts{})
	// код у предупреждений опускается; ранняя метка складывается под коннектором
	want := "warning: the name `b` is imported multiple times\n" +
		" --> main.ryl:1:12\n" +
		"  |\n" +
		"1 | use a::{b, b};\n" +
		"  |         -  ^ `b` reimported here\n" +
		"  |         |\n" +
		"  |         `b` imported here\n" +
		"\n"
	if got != want {
		t.Fatalf("output mismatch:\n--- got ---\n%s--- want ---\n%s", got, want)
	}
}

func TestPrettyEllipsisBetweenDistantLines(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.AddVirtual("main.ryl", []byte("mod a;\n\nmod a;\n"))

	prev := span(f, 4, 5)
	primary := span(f, 12, 13)
	d := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ResDuplicateName,
		Message:  "the name `a` is defined multiple times",
		Primary:  primary,
		Labels: []diag.Label{
			{Span: prev, Msg: "previous definition of the name `a` here"},
			{Span: primary, Msg: "`a` redefined here"},
		},
	}

	got := render(t, []diag.Diagnostic{d}, fs, PrettyOpts{})
	want := "error[RES3001]: the name `a` is defined multiple times\n" +
		" --> main.ryl:3:5\n" +
		"  |\n" +
		"1 | mod a;\n" +
		"  |     - previous definition of the name `a` here\n" +
		"...\n" +
		"3 | mod a;\n" +
		"  |     ^ `a` redefined here\n" +
		"\n"
	if got != want {
		t.Fatalf("output mismatch:\n--- got ---\n%s--- want ---\n%s", got, want)
	}
}

func TestPrettyCrossFileLabels(t *testing.T) {
	fs := source.NewFileSet()
	main := fs.AddVirtual("main.ryl", []byte("use child::S;\n"))
	child := fs.AddVirtual("child.ryl", []byte("struct S;\n"))

	primary := span(main, 11, 12)
	decl := span(child, 7, 8)
	d := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ResNotVisible,
		Message:  "struct `S` is private",
		Primary:  primary,
		Labels: []diag.Label{
			{Span: primary, Msg: "private struct"},
			{Span: decl, Msg: "`S` declared here"},
		},
	}

	got := render(t, []diag.Diagnostic{d}, fs, PrettyOpts{})
	want := "error[RES3005]: struct `S` is private\n" +
		" --> main.ryl:1:12\n" +
		"  |\n" +
		"1 | use child::S;\n" +
		"  |            ^ private struct\n" +
		" ::: child.ryl:1:8\n" +
		"  |\n" +
		"1 | struct S;\n" +
		"  |        - `S` declared here\n" +
		"\n"
	if got != want {
		t.Fatalf("output mismatch:\n--- got ---\n%s--- want ---\n%s", got, want)
	}
}

func TestPrettyIsReproducible(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.AddVirtual("main.ryl", []byte("mod a;\nmod a;\n"))
	d := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ResDuplicateName,
		Message:  "the name `a` is defined multiple times",
		Primary:  span(f, 11, 12),
		Labels: []diag.Label{
			{Span: span(f, 4, 5), Msg: "previous definition of the name `a` here"},
			{Span: span(f, 11, 12), Msg: "`a` redefined here"},
		},
	}
	opts := PrettyOpts{ShowNotes: true}
	a := render(t, []diag.Diagnostic{d}, fs, opts)
	b := render(t, []diag.Diagnostic{d}, fs, opts)
	if a != b {
		t.Fatalf("renderer must be a pure function of its input")
	}
}

func TestRenderLabelRows(t *testing.T) {
	pal := newPalette(false)
	prim := pal.severityPaint(diag.SevError)

	rows := renderLabelRows([]lineLabel{
		{startCol: 4, width: 3, msg: "first", primary: false},
		{startCol: 10, width: 2, msg: "second", primary: false},
		{startCol: 15, width: 1, msg: "third", primary: true},
	}, pal, prim)

	want := []string{
		"    ---   --   ^ third",
		"    |     |",
		"    |     second",
		"    first",
	}
	if len(rows) != len(want) {
		t.Fatalf("want %d rows, got %d: %q", len(want), len(rows), rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d mismatch:\ngot  %q\nwant %q", i, rows[i], want[i])
		}
	}
}

func TestPrettyWideRunesAlign(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.AddVirtual("main.ryl", []byte("mod модуль;\n"))

	// `модуль` занимает 12 байт, но 6 экранных колонок
	primary := span(f, 4, 16)
	d := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ResDuplicateName,
		Message:  "the name `модуль` is defined multiple times",
		Primary:  primary,
		Labels:   []diag.Label{{Span: primary, Msg: "redefined"}},
	}

	got := render(t, []diag.Diagnostic{d}, fs, PrettyOpts{})
	if !strings.Contains(got, "  |     ^^^^^^ redefined\n") {
		t.Fatalf("wide runes must underline by display width, got:\n%s", got)
	}
}
