package diag

import (
	"testing"

	"ryl/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 3; i++ {
		added := bag.Add(Diagnostic{Severity: SevError, Code: ResDuplicateName})
		if i < 2 && !added {
			t.Fatalf("diagnostic %d must fit", i)
		}
		if i == 2 && added {
			t.Fatalf("limit must reject diagnostic %d", i)
		}
	}
	if bag.Len() != 2 {
		t.Fatalf("len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(8)
	bag.Add(Diagnostic{Severity: SevWarning, Code: ResRedundantImport})
	if bag.HasErrors() {
		t.Fatalf("warning alone must not count as error")
	}
	if !bag.HasWarnings() {
		t.Fatalf("expected HasWarnings")
	}
	bag.Add(Diagnostic{Severity: SevError, Code: ResUnresolvedImport})
	if !bag.HasErrors() {
		t.Fatalf("expected HasErrors")
	}
}

func TestBagSortStable(t *testing.T) {
	bag := NewBag(8)
	bag.Add(Diagnostic{Severity: SevWarning, Code: ResRedundantImport, Primary: source.Span{File: 0, Start: 30, End: 31}})
	bag.Add(Diagnostic{Severity: SevError, Code: ResDuplicateName, Primary: source.Span{File: 0, Start: 10, End: 11}})
	bag.Sort()
	items := bag.Items()
	if items[0].Code != ResDuplicateName {
		t.Fatalf("sort order wrong: first code %d", items[0].Code)
	}
}

func TestReportBuilderEmitOnce(t *testing.T) {
	bag := NewBag(8)
	r := &BagReporter{Bag: bag}
	b := ReportError(r, ResDuplicateName, source.Span{}, "the name `a` is defined multiple times").
		WithLabel(source.Span{Start: 1, End: 2}, "previous definition of the name `a` here").
		WithNote("rename one of the declarations")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("builder must emit exactly once, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Labels) != 1 || len(d.Notes) != 1 {
		t.Fatalf("labels/notes lost: %+v", d)
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		id   string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynExpectSemicolon, "SYN2003"},
		{ResDuplicateName, "RES3001"},
		{IOLoadFileError, "IO4001"},
		{ModFileNotFound, "MOD5001"},
		{UnknownCode, "E0000"},
	}
	for _, c := range cases {
		if got := c.code.ID(); got != c.id {
			t.Fatalf("code %d: ID %q, want %q", c.code, got, c.id)
		}
	}
}

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.ryl", []byte("mod a;\nmod a;\n"))
	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     ResDuplicateName,
			Message:  "the name `a` is defined multiple times",
			Primary:  source.Span{File: id, Start: 11, End: 12},
		},
	}
	got := FormatShortDiagnostics(diags, fs, false)
	want := "error RES3001 main.ryl:2:5 the name `a` is defined multiple times"
	if got != want {
		t.Fatalf("short format:\n got %q\nwant %q", got, want)
	}
}
