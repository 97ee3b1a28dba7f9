package parser

import (
	"testing"

	"ryl/internal/ast"
	"ryl/internal/diag"
	"ryl/internal/lexer"
	"ryl/internal/source"
)

func parseSnippet(t *testing.T, src string) (*ast.Builder, ast.FileID, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ryl", []byte(src))
	bag := diag.NewBag(64)
	builder := ast.NewBuilder(ast.Hints{})
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	res := ParseFile(fs, lx, builder, Options{Reporter: &diag.BagReporter{Bag: bag}})
	return builder, res.File, bag
}

func fileItems(b *ast.Builder, f ast.FileID) []ast.ItemID {
	return b.Files.Get(f).Items
}

func TestParseModDecls(t *testing.T) {
	b, f, bag := parseSnippet(t, "mod a;\npub mod b { mod c; }\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	items := fileItems(b, f)
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %d", len(items))
	}

	m0, ok := b.Items.Mod(items[0])
	if !ok || m0.HasBody {
		t.Fatalf("first item must be bodyless mod")
	}
	if b.StringsInterner.MustLookup(m0.Name) != "a" {
		t.Fatalf("mod name: %q", b.StringsInterner.MustLookup(m0.Name))
	}

	m1, ok := b.Items.Mod(items[1])
	if !ok || !m1.HasBody || m1.Visibility != ast.VisPublic {
		t.Fatalf("second item must be pub mod with body")
	}
	if len(m1.Items) != 1 {
		t.Fatalf("inline mod must hold one nested item")
	}
	if _, ok := b.Items.Mod(m1.Items[0]); !ok {
		t.Fatalf("nested item must be a mod")
	}
}

func TestParseUseGroup(t *testing.T) {
	b, f, bag := parseSnippet(t, "use a::{b, c as d, self as e};")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	items := fileItems(b, f)
	if len(items) != 1 {
		t.Fatalf("want 1 item, got %d", len(items))
	}
	u, ok := b.Items.Use(items[0])
	if !ok {
		t.Fatalf("item must be a use")
	}
	root := b.Items.UseTree(u.Root)
	if root.Kind != ast.UseTreePath || root.Seg.Kind != ast.SegIdent {
		t.Fatalf("root must be path node, got kind %d", root.Kind)
	}
	group := b.Items.UseTree(root.Child)
	if group.Kind != ast.UseTreeGroup || len(group.Group) != 3 {
		t.Fatalf("child must be a group of 3")
	}
	leafC := b.Items.UseTree(group.Group[1])
	if leafC.Kind != ast.UseTreeName || leafC.Alias == source.NoStringID {
		t.Fatalf("second leaf must be aliased name")
	}
	leafSelf := b.Items.UseTree(group.Group[2])
	if leafSelf.Kind != ast.UseTreeSelf || leafSelf.Alias == source.NoStringID {
		t.Fatalf("third leaf must be aliased self")
	}
}

func TestParseUseMarkers(t *testing.T) {
	b, f, bag := parseSnippet(t, "use crate::x;\nuse super::super::y;\nuse self::z;\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	items := fileItems(b, f)
	if len(items) != 3 {
		t.Fatalf("want 3 items, got %d", len(items))
	}
	u0, _ := b.Items.Use(items[0])
	if b.Items.UseTree(u0.Root).Seg.Kind != ast.SegCrate {
		t.Fatalf("first use must start with crate")
	}
	u1, _ := b.Items.Use(items[1])
	t1 := b.Items.UseTree(u1.Root)
	if t1.Seg.Kind != ast.SegSuper {
		t.Fatalf("second use must start with super")
	}
	if b.Items.UseTree(t1.Child).Seg.Kind != ast.SegSuper {
		t.Fatalf("second segment must be super too")
	}
}

func TestParseDeclarations(t *testing.T) {
	src := `
pub struct Point { x: i32, y: i32 }
enum Color { Red, Green }
pub(crate) fn draw(p: Point) -> Color { return Color::Red; }
const MAX: i32 = 10;
type Alias = Point;
`
	b, f, bag := parseSnippet(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	items := fileItems(b, f)
	if len(items) != 5 {
		t.Fatalf("want 5 items, got %d", len(items))
	}
	if s, ok := b.Items.Struct(items[0]); !ok || s.Visibility != ast.VisPublic {
		t.Fatalf("item 0 must be pub struct")
	}
	if _, ok := b.Items.Enum(items[1]); !ok {
		t.Fatalf("item 1 must be enum")
	}
	fn, ok := b.Items.Fn(items[2])
	if !ok || fn.Visibility != ast.VisCrate {
		t.Fatalf("item 2 must be pub(crate) fn")
	}
	if _, ok := b.Items.Const(items[3]); !ok {
		t.Fatalf("item 3 must be const")
	}
	if _, ok := b.Items.TypeAlias(items[4]); !ok {
		t.Fatalf("item 4 must be type alias")
	}
}

func TestParseItemsInFnBody(t *testing.T) {
	src := `
fn outer() {
    mod inner;
    use a::b;
    let x = 1;
}
`
	b, f, bag := parseSnippet(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	items := fileItems(b, f)
	fn, ok := b.Items.Fn(items[0])
	if !ok {
		t.Fatalf("item must be fn")
	}
	if len(fn.Items) != 2 {
		t.Fatalf("fn body must carry 2 nested items, got %d", len(fn.Items))
	}
	if _, ok := b.Items.Mod(fn.Items[0]); !ok {
		t.Fatalf("first nested item must be a mod")
	}
	if _, ok := b.Items.Use(fn.Items[1]); !ok {
		t.Fatalf("second nested item must be a use")
	}
}

func TestParseErrorRecovery(t *testing.T) {
	b, f, bag := parseSnippet(t, "mod ;\nmod ok;\n")
	if !bag.HasErrors() {
		t.Fatalf("expected an error for missing module name")
	}
	items := fileItems(b, f)
	if len(items) != 1 {
		t.Fatalf("parser must recover and parse the second mod, got %d items", len(items))
	}
	m, ok := b.Items.Mod(items[0])
	if !ok || b.StringsInterner.MustLookup(m.Name) != "ok" {
		t.Fatalf("recovered item wrong")
	}
}

func TestParseMissingSemicolon(t *testing.T) {
	_, _, bag := parseSnippet(t, "mod a")
	if !bag.HasErrors() {
		t.Fatalf("expected SynExpectSemicolon")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynExpectSemicolon {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SynExpectSemicolon, got %v", bag.Items())
	}
}
