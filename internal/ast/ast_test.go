package ast

import (
	"testing"

	"ryl/internal/source"
)

func TestArenaSentinel(t *testing.T) {
	a := NewArena[int](4)
	if a.Get(0) != nil {
		t.Fatalf("index 0 must be the nil sentinel")
	}
	id := a.Allocate(42)
	if id != 1 {
		t.Fatalf("first allocation must be 1, got %d", id)
	}
	if *a.Get(id) != 42 {
		t.Fatalf("value lost")
	}
}

func TestItemsRoundTrip(t *testing.T) {
	items := NewItems(0)
	interner := source.NewInterner()
	name := interner.Intern("fruit")

	modID := items.NewMod(source.Span{Start: 0, End: 10}, ModItem{
		Name:       name,
		Visibility: VisPublic,
	})
	m, ok := items.Mod(modID)
	if !ok || m.Name != name {
		t.Fatalf("mod payload lost")
	}
	if _, ok := items.Use(modID); ok {
		t.Fatalf("mod must not read back as use")
	}

	tree := items.NewUseTree(UseTree{
		Kind: UseTreeName,
		Seg:  UseSeg{Kind: SegIdent, Name: interner.Intern("b")},
	})
	useID := items.NewUse(source.Span{Start: 11, End: 20}, UseItem{Root: tree})
	u, ok := items.Use(useID)
	if !ok || u.Root != tree {
		t.Fatalf("use payload lost")
	}
	if items.UseTree(u.Root).Seg.Kind != SegIdent {
		t.Fatalf("tree node lost")
	}
}

func TestItemKindString(t *testing.T) {
	if ItemMod.String() != "module" || ItemConst.String() != "constant" {
		t.Fatalf("item kind hints wrong")
	}
}
