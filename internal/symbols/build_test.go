package symbols

import (
	"testing"

	"ryl/internal/ast"
	"ryl/internal/diag"
	"ryl/internal/lexer"
	"ryl/internal/parser"
	"ryl/internal/source"
)

func parseOne(t *testing.T, fs *source.FileSet, builder *ast.Builder, bag *diag.Bag, path, src string) ast.FileID {
	t.Helper()
	id := fs.AddVirtual(path, []byte(src))
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	res := parser.ParseFile(fs, lx, builder, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("parse errors in %s: %v", path, bag.Items())
	}
	return res.File
}

func resolveSnippet(t *testing.T, src string) (*Resolver, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	bag := diag.NewBag(64)
	builder := ast.NewBuilder(ast.Hints{})
	file := parseOne(t, fs, builder, bag, "main.ryl", src)
	r := NewResolver(builder, Options{Reporter: &diag.BagReporter{Bag: bag}})
	r.Build(file)
	r.Resolve()
	return r, bag
}

func codeCount(bag *diag.Bag, code diag.Code) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Code == code {
			n++
		}
	}
	return n
}

func mustBinding(t *testing.T, table *Table, scope ScopeID, ns Namespace, name string) Binding {
	t.Helper()
	b, ok := table.LookupIn(scope, ns, table.Strings.Intern(name))
	if !ok {
		t.Fatalf("no binding for %q", name)
	}
	return b
}

func moduleScope(t *testing.T, table *Table, parent ScopeID, name string) ScopeID {
	t.Helper()
	b := mustBinding(t, table, parent, NsTypes, name)
	sym := table.Symbol(b.Sym)
	if sym.Kind != SymModule {
		t.Fatalf("%q is not a module, got %s", name, sym.Kind)
	}
	return sym.OwnScope
}

func TestScopeGraph(t *testing.T) {
	r, bag := resolveSnippet(t, `
mod a {
    pub mod b {
        pub struct S;
    }
}
fn main() {}
`)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	table := r.Table()
	root := table.CrateRoot()
	if !root.IsValid() {
		t.Fatalf("crate root must be valid")
	}
	aScope := moduleScope(t, table, root, "a")
	bScope := moduleScope(t, table, aScope, "b")
	s := mustBinding(t, table, bScope, NsTypes, "S")
	if table.Symbol(s.Sym).Kind != SymStruct {
		t.Fatalf("S must be a struct")
	}
	m := mustBinding(t, table, root, NsValues, "main")
	if table.Symbol(m.Sym).Kind != SymFn {
		t.Fatalf("main must be a function")
	}
}

func TestNamespacesDoNotCollide(t *testing.T) {
	_, bag := resolveSnippet(t, "struct s;\nfn s() {}\n")
	if bag.Len() != 0 {
		t.Fatalf("type and value namespaces must not collide: %v", bag.Items())
	}
}

func TestDuplicateDefinition(t *testing.T) {
	r, bag := resolveSnippet(t, "mod fruit;\nstruct fruit;\n")
	if codeCount(bag, diag.ResDuplicateName) != 1 {
		t.Fatalf("want 1 duplicate error, got %v", bag.Items())
	}
	// раннее связывание остаётся действующим
	table := r.Table()
	b := mustBinding(t, table, table.CrateRoot(), NsTypes, "fruit")
	if table.Symbol(b.Sym).Kind != SymModule {
		t.Fatalf("first binding must stay effective")
	}
}

func TestModInFunctionNeedsBody(t *testing.T) {
	_, bag := resolveSnippet(t, "fn main() {\n    mod helper;\n}\n")
	if codeCount(bag, diag.ModInFnNoBody) != 1 {
		t.Fatalf("want ModInFnNoBody, got %v", bag.Items())
	}
}

func TestModWithBodyInFunctionOK(t *testing.T) {
	_, bag := resolveSnippet(t, "fn main() {\n    mod helper { pub struct S; }\n}\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestSubModuleFiles(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(64)
	builder := ast.NewBuilder(ast.Hints{})
	main := parseOne(t, fs, builder, bag, "main.ryl", "mod child;\nuse child::Thing;\n")
	child := parseOne(t, fs, builder, bag, "child.ryl", "pub struct Thing;\n")

	modItem := builder.Files.Get(main).Items[0]
	if _, ok := builder.Items.Mod(modItem); !ok {
		t.Fatalf("first item of main.ryl must be a mod")
	}
	r := NewResolver(builder, Options{
		Reporter:   &diag.BagReporter{Bag: bag},
		SubModules: map[ast.ItemID]ast.FileID{modItem: child},
	})
	r.Build(main)
	r.Resolve()
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	table := r.Table()
	b := mustBinding(t, table, table.CrateRoot(), NsTypes, "Thing")
	if table.Symbol(b.Sym).Kind != SymStruct {
		t.Fatalf("Thing must resolve to the struct from child.ryl")
	}
	if table.FileRoot(child) != moduleScope(t, table, table.CrateRoot(), "child") {
		t.Fatalf("child.ryl must root the scope of module child")
	}
}

func TestImportIntoFunctionScope(t *testing.T) {
	r, bag := resolveSnippet(t, `
mod a { pub struct S; }
fn main() {
    use a::S;
}
`)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	table := r.Table()
	root := table.CrateRoot()
	if _, ok := table.LookupIn(root, NsTypes, table.Strings.Intern("S")); ok {
		t.Fatalf("S must not leak into the crate root")
	}
	fn := mustBinding(t, table, root, NsValues, "main")
	fnScope := table.Symbol(fn.Sym).OwnScope
	b := mustBinding(t, table, fnScope, NsTypes, "S")
	if b.Origin != OriginImport {
		t.Fatalf("S in main must be an import binding")
	}
}
