package symbols

import (
	"ryl/internal/ast"
	"ryl/internal/diag"
	"ryl/internal/source"
)

// Build строит граф областей видимости начиная с entry: создаёт scope
// для каждого модуля и функции, объявляет символы в их пространствах имён
// и собирает use-декларации в рабочий список импортов.
//
// Конфликты объявлений отчитываются сразу; действующим остаётся первое
// связывание.
func (r *Resolver) Build(entry ast.FileID) {
	crateName := r.opts.CrateName
	if crateName == "" {
		crateName = "crate"
	}
	f := r.arenas.Files.Get(entry)

	root := r.table.Scopes.Allocate(newScope(ScopeModule, NoScopeID, f.Span))
	sym := r.table.Symbols.Allocate(Symbol{
		Name:       r.table.Strings.Intern(crateName),
		Kind:       SymModule,
		Visibility: ast.VisPublic,
		OwnScope:   root,
		Span:       f.Span,
		Decl:       SymbolDecl{File: entry},
	})
	r.table.Scopes.Get(root).Sym = sym
	r.table.crate = root
	r.table.fileRoot[entry] = root

	r.declareItems(root, entry, f.Items)
}

func (r *Resolver) declareItems(scope ScopeID, astFile ast.FileID, items []ast.ItemID) {
	for _, id := range items {
		item := r.arenas.Items.Get(id)
		if item == nil {
			continue
		}
		switch item.Kind {
		case ast.ItemMod:
			m, _ := r.arenas.Items.Mod(id)
			r.declareMod(scope, astFile, id, m)
		case ast.ItemUse:
			u, _ := r.arenas.Items.Use(id)
			r.flattenUse(scope, u)
		case ast.ItemStruct:
			s, _ := r.arenas.Items.Struct(id)
			r.declareLeaf(scope, astFile, id, SymStruct, s.Name, s.NameSpan, s.Visibility)
		case ast.ItemEnum:
			e, _ := r.arenas.Items.Enum(id)
			r.declareLeaf(scope, astFile, id, SymEnum, e.Name, e.NameSpan, e.Visibility)
		case ast.ItemTypeAlias:
			a, _ := r.arenas.Items.TypeAlias(id)
			r.declareLeaf(scope, astFile, id, SymTypeAlias, a.Name, a.NameSpan, a.Visibility)
		case ast.ItemConst:
			c, _ := r.arenas.Items.Const(id)
			r.declareLeaf(scope, astFile, id, SymConst, c.Name, c.NameSpan, c.Visibility)
		case ast.ItemFn:
			fn, _ := r.arenas.Items.Fn(id)
			r.declareFn(scope, astFile, id, fn)
		}
	}
}

// declareMod объявляет модуль и строит его собственный scope: из инлайн
// тела, из подгруженного файла или пустой.
func (r *Resolver) declareMod(scope ScopeID, astFile ast.FileID, id ast.ItemID, m *ast.ModItem) {
	own := r.table.Scopes.Allocate(newScope(ScopeModule, scope, m.BodySpan))
	sym := r.table.Symbols.Allocate(Symbol{
		Name:       m.Name,
		Kind:       SymModule,
		Visibility: m.Visibility,
		Scope:      scope,
		OwnScope:   own,
		Span:       m.NameSpan,
		Decl:       SymbolDecl{File: astFile, Item: id},
	})
	r.table.Scopes.Get(own).Sym = sym
	r.attachChild(scope, own)
	r.declare(scope, sym)

	switch {
	case m.HasBody:
		r.declareItems(own, astFile, m.Items)
	default:
		if r.table.insideFunction(scope) {
			diag.ReportError(r.opts.Reporter, diag.ModInFnNoBody, m.NameSpan,
				"a module declared inside a function must have a body").
				WithLabel(m.NameSpan, "cannot be loaded from an external file").
				WithNote("give the module a body: `mod "+r.table.name(m.Name)+" { ... }`").
				Emit()
			return
		}
		sub, ok := r.opts.SubModules[id]
		if !ok {
			return
		}
		subFile := r.arenas.Files.Get(sub)
		r.table.Scopes.Get(own).Span = subFile.Span
		r.table.fileRoot[sub] = own
		r.declareItems(own, sub, subFile.Items)
	}
}

// declareFn объявляет функцию и проваливается в её тело за вложенными item.
func (r *Resolver) declareFn(scope ScopeID, astFile ast.FileID, id ast.ItemID, fn *ast.FnItem) {
	own := r.table.Scopes.Allocate(newScope(ScopeFunction, scope, fn.BodySpan))
	sym := r.table.Symbols.Allocate(Symbol{
		Name:       fn.Name,
		Kind:       SymFn,
		Visibility: fn.Visibility,
		Scope:      scope,
		OwnScope:   own,
		Span:       fn.NameSpan,
		Decl:       SymbolDecl{File: astFile, Item: id},
	})
	r.table.Scopes.Get(own).Sym = sym
	r.attachChild(scope, own)
	r.declare(scope, sym)
	r.declareItems(own, astFile, fn.Items)
}

func (r *Resolver) declareLeaf(scope ScopeID, astFile ast.FileID, id ast.ItemID, kind SymbolKind, name source.StringID, nameSpan source.Span, vis ast.Visibility) {
	sym := r.table.Symbols.Allocate(Symbol{
		Name:       name,
		Kind:       kind,
		Visibility: vis,
		Scope:      scope,
		Span:       nameSpan,
		Decl:       SymbolDecl{File: astFile, Item: id},
	})
	r.declare(scope, sym)
}

func (r *Resolver) attachChild(parent, child ScopeID) {
	p := r.table.Scopes.Get(parent)
	p.Children = append(p.Children, child)
}

// declare вносит символ в пространство имён его вида. При конфликте
// действующим остаётся раннее связывание.
func (r *Resolver) declare(scopeID ScopeID, symID SymbolID) {
	sym := r.table.Symbols.Get(symID)
	ns := sym.Kind.Namespace()
	sc := r.table.Scopes.Get(scopeID)
	if prev, ok := sc.binding(ns, sym.Name); ok {
		r.reportDuplicateDecl(sc, ns, prev, sym)
		return
	}
	sc.setBinding(ns, sym.Name, Binding{
		Sym:        symID,
		Visibility: sym.Visibility,
		Span:       sym.Span,
		Origin:     OriginDecl,
	})
}

func (r *Resolver) reportDuplicateDecl(sc *Scope, ns Namespace, prev Binding, sym *Symbol) {
	n := r.table.name(sym.Name)
	prevLabel := "previous definition of the name `" + n + "` here"
	if prev.Origin == OriginImport {
		prevLabel = "previous import of the name `" + n + "` here"
	}
	diag.ReportError(r.opts.Reporter, diag.ResDuplicateName, sym.Span,
		"the name `"+n+"` is defined multiple times").
		WithLabel(prev.Span, prevLabel).
		WithLabel(sym.Span, "`"+n+"` redefined here").
		WithNote("`"+n+"` must be defined only once in the "+ns.String()+" namespace of this "+sc.Kind.String()).
		Emit()
}
