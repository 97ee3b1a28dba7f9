package symbols

import (
	"ryl/internal/ast"
	"ryl/internal/diag"
	"ryl/internal/source"
)

type traceResult uint8

const (
	traceDone traceResult = iota
	traceBlocked
)

// Resolve доводит рабочий список импортов до неподвижной точки: проходы
// повторяются, пока хотя бы один импорт продвигается. Окончательные ошибки
// (видимость, позиция спец-сегментов, не-модуль в середине пути) снимают
// импорт с списка сразу; отсутствие имени оставляет его на следующий проход.
// Остаток после остановки классифицируется на циклы и неразрешённые пути.
func (r *Resolver) Resolve() {
	for i := range r.pending {
		if !r.validate(&r.pending[i]) {
			r.pending[i].state = stDone
		}
	}

	for progress := true; progress; {
		progress = false
		for i := range r.pending {
			imp := &r.pending[i]
			if imp.state != stPending {
				continue
			}
			if r.trace(imp) == traceDone {
				imp.state = stDone
				progress = true
			}
		}
	}

	r.reportStuck()
}

// trace проводит один импорт по пути настолько далеко, насколько позволяют
// уже действующие связывания.
func (r *Resolver) trace(imp *pendingImport) traceResult {
	cur := NoScopeID
	segs := imp.segs

	if len(segs) > 0 {
		switch segs[0].kind {
		case ast.SegCrate:
			cur = r.table.crate
			segs = segs[1:]
		case ast.SegSelfLower:
			cur = r.table.enclosingModule(imp.scope)
			segs = segs[1:]
		case ast.SegSuper:
			mod := r.table.enclosingModule(imp.scope)
			for len(segs) > 0 && segs[0].kind == ast.SegSuper {
				up := r.table.parentModule(mod)
				if !up.IsValid() {
					diag.ReportError(r.opts.Reporter, diag.ResTooManySupers, segs[0].span,
						"there are too many leading `super` keywords").
						Emit()
					return traceDone
				}
				mod = up
				segs = segs[1:]
			}
			cur = mod
		default:
			// первый сегмент ищется лексически от точки импорта
			b, _, ok := r.table.LookupLexical(imp.scope, NsTypes, segs[0].name)
			if !ok {
				r.block(imp, imp.scope, segs[0], true)
				return traceBlocked
			}
			mod, ok := r.requireModule(segs[0], b)
			if !ok {
				return traceDone
			}
			cur = mod
			segs = segs[1:]
		}
	}

	// промежуточные сегменты: поиск только внутри модуля, с проверкой
	// видимости из точки импорта
	for _, seg := range segs {
		b, ok := r.table.LookupIn(cur, NsTypes, seg.name)
		if !ok {
			r.block(imp, cur, seg, false)
			return traceBlocked
		}
		if !r.checkVisible(imp, seg.span, b, cur) {
			return traceDone
		}
		mod, ok := r.requireModule(seg, b)
		if !ok {
			return traceDone
		}
		cur = mod
	}

	return r.traceLeaf(imp, cur)
}

// traceLeaf связывает лист импорта. cur — модуль, названный префиксом пути;
// NoScopeID, если префикса не было.
func (r *Resolver) traceLeaf(imp *pendingImport, cur ScopeID) traceResult {
	switch imp.leaf.kind {
	case ast.SegSelfLower:
		// `a::{self}` именует сам модуль a
		return r.bindModule(imp, cur)
	case ast.SegCrate:
		return r.bindModule(imp, r.table.crate)
	case ast.SegSuper:
		mod := cur
		if !mod.IsValid() {
			mod = r.table.enclosingModule(imp.scope)
		}
		up := r.table.parentModule(mod)
		if !up.IsValid() {
			diag.ReportError(r.opts.Reporter, diag.ResTooManySupers, imp.leaf.span,
				"there are too many leading `super` keywords").
				Emit()
			return traceDone
		}
		return r.bindModule(imp, up)
	}

	if !cur.IsValid() {
		// `use a;` — имя ищется лексически, в обоих пространствах
		b, _, ok := r.table.LookupLexical(imp.scope, NsTypes, imp.leaf.name)
		ns := NsTypes
		if !ok {
			b, _, ok = r.table.LookupLexical(imp.scope, NsValues, imp.leaf.name)
			ns = NsValues
		}
		if !ok {
			r.block(imp, imp.scope, imp.leaf, true)
			return traceBlocked
		}
		r.bindImport(imp, ns, b.Sym)
		return traceDone
	}

	b, ok := r.table.LookupIn(cur, NsTypes, imp.leaf.name)
	ns := NsTypes
	if !ok {
		b, ok = r.table.LookupIn(cur, NsValues, imp.leaf.name)
		ns = NsValues
	}
	if !ok {
		r.block(imp, cur, imp.leaf, false)
		return traceBlocked
	}
	if !r.checkVisible(imp, imp.leaf.span, b, cur) {
		return traceDone
	}
	r.bindImport(imp, ns, b.Sym)
	return traceDone
}

// bindModule связывает модуль целиком: `self` в группе и алиасы crate/super.
func (r *Resolver) bindModule(imp *pendingImport, mod ScopeID) traceResult {
	sym := r.table.Scopes.Get(mod).Sym
	if imp.alias == source.NoStringID && mod == r.table.crate {
		diag.ReportError(r.opts.Reporter, diag.ResSelfNeedsAlias, imp.leaf.span,
			"crate root imports need to be explicitly named: `use crate as name;`").
			Emit()
		return traceDone
	}
	r.bindImport(imp, NsTypes, sym)
	return traceDone
}

func (r *Resolver) block(imp *pendingImport, scope ScopeID, seg segment, lexical bool) {
	imp.blockScope = scope
	imp.blockName = seg.name
	imp.blockSpan = seg.span
	imp.blockLexical = lexical
}

// requireModule требует, чтобы связывание вело к модулю.
func (r *Resolver) requireModule(seg segment, b Binding) (ScopeID, bool) {
	sym := r.table.Symbols.Get(b.Sym)
	if sym.Kind == SymModule {
		return sym.OwnScope, true
	}
	n := r.table.name(sym.Name)
	diag.ReportError(r.opts.Reporter, diag.ResNotAModule, seg.span,
		"expected module, found "+sym.Kind.String()+" `"+n+"`").
		WithLabel(seg.span, "not a module").
		WithLabel(sym.Span, sym.Kind.String()+" `"+n+"` defined here").
		Emit()
	return NoScopeID, false
}

// checkVisible проверяет видимость связывания модуля defScope из точки
// импорта. Ошибка окончательная.
func (r *Resolver) checkVisible(imp *pendingImport, sp source.Span, b Binding, defScope ScopeID) bool {
	if r.table.visibleFrom(b, defScope, imp.scope) {
		return true
	}
	sym := r.table.Symbols.Get(b.Sym)
	n := r.table.name(sym.Name)
	what := sym.Kind.String()

	msg := what + " `" + n + "` is private"
	lbl := "private " + what
	if b.Visibility == ast.VisSuper {
		msg = what + " `" + n + "` is only visible to its parent module"
		lbl = "restricted visibility"
	}
	declLabel := "`" + n + "` declared here"
	if b.Origin == OriginImport {
		declLabel = "`" + n + "` imported here, but the import is not public"
	}
	diag.ReportError(r.opts.Reporter, diag.ResNotVisible, sp, msg).
		WithLabel(sp, lbl).
		WithLabel(b.Span, declLabel).
		Emit()
	return false
}
