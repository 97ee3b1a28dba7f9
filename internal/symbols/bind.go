package symbols

import (
	"ryl/internal/diag"
	"ryl/internal/source"
)

// bindImport вносит разрешённый импорт в scope точки импорта.
//
// Конфликты классифицируются по символу: повторное связывание того же
// символа — предупреждение (и голова цепочки сдвигается на новое место),
// другой символ под тем же именем — ошибка. В обоих случаях действующим
// остаётся раннее связывание.
func (r *Resolver) bindImport(imp *pendingImport, ns Namespace, sym SymbolID) {
	name := imp.leaf.name
	if imp.alias != source.NoStringID {
		name = imp.alias
	}
	if name == source.NoStringID {
		// `self` без алиаса: имя берётся у самого модуля
		name = r.table.Symbols.Get(sym).Name
	}
	bindSpan := imp.leaf.span
	if imp.alias != source.NoStringID {
		bindSpan = imp.leaf.span.Cover(imp.aliasSpan)
	}

	sc := r.table.Scopes.Get(imp.scope)
	prev, ok := sc.binding(ns, name)
	if !ok {
		sc.setBinding(ns, name, Binding{
			Sym:        sym,
			Visibility: imp.vis,
			Span:       bindSpan,
			Origin:     OriginImport,
		})
		return
	}

	n := r.table.name(name)
	if prev.Sym == sym {
		headLabel := "`" + n + "` declared here"
		if prev.Origin == OriginImport {
			headLabel = "`" + n + "` imported here"
		}
		diag.ReportWarning(r.opts.Reporter, diag.ResRedundantImport, bindSpan,
			"the name `"+n+"` is imported multiple times").
			WithLabel(prev.Span, headLabel).
			WithLabel(bindSpan, "`"+n+"` reimported here").
			WithNote("the redundant import can be removed").
			Emit()
		// следующий дубль будет сравниваться с этим местом
		prev.Span = bindSpan
		prev.Origin = OriginImport
		sc.setBinding(ns, name, prev)
		return
	}

	prevLabel := "previous definition of the name `" + n + "` here"
	if prev.Origin == OriginImport {
		prevLabel = "previous import of the name `" + n + "` here"
	}
	diag.ReportError(r.opts.Reporter, diag.ResDuplicateName, bindSpan,
		"the name `"+n+"` is defined multiple times").
		WithLabel(prev.Span, prevLabel).
		WithLabel(bindSpan, "`"+n+"` reimported here").
		WithNote("`"+n+"` must be defined only once in the "+ns.String()+" namespace of this "+sc.Kind.String()).
		Emit()
}
