package symbols

import (
	"ryl/internal/ast"
	"ryl/internal/source"
)

// Table — итог построения графа областей видимости: арены scope и символов
// плюс привязка файлов к их корневым scope.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Strings *source.Interner

	crate    ScopeID
	fileRoot map[ast.FileID]ScopeID
}

func NewTable(strings *source.Interner) *Table {
	return &Table{
		Scopes:   NewScopes(0),
		Symbols:  NewSymbols(0),
		Strings:  strings,
		fileRoot: make(map[ast.FileID]ScopeID),
	}
}

// CrateRoot возвращает scope корня crate.
func (t *Table) CrateRoot() ScopeID { return t.crate }

// FileRoot возвращает модульный scope, чьё содержимое лежит в файле f.
func (t *Table) FileRoot(f ast.FileID) ScopeID { return t.fileRoot[f] }

func (t *Table) Scope(id ScopeID) *Scope    { return t.Scopes.Get(id) }
func (t *Table) Symbol(id SymbolID) *Symbol { return t.Symbols.Get(id) }

func (t *Table) name(id source.StringID) string {
	if id == source.NoStringID {
		return ""
	}
	return t.Strings.MustLookup(id)
}

// LookupIn ищет имя только в данном scope, без подъёма по родителям.
func (t *Table) LookupIn(scope ScopeID, ns Namespace, name source.StringID) (Binding, bool) {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return Binding{}, false
	}
	return sc.binding(ns, name)
}

// LookupLexical поднимается по цепочке scope до корня crate.
// Возвращает связывание и scope, в котором оно найдено.
func (t *Table) LookupLexical(scope ScopeID, ns Namespace, name source.StringID) (Binding, ScopeID, bool) {
	for cur := scope; cur.IsValid(); cur = t.Scopes.Get(cur).Parent {
		if b, ok := t.Scopes.Get(cur).binding(ns, name); ok {
			return b, cur, true
		}
	}
	return Binding{}, NoScopeID, false
}

// enclosingModule возвращает ближайший модульный scope (сам scope, если он
// модульный).
func (t *Table) enclosingModule(id ScopeID) ScopeID {
	for cur := id; cur.IsValid(); cur = t.Scopes.Get(cur).Parent {
		if t.Scopes.Get(cur).Kind == ScopeModule {
			return cur
		}
	}
	return NoScopeID
}

// parentModule возвращает модуль, непосредственно содержащий данный модуль.
func (t *Table) parentModule(id ScopeID) ScopeID {
	mod := t.enclosingModule(id)
	if !mod.IsValid() {
		return NoScopeID
	}
	return t.enclosingModule(t.Scopes.Get(mod).Parent)
}

// isInside сообщает, лежит ли scope внутри ancestor (или совпадает с ним).
func (t *Table) isInside(scope, ancestor ScopeID) bool {
	for cur := scope; cur.IsValid(); cur = t.Scopes.Get(cur).Parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// insideFunction сообщает, лежит ли scope внутри тела функции.
func (t *Table) insideFunction(id ScopeID) bool {
	for cur := id; cur.IsValid(); cur = t.Scopes.Get(cur).Parent {
		if t.Scopes.Get(cur).Kind == ScopeFunction {
			return true
		}
	}
	return false
}

// visibleFrom проверяет, видно ли связывание, лежащее в модуле defScope,
// из точки from. Для импортов действует видимость самого `use`.
func (t *Table) visibleFrom(b Binding, defScope, from ScopeID) bool {
	switch b.Visibility {
	case ast.VisPublic:
		return true
	case ast.VisCrate:
		// один crate — видно отовсюду
		return true
	case ast.VisSuper:
		parent := t.parentModule(defScope)
		if !parent.IsValid() {
			return true
		}
		return t.isInside(from, parent)
	default:
		return t.isInside(from, t.enclosingModule(defScope))
	}
}
