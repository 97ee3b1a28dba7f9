package symbols

import (
	"ryl/internal/ast"
	"ryl/internal/source"
)

// ScopeKind — вид области видимости.
type ScopeKind uint8

const (
	ScopeModule ScopeKind = iota
	ScopeFunction
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeModule:
		return "module"
	case ScopeFunction:
		return "function"
	default:
		return "scope"
	}
}

// BindingOrigin различает прямое объявление и импорт.
type BindingOrigin uint8

const (
	OriginDecl BindingOrigin = iota
	OriginImport
)

// Binding — действующее связывание имени в scope. Span и Origin описывают
// голову цепочки повторного использования: каждое повторное связывание того
// же символа сдвигает голову на себя, и следующий дубль сравнивается с ней.
type Binding struct {
	Sym        SymbolID
	Visibility ast.Visibility // для импорта — видимость самого `use`
	Span       source.Span
	Origin     BindingOrigin
}

// Scope — узел графа областей видимости. Names хранит по одной карте на
// пространство имён; действующим всегда остаётся первое связывание.
type Scope struct {
	Kind     ScopeKind
	Parent   ScopeID
	Sym      SymbolID // символ модуля/функции, владеющий этим scope
	Span     source.Span
	Names    [nsCount]map[source.StringID]Binding
	Children []ScopeID
}

func newScope(kind ScopeKind, parent ScopeID, span source.Span) Scope {
	s := Scope{Kind: kind, Parent: parent, Span: span}
	for ns := range s.Names {
		s.Names[ns] = make(map[source.StringID]Binding)
	}
	return s
}

func (s *Scope) binding(ns Namespace, name source.StringID) (Binding, bool) {
	b, ok := s.Names[ns][name]
	return b, ok
}

func (s *Scope) setBinding(ns Namespace, name source.StringID, b Binding) {
	s.Names[ns][name] = b
}
