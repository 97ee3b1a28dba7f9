package symbols

import (
	"ryl/internal/ast"
	"ryl/internal/source"
)

// SymbolKind — вид объявленного имени.
type SymbolKind uint8

const (
	SymUnknown SymbolKind = iota
	SymModule
	SymStruct
	SymEnum
	SymTypeAlias
	SymFn
	SymConst
)

func (k SymbolKind) String() string {
	switch k {
	case SymModule:
		return "module"
	case SymStruct:
		return "struct"
	case SymEnum:
		return "enum"
	case SymTypeAlias:
		return "type alias"
	case SymFn:
		return "function"
	case SymConst:
		return "constant"
	default:
		return "symbol"
	}
}

// Namespace возвращает пространство имён, в котором живёт символ этого вида.
func (k SymbolKind) Namespace() Namespace {
	switch k {
	case SymFn, SymConst:
		return NsValues
	default:
		return NsTypes
	}
}

// SymbolDecl привязывает символ к месту объявления в AST.
type SymbolDecl struct {
	File ast.FileID
	Item ast.ItemID
}

// Symbol — одно объявленное имя: модуль, тип или значение.
type Symbol struct {
	Name       source.StringID
	Kind       SymbolKind
	Visibility ast.Visibility
	Scope      ScopeID // scope, в котором символ объявлен
	OwnScope   ScopeID // для модулей и функций: scope, которым символ владеет
	Span       source.Span
	Decl       SymbolDecl
}
