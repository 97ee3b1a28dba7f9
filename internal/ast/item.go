package ast

import (
	"ryl/internal/source"
)

type ItemKind uint8

const (
	ItemMod ItemKind = iota
	ItemUse
	ItemStruct
	ItemEnum
	ItemFn
	ItemConst
	ItemTypeAlias
)

func (k ItemKind) String() string {
	switch k {
	case ItemMod:
		return "module"
	case ItemUse:
		return "use"
	case ItemStruct:
		return "struct"
	case ItemEnum:
		return "enum"
	case ItemFn:
		return "function"
	case ItemConst:
		return "constant"
	case ItemTypeAlias:
		return "type alias"
	default:
		return "item"
	}
}

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

// ModItem represents `mod name;` or `mod name { ... }`.
type ModItem struct {
	Name       source.StringID
	NameSpan   source.Span
	Visibility Visibility
	HasBody    bool
	Items      []ItemID
	BodySpan   source.Span
}

// UseItem represents a `use ...;` declaration. The tree is stored in
// the UseTrees arena; Root is its topmost node.
type UseItem struct {
	Visibility Visibility
	Root       UseTreeID
}

// StructItem carries the parts of a struct declaration relevant to
// name resolution; fields are skipped over during parsing.
type StructItem struct {
	Name       source.StringID
	NameSpan   source.Span
	Visibility Visibility
}

// EnumItem carries the parts of an enum declaration relevant to
// name resolution; variants are skipped over during parsing.
type EnumItem struct {
	Name       source.StringID
	NameSpan   source.Span
	Visibility Visibility
}

// FnItem keeps the function name and any items nested in its body.
// Expressions and statements are skipped; only nested mod/use/decl
// items survive for scope construction.
type FnItem struct {
	Name       source.StringID
	NameSpan   source.Span
	Visibility Visibility
	Items      []ItemID
	BodySpan   source.Span
}

// ConstItem represents `const NAME: T = ...;` with the initializer skipped.
type ConstItem struct {
	Name       source.StringID
	NameSpan   source.Span
	Visibility Visibility
}

// TypeAliasItem represents `type Name = ...;` with the target skipped.
type TypeAliasItem struct {
	Name       source.StringID
	NameSpan   source.Span
	Visibility Visibility
}

type Items struct {
	Arena       *Arena[Item]
	Mods        *Arena[ModItem]
	Uses        *Arena[UseItem]
	UseTrees    *Arena[UseTree]
	Structs     *Arena[StructItem]
	Enums       *Arena[EnumItem]
	Fns         *Arena[FnItem]
	Consts      *Arena[ConstItem]
	TypeAliases *Arena[TypeAliasItem]
}

// NewItems creates an *Items with per-kind arenas initialized to capHint.
// If capHint is 0, NewItems uses a default initial capacity of 1<<8.
func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Items{
		Arena:       NewArena[Item](capHint),
		Mods:        NewArena[ModItem](capHint),
		Uses:        NewArena[UseItem](capHint),
		UseTrees:    NewArena[UseTree](capHint),
		Structs:     NewArena[StructItem](capHint),
		Enums:       NewArena[EnumItem](capHint),
		Fns:         NewArena[FnItem](capHint),
		Consts:      NewArena[ConstItem](capHint),
		TypeAliases: NewArena[TypeAliasItem](capHint),
	}
}

func (i *Items) New(kind ItemKind, span source.Span, payloadID PayloadID) ItemID {
	return ItemID(i.Arena.Allocate(Item{
		Kind:    kind,
		Span:    span,
		Payload: payloadID,
	}))
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

// NewMod creates a module item.
func (i *Items) NewMod(span source.Span, m ModItem) ItemID {
	payload := PayloadID(i.Mods.Allocate(m))
	return i.New(ItemMod, span, payload)
}

// Mod returns the ModItem payload, or nil/false if id is not a module.
func (i *Items) Mod(id ItemID) (*ModItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemMod {
		return nil, false
	}
	return i.Mods.Get(uint32(item.Payload)), true
}

// NewUse creates a use item.
func (i *Items) NewUse(span source.Span, u UseItem) ItemID {
	payload := PayloadID(i.Uses.Allocate(u))
	return i.New(ItemUse, span, payload)
}

// Use returns the UseItem payload, or nil/false if id is not a use.
func (i *Items) Use(id ItemID) (*UseItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemUse {
		return nil, false
	}
	return i.Uses.Get(uint32(item.Payload)), true
}

// NewStruct creates a struct item.
func (i *Items) NewStruct(span source.Span, s StructItem) ItemID {
	payload := PayloadID(i.Structs.Allocate(s))
	return i.New(ItemStruct, span, payload)
}

// Struct returns the StructItem payload, or nil/false if id is not a struct.
func (i *Items) Struct(id ItemID) (*StructItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemStruct {
		return nil, false
	}
	return i.Structs.Get(uint32(item.Payload)), true
}

// NewEnum creates an enum item.
func (i *Items) NewEnum(span source.Span, e EnumItem) ItemID {
	payload := PayloadID(i.Enums.Allocate(e))
	return i.New(ItemEnum, span, payload)
}

// Enum returns the EnumItem payload, or nil/false if id is not an enum.
func (i *Items) Enum(id ItemID) (*EnumItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemEnum {
		return nil, false
	}
	return i.Enums.Get(uint32(item.Payload)), true
}

// NewFn creates a function item.
func (i *Items) NewFn(span source.Span, f FnItem) ItemID {
	payload := PayloadID(i.Fns.Allocate(f))
	return i.New(ItemFn, span, payload)
}

// Fn returns the FnItem payload, or nil/false if id is not a function.
func (i *Items) Fn(id ItemID) (*FnItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemFn {
		return nil, false
	}
	return i.Fns.Get(uint32(item.Payload)), true
}

// NewConst creates a const item.
func (i *Items) NewConst(span source.Span, c ConstItem) ItemID {
	payload := PayloadID(i.Consts.Allocate(c))
	return i.New(ItemConst, span, payload)
}

// Const returns the ConstItem payload, or nil/false if id is not a const.
func (i *Items) Const(id ItemID) (*ConstItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemConst {
		return nil, false
	}
	return i.Consts.Get(uint32(item.Payload)), true
}

// NewTypeAlias creates a type alias item.
func (i *Items) NewTypeAlias(span source.Span, a TypeAliasItem) ItemID {
	payload := PayloadID(i.TypeAliases.Allocate(a))
	return i.New(ItemTypeAlias, span, payload)
}

// TypeAlias returns the TypeAliasItem payload, or nil/false if id is not an alias.
func (i *Items) TypeAlias(id ItemID) (*TypeAliasItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemTypeAlias {
		return nil, false
	}
	return i.TypeAliases.Get(uint32(item.Payload)), true
}
