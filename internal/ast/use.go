package ast

import "ryl/internal/source"

// UseTreeKind discriminates the node shapes of a use tree.
type UseTreeKind uint8

const (
	// UseTreePath is an interior node: `seg::child`.
	UseTreePath UseTreeKind = iota
	// UseTreeName is a leaf importing one name, optionally aliased.
	UseTreeName
	// UseTreeSelf is a leaf importing the enclosing module itself.
	UseTreeSelf
	// UseTreeGroup is a braced list of subtrees.
	UseTreeGroup
)

// SegKind classifies one path segment.
type SegKind uint8

const (
	SegIdent SegKind = iota
	SegCrate
	SegSuper
	SegSelfLower
)

func (k SegKind) String() string {
	switch k {
	case SegCrate:
		return "crate"
	case SegSuper:
		return "super"
	case SegSelfLower:
		return "self"
	default:
		return "ident"
	}
}

// UseSeg is one segment of a use path.
type UseSeg struct {
	Kind SegKind
	Name source.StringID // only for SegIdent
	Span source.Span
}

// UseTree is one node of a use declaration. Path nodes chain through
// Child; group nodes own their subtrees in Group.
type UseTree struct {
	Kind      UseTreeKind
	Seg       UseSeg          // Path, Name, Self
	Alias     source.StringID // Name, Self with `as`
	AliasSpan source.Span
	Child     UseTreeID   // Path
	Group     []UseTreeID // Group
	Span      source.Span
}

// NewUseTree allocates a tree node and returns its ID.
func (i *Items) NewUseTree(t UseTree) UseTreeID {
	return UseTreeID(i.UseTrees.Allocate(t))
}

// UseTree returns the node for the given ID, or nil.
func (i *Items) UseTree(id UseTreeID) *UseTree {
	return i.UseTrees.Get(uint32(id))
}
