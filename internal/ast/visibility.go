package ast

// Visibility описывает доступность элемента.
type Visibility uint8

const (
	VisPrivate Visibility = iota
	VisPublic
	VisCrate
	VisSuper
)

func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "public"
	case VisCrate:
		return "crate-visible"
	case VisSuper:
		return "super-visible"
	default:
		return "private"
	}
}
