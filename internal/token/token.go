package token

import (
	"ryl/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Assign, EqEq, Bang, BangEq,
		Lt, LtEq, Gt, GtEq, Amp, Pipe, Caret, AndAnd, OrOr, Question,
		Colon, ColonColon, Semicolon, Comma, Dot, DotDot, Arrow, FatArrow,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket, At, Hash, Underscore:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwMod, KwUse, KwPub, KwCrate, KwSuper, KwSelf, KwStruct, KwEnum,
		KwFn, KwConst, KwType, KwAs, KwLet, KwReturn, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsPathMarker reports whether the token may open a path as a position marker.
func (t Token) IsPathMarker() bool {
	switch t.Kind {
	case KwCrate, KwSuper, KwSelf:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
