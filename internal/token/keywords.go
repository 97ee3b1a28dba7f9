package token

var keywords = map[string]Kind{
	"mod":    KwMod,
	"use":    KwUse,
	"pub":    KwPub,
	"crate":  KwCrate,
	"super":  KwSuper,
	"self":   KwSelf,
	"struct": KwStruct,
	"enum":   KwEnum,
	"fn":     KwFn,
	"const":  KwConst,
	"type":   KwType,
	"as":     KwAs,
	"let":    KwLet,
	"return": KwReturn,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
