package parser

import (
	"ryl/internal/ast"
	"ryl/internal/diag"
	"ryl/internal/source"
	"ryl/internal/token"
)

// parseModItem распознаёт формы:
//
//	mod name;          // модуль во внешнем файле
//	mod name { ... }   // инлайн модуль
func (p *Parser) parseModItem(vis ast.Visibility, visTok token.Token, hasVis bool) (ast.ItemID, bool) {
	modTok := p.advance() // KwMod

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}

	start := modTok.Span
	if hasVis {
		start = visTok.Span
	}

	if p.at(token.LBrace) {
		open := p.advance()
		items, last := p.parseItemsUntilRBrace(open.Span)
		bodySpan := open.Span.Cover(last)
		return p.arenas.Items.NewMod(start.Cover(last), ast.ModItem{
			Name:       name,
			NameSpan:   nameSpan,
			Visibility: vis,
			HasBody:    true,
			Items:      items,
			BodySpan:   bodySpan,
		}), true
	}

	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' or '{' after module name")
	if !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewMod(start.Cover(semi.Span), ast.ModItem{
		Name:       name,
		NameSpan:   nameSpan,
		Visibility: vis,
		HasBody:    false,
	}), true
}

// parseItemsUntilRBrace — разбирает список item до парной '}'.
// Возвращает собранные item и span закрывающей скобки (или последнего токена).
func (p *Parser) parseItemsUntilRBrace(open source.Span) ([]ast.ItemID, source.Span) {
	items := make([]ast.ItemID, 0, 4)
	for {
		switch {
		case p.at(token.RBrace):
			return items, p.advance().Span
		case p.at(token.EOF):
			p.report(diag.SynUnclosedBrace, diag.SevError, open, "unclosed '{'")
			return items, p.getDiagnosticSpan()
		default:
			itemID, ok := p.parseItem()
			if !ok {
				p.resyncInBlock()
			} else {
				items = append(items, itemID)
			}
		}
	}
}

// resyncInBlock — восстановление внутри '{...}': прокручиваем до ';'
// (съедаем), стартера item, '}' или EOF; вложенные блоки пропускаем целиком.
func (p *Parser) resyncInBlock() {
	for !p.at(token.EOF) {
		k := p.lx.Peek().Kind
		if k == token.Semicolon {
			p.advance()
			return
		}
		if k == token.RBrace || isItemStarter(k) {
			return
		}
		if k == token.LBrace {
			p.skipBalancedBraces()
			continue
		}
		p.advance()
	}
}
