package parser

import (
	"ryl/internal/ast"
	"ryl/internal/diag"
	"ryl/internal/source"
	"ryl/internal/token"
)

// parseStructItem — 'struct' Ident (';' | '(...)' ';' | '{...}').
// Поля для разрешения имён не нужны, тело пропускаем.
func (p *Parser) parseStructItem(vis ast.Visibility, visTok token.Token, hasVis bool) (ast.ItemID, bool) {
	structTok := p.advance() // KwStruct

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}

	start := structTok.Span
	if hasVis {
		start = visTok.Span
	}

	end := nameSpan
	switch p.lx.Peek().Kind {
	case token.Semicolon:
		end = p.advance().Span
	case token.LBrace:
		end = p.skipBalancedBraces()
	case token.LParen:
		p.skipBalancedParens()
		semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after tuple struct")
		if !ok {
			return ast.NoItemID, false
		}
		end = semi.Span
	default:
		p.err(diag.SynUnexpectedToken, "expected ';', '(' or '{' after struct name")
		return ast.NoItemID, false
	}

	return p.arenas.Items.NewStruct(start.Cover(end), ast.StructItem{
		Name:       name,
		NameSpan:   nameSpan,
		Visibility: vis,
	}), true
}

// parseEnumItem — 'enum' Ident '{...}'. Варианты пропускаем.
func (p *Parser) parseEnumItem(vis ast.Visibility, visTok token.Token, hasVis bool) (ast.ItemID, bool) {
	enumTok := p.advance() // KwEnum

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}

	start := enumTok.Span
	if hasVis {
		start = visTok.Span
	}

	end := nameSpan
	switch p.lx.Peek().Kind {
	case token.Semicolon:
		end = p.advance().Span
	case token.LBrace:
		end = p.skipBalancedBraces()
	default:
		p.err(diag.SynUnexpectedToken, "expected ';' or '{' after enum name")
		return ast.NoItemID, false
	}

	return p.arenas.Items.NewEnum(start.Cover(end), ast.EnumItem{
		Name:       name,
		NameSpan:   nameSpan,
		Visibility: vis,
	}), true
}

// parseFnItem — 'fn' Ident '(...)' ('->' ...)? ('{' body '}' | ';').
// Сигнатуру пропускаем; в теле собираем только вложенные item.
func (p *Parser) parseFnItem(vis ast.Visibility, visTok token.Token, hasVis bool) (ast.ItemID, bool) {
	fnTok := p.advance() // KwFn

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}

	start := fnTok.Span
	if hasVis {
		start = visTok.Span
	}

	if p.at(token.LParen) {
		p.skipBalancedParens()
	}
	// возвращаемый тип и прочее до тела
	for !p.atOr(token.LBrace, token.Semicolon, token.EOF) {
		p.advance()
	}

	var items []ast.ItemID
	end := nameSpan
	if p.at(token.LBrace) {
		open := p.advance()
		items, end = p.parseFnBody(open.Span)
	} else {
		semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected function body or ';'")
		if !ok {
			return ast.NoItemID, false
		}
		end = semi.Span
	}

	return p.arenas.Items.NewFn(start.Cover(end), ast.FnItem{
		Name:       name,
		NameSpan:   nameSpan,
		Visibility: vis,
		Items:      items,
		BodySpan:   start.Cover(end),
	}), true
}

// parseFnBody — пропускает тело функции, выхватывая вложенные item
// (mod/use/struct/...). Остальные токены игнорируются; вложенные блоки,
// не начинающиеся с item-стартера, пропускаются целиком.
func (p *Parser) parseFnBody(open source.Span) ([]ast.ItemID, source.Span) {
	var items []ast.ItemID
	for {
		switch {
		case p.at(token.RBrace):
			return items, p.advance().Span
		case p.at(token.EOF):
			p.report(diag.SynUnclosedBrace, diag.SevError, open, "unclosed function body")
			return items, p.getDiagnosticSpan()
		case isItemStarter(p.lx.Peek().Kind):
			itemID, ok := p.parseItem()
			if !ok {
				p.resyncInBlock()
			} else {
				items = append(items, itemID)
			}
		case p.at(token.LBrace):
			inner := p.advance()
			nested, _ := p.parseFnBody(inner.Span)
			items = append(items, nested...)
		default:
			p.advance()
		}
	}
}

// parseConstItem — 'const' Ident ':' ... '=' ... ';'. Инициализатор пропускаем.
func (p *Parser) parseConstItem(vis ast.Visibility, visTok token.Token, hasVis bool) (ast.ItemID, bool) {
	constTok := p.advance() // KwConst

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}

	start := constTok.Span
	if hasVis {
		start = visTok.Span
	}

	semi, ok := p.skipToSemicolon(diag.SynExpectSemicolon, "const declaration")
	if !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewConst(start.Cover(semi), ast.ConstItem{
		Name:       name,
		NameSpan:   nameSpan,
		Visibility: vis,
	}), true
}

// parseTypeAliasItem — 'type' Ident '=' ... ';'. Цель пропускаем.
func (p *Parser) parseTypeAliasItem(vis ast.Visibility, visTok token.Token, hasVis bool) (ast.ItemID, bool) {
	typeTok := p.advance() // KwType

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}

	start := typeTok.Span
	if hasVis {
		start = visTok.Span
	}

	semi, ok := p.skipToSemicolon(diag.SynExpectSemicolon, "type alias")
	if !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewTypeAlias(start.Cover(semi), ast.TypeAliasItem{
		Name:       name,
		NameSpan:   nameSpan,
		Visibility: vis,
	}), true
}
