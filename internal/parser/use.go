package parser

import (
	"ryl/internal/ast"
	"ryl/internal/diag"
	"ryl/internal/token"
)

// parseUseItem распознаёт формы:
//
//	use a::b;
//	use a::b as c;
//	use a::{b, c as d};
//	use a::{self as e, b::{c, d}};
//	use crate::a;  use super::super::a;  use self::a;
func (p *Parser) parseUseItem(vis ast.Visibility, visTok token.Token, hasVis bool) (ast.ItemID, bool) {
	useTok := p.advance() // KwUse

	root, ok := p.parseUseTree()
	if !ok {
		return ast.NoItemID, false
	}

	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after use declaration")
	if !ok {
		return ast.NoItemID, false
	}

	start := useTok.Span
	if hasVis {
		start = visTok.Span
	}
	return p.arenas.Items.NewUse(start.Cover(semi.Span), ast.UseItem{
		Visibility: vis,
		Root:       root,
	}), true
}

// parseUseTree — рекурсивный разбор use-дерева.
func (p *Parser) parseUseTree() (ast.UseTreeID, bool) {
	if p.at(token.LBrace) {
		return p.parseUseGroup()
	}

	seg, ok := p.parseUseSeg()
	if !ok {
		return ast.NoUseTreeID, false
	}

	if p.at(token.ColonColon) {
		p.advance()
		child, ok := p.parseUseTree()
		if !ok {
			return ast.NoUseTreeID, false
		}
		childSpan := p.arenas.Items.UseTree(child).Span
		return p.arenas.Items.NewUseTree(ast.UseTree{
			Kind:  ast.UseTreePath,
			Seg:   seg,
			Child: child,
			Span:  seg.Span.Cover(childSpan),
		}), true
	}

	// лист: опциональный алиас
	node := ast.UseTree{
		Kind: ast.UseTreeName,
		Seg:  seg,
		Span: seg.Span,
	}
	if seg.Kind == ast.SegSelfLower {
		node.Kind = ast.UseTreeSelf
	}
	if p.at(token.KwAs) {
		p.advance()
		alias, aliasSpan, ok := p.parseIdent()
		if !ok {
			p.err(diag.SynExpectItemAfterAs, "expected identifier after 'as'")
			return ast.NoUseTreeID, false
		}
		node.Alias = alias
		node.AliasSpan = aliasSpan
		node.Span = node.Span.Cover(aliasSpan)
	}
	return p.arenas.Items.NewUseTree(node), true
}

// parseUseGroup — '{' tree (',' tree)* ','? '}'.
func (p *Parser) parseUseGroup() (ast.UseTreeID, bool) {
	open := p.advance() // LBrace

	group := make([]ast.UseTreeID, 0, 2)
	if p.at(token.RBrace) {
		p.report(diag.SynEmptyUseGroup, diag.SevWarning, open.Span.Cover(p.lx.Peek().Span), "empty use group imports nothing")
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		sub, ok := p.parseUseTree()
		if !ok {
			return ast.NoUseTreeID, false
		}
		group = append(group, sub)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	closing, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close use group")
	if !ok {
		return ast.NoUseTreeID, false
	}
	return p.arenas.Items.NewUseTree(ast.UseTree{
		Kind:  ast.UseTreeGroup,
		Group: group,
		Span:  open.Span.Cover(closing.Span),
	}), true
}

// parseUseSeg — один сегмент пути: Ident | crate | super | self.
func (p *Parser) parseUseSeg() (ast.UseSeg, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return ast.UseSeg{
			Kind: ast.SegIdent,
			Name: p.arenas.StringsInterner.Intern(tok.Text),
			Span: tok.Span,
		}, true
	case token.KwCrate:
		p.advance()
		return ast.UseSeg{Kind: ast.SegCrate, Span: tok.Span}, true
	case token.KwSuper:
		p.advance()
		return ast.UseSeg{Kind: ast.SegSuper, Span: tok.Span}, true
	case token.KwSelf:
		p.advance()
		return ast.UseSeg{Kind: ast.SegSelfLower, Span: tok.Span}, true
	default:
		p.err(diag.SynExpectUseSeg, "expected path segment, got '"+tok.Text+"'")
		return ast.UseSeg{}, false
	}
}
