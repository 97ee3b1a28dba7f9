package parser

import (
	"ryl/internal/ast"
	"ryl/internal/diag"
	"ryl/internal/token"
)

// parseVisibility распознаёт 'pub', 'pub(crate)' и 'pub(super)'.
// Если модификатора нет, возвращает VisPrivate и hasVis=false.
func (p *Parser) parseVisibility() (ast.Visibility, token.Token, bool) {
	if !p.at(token.KwPub) {
		return ast.VisPrivate, token.Token{}, false
	}
	pubTok := p.advance()
	if !p.at(token.LParen) {
		return ast.VisPublic, pubTok, true
	}
	p.advance() // '('
	vis := ast.VisPublic
	switch p.lx.Peek().Kind {
	case token.KwCrate:
		p.advance()
		vis = ast.VisCrate
	case token.KwSuper:
		p.advance()
		vis = ast.VisSuper
	default:
		p.err(diag.SynUnexpectedToken, "expected 'crate' or 'super' in visibility restriction, got '"+p.lx.Peek().Text+"'")
	}
	p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' after visibility restriction")
	return vis, pubTok, true
}
