package parser

import (
	"ryl/internal/diag"
	"ryl/internal/source"
	"ryl/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan — возвращает лучший span для диагностики
// Если текущий токен EOF или Invalid с нулевой длиной, используем позицию после lastSpan
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Start == peek.Span.End {
		if p.lastSpan.End > 0 {
			return source.Span{
				File:  p.lastSpan.File,
				Start: p.lastSpan.End,
				End:   p.lastSpan.End,
			}
		}
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter != nil {
		if sev == diag.SevError {
			p.opts.CurrentErrors++
		}
		if !p.opts.Enough() {
			p.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
			return true
		}
		return false // достигли максимального количества ошибок
	}
	return false // нет reporter - ничего не записали
}

// skipBalancedBraces — съедает '{' и всё до парной '}' (учитывая вложенность).
// Возвращает span от '{' до '}' включительно.
func (p *Parser) skipBalancedBraces() source.Span {
	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return open.Span
	}
	depth := 1
	last := open.Span
	for depth > 0 && !p.at(token.EOF) {
		tok := p.advance()
		last = tok.Span
		switch tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		}
	}
	if depth > 0 {
		p.report(diag.SynUnclosedBrace, diag.SevError, open.Span, "unclosed '{'")
	}
	return open.Span.Cover(last)
}

// skipBalancedParens — съедает '(' и всё до парной ')' (учитывая вложенность).
func (p *Parser) skipBalancedParens() source.Span {
	open, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('")
	if !ok {
		return open.Span
	}
	depth := 1
	last := open.Span
	for depth > 0 && !p.at(token.EOF) {
		tok := p.advance()
		last = tok.Span
		switch tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		}
	}
	return open.Span.Cover(last)
}

// skipToSemicolon — съедает токены до ';' (включительно), пропуская
// вложенные скобочные конструкции целиком. Возвращает span ';'.
func (p *Parser) skipToSemicolon(code diag.Code, what string) (source.Span, bool) {
	for !p.at(token.EOF) {
		switch p.lx.Peek().Kind {
		case token.Semicolon:
			return p.advance().Span, true
		case token.LBrace:
			p.skipBalancedBraces()
		default:
			p.advance()
		}
	}
	p.report(code, diag.SevError, p.getDiagnosticSpan(), "expected ';' after "+what)
	return p.getDiagnosticSpan(), false
}
