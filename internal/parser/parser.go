package parser

import (
	"slices"

	"ryl/internal/ast"
	"ryl/internal/diag"
	"ryl/internal/lexer"
	"ryl/internal/source"
	"ryl/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer // поток токенов (Peek/Next)
	arenas   *ast.Builder // построитель аренных узлов
	file     ast.FileID   // текущий FileID (в AST)
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile — входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	startSpan := lx.Peek().Span
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(startSpan),
		fs:       fs,
		opts:     opts,
		lastSpan: startSpan,
	}

	p.parseItems()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseItems — основной цикл верхнего уровня: пока не EOF — parseItem.
func (p *Parser) parseItems() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		itemID, ok := p.parseItem()
		if !ok {
			p.resyncTop()
		} else {
			p.arenas.PushItem(p.file, itemID)
		}
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lx.Peek().Span)
}

// parseItem выбирает по первому токену нужный распознаватель конструкции.
func (p *Parser) parseItem() (ast.ItemID, bool) {
	vis, visTok, hasVis := p.parseVisibility()

	switch p.lx.Peek().Kind {
	case token.KwMod:
		return p.parseModItem(vis, visTok, hasVis)
	case token.KwUse:
		return p.parseUseItem(vis, visTok, hasVis)
	case token.KwStruct:
		return p.parseStructItem(vis, visTok, hasVis)
	case token.KwEnum:
		return p.parseEnumItem(vis, visTok, hasVis)
	case token.KwFn:
		return p.parseFnItem(vis, visTok, hasVis)
	case token.KwConst:
		return p.parseConstItem(vis, visTok, hasVis)
	case token.KwType:
		return p.parseTypeAliasItem(vis, visTok, hasVis)
	default:
		if hasVis {
			p.err(diag.SynUnexpectedToken, "expected item after visibility modifier, got '"+p.lx.Peek().Text+"'")
			return ast.NoItemID, false
		}
		p.report(diag.SynUnexpectedTopLevel, diag.SevError, p.lx.Peek().Span, "unexpected top-level construct")
		return ast.NoItemID, false
	}
}

// resyncTop — восстановление после ошибки:
// прокручиваем до ';' ИЛИ до стартового токена следующего item ИЛИ EOF.
func (p *Parser) resyncTop() {
	for !p.at(token.EOF) {
		k := p.lx.Peek().Kind
		if k == token.Semicolon {
			p.advance()
			return
		}
		if isItemStarter(k) {
			return
		}
		if k == token.LBrace {
			// пропускаем блок целиком, чтобы не зацепиться за его содержимое
			p.skipBalancedBraces()
			continue
		}
		p.advance()
	}
}

// isItemStarter — принадлежит ли токен стартерам item.
func isItemStarter(k token.Kind) bool {
	switch k {
	case token.KwMod, token.KwUse, token.KwStruct, token.KwEnum,
		token.KwFn, token.KwConst, token.KwType, token.KwPub:
		return true
	default:
		return false
	}
}

// parseIdent — утилита: ожидает Ident и интернирует его.
// На ошибке — репорт SynExpectIdentifier.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		id := p.arenas.StringsInterner.Intern(tok.Text)
		return id, tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.lx.Peek().Text+"\"")
	return source.NoStringID, p.getDiagnosticSpan(), false
}
