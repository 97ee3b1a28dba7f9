package symbols

import (
	"strings"

	"ryl/internal/ast"
	"ryl/internal/diag"
	"ryl/internal/source"
)

// segment — один сегмент плоского import-пути.
type segment struct {
	kind ast.SegKind
	name source.StringID
	span source.Span
}

type importState uint8

const (
	stPending importState = iota
	stDone
)

// pendingImport — один лист use-дерева, развёрнутый в плоский путь.
// Группы разветвляют общий префикс: `use a::{b, c};` даёт два импорта.
type pendingImport struct {
	scope     ScopeID // scope, в который импорт вносит связывание
	vis       ast.Visibility
	segs      []segment // префикс пути, без листа
	leaf      segment
	alias     source.StringID
	aliasSpan source.Span
	inGroup   bool // лист стоял внутри {}
	span      source.Span

	state importState

	// куда упёрлось последнее трассирование (для классификации зависших)
	blockScope   ScopeID
	blockName    source.StringID
	blockSpan    source.Span
	blockLexical bool // поиск шёл по цепочке scope, а не в одном модуле
}

// flattenUse разворачивает use-дерево в плоские импорты рабочего списка.
func (r *Resolver) flattenUse(scope ScopeID, u *ast.UseItem) {
	r.flattenTree(scope, u.Visibility, nil, u.Root, false)
}

func (r *Resolver) flattenTree(scope ScopeID, vis ast.Visibility, prefix []segment, id ast.UseTreeID, inGroup bool) {
	t := r.arenas.Items.UseTree(id)
	if t == nil {
		return
	}
	switch t.Kind {
	case ast.UseTreePath:
		// копия префикса: группы ниже разветвляют путь
		next := make([]segment, 0, len(prefix)+1)
		next = append(next, prefix...)
		next = append(next, segment{kind: t.Seg.Kind, name: t.Seg.Name, span: t.Seg.Span})
		r.flattenTree(scope, vis, next, t.Child, inGroup)
	case ast.UseTreeGroup:
		for _, sub := range t.Group {
			r.flattenTree(scope, vis, prefix, sub, true)
		}
	case ast.UseTreeName, ast.UseTreeSelf:
		span := t.Span
		if len(prefix) > 0 {
			span = prefix[0].span.Cover(t.Span)
		}
		r.pending = append(r.pending, pendingImport{
			scope:     scope,
			vis:       vis,
			segs:      prefix,
			leaf:      segment{kind: t.Seg.Kind, name: t.Seg.Name, span: t.Seg.Span},
			alias:     t.Alias,
			aliasSpan: t.AliasSpan,
			inGroup:   inGroup,
			span:      span,
		})
	}
}

// validate проверяет позиции спец-сегментов пути до любого трассирования.
// Ошибка здесь окончательная: импорт снимается с рабочего списка.
func (r *Resolver) validate(imp *pendingImport) bool {
	for i, seg := range imp.segs {
		switch seg.kind {
		case ast.SegCrate:
			if i != 0 {
				r.reportMarkerPosition("crate", seg.span)
				return false
			}
		case ast.SegSelfLower:
			if i != 0 {
				r.reportMarkerPosition("self", seg.span)
				return false
			}
		case ast.SegSuper:
			// цепочка super допустима только в начале пути
			if i != 0 && imp.segs[i-1].kind != ast.SegSuper {
				r.reportMarkerPosition("super", seg.span)
				return false
			}
		}
	}

	switch imp.leaf.kind {
	case ast.SegSelfLower:
		if !imp.inGroup {
			diag.ReportError(r.opts.Reporter, diag.ResSelfNotInGroup, imp.leaf.span,
				"`self` imports are only allowed within a { } list").
				Emit()
			return false
		}
		if len(imp.segs) == 0 {
			diag.ReportError(r.opts.Reporter, diag.ResSelfInGroupAtRoot, imp.leaf.span,
				"`self` import can only appear in an import list with a non-empty prefix").
				Emit()
			return false
		}
	case ast.SegCrate, ast.SegSuper:
		if imp.leaf.kind == ast.SegCrate && len(imp.segs) != 0 {
			r.reportMarkerPosition("crate", imp.leaf.span)
			return false
		}
		if imp.leaf.kind == ast.SegSuper && len(imp.segs) != 0 && imp.segs[len(imp.segs)-1].kind != ast.SegSuper {
			r.reportMarkerPosition("super", imp.leaf.span)
			return false
		}
		// `use crate;` / `use super::super;` — модуль без собственного
		// имени в точке импорта, алиас обязателен
		if imp.alias == source.NoStringID {
			kw := imp.leaf.kind.String()
			diag.ReportError(r.opts.Reporter, diag.ResSelfNeedsAlias, imp.leaf.span,
				"`"+kw+"` imports need to be explicitly named: `use "+kw+" as name;`").
				Emit()
			return false
		}
	}
	return true
}

func (r *Resolver) reportMarkerPosition(kw string, sp source.Span) {
	diag.ReportError(r.opts.Reporter, diag.ResMarkerPosition, sp,
		"`"+kw+"` in paths can only be used at the start of a path").
		Emit()
}

// pathString печатает плоский путь импорта для сообщений об ошибках.
func (r *Resolver) pathString(imp *pendingImport) string {
	var sb strings.Builder
	for _, seg := range imp.segs {
		sb.WriteString(r.segString(seg))
		sb.WriteString("::")
	}
	sb.WriteString(r.segString(imp.leaf))
	return sb.String()
}

func (r *Resolver) segString(seg segment) string {
	if seg.kind == ast.SegIdent {
		return r.table.name(seg.name)
	}
	return seg.kind.String()
}
