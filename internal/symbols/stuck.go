package symbols

import (
	"ryl/internal/ast"
	"ryl/internal/diag"
	"ryl/internal/source"
)

// reportStuck классифицирует импорты, оставшиеся после неподвижной точки.
// Импорт, упёршийся в имя, которое должен был бы дать другой зависший
// импорт, и замкнутый через такие рёбра в цикл — циклический; всё
// остальное — неразрешённый путь.
func (r *Resolver) reportStuck() {
	var stuck []int
	for i := range r.pending {
		if r.pending[i].state == stPending {
			stuck = append(stuck, i)
		}
	}
	if len(stuck) == 0 {
		return
	}

	edges := make(map[int][]int, len(stuck))
	for _, i := range stuck {
		imp := &r.pending[i]
		for _, j := range stuck {
			if i == j {
				continue
			}
			other := &r.pending[j]
			if r.boundName(other) != imp.blockName {
				continue
			}
			if other.scope == imp.blockScope ||
				(imp.blockLexical && r.table.isInside(imp.blockScope, other.scope)) {
				edges[i] = append(edges[i], j)
			}
		}
	}

	onCycle := r.findCycles(stuck, edges)
	for _, i := range stuck {
		imp := &r.pending[i]
		imp.state = stDone
		path := r.pathString(imp)
		if onCycle[i] {
			diag.ReportError(r.opts.Reporter, diag.ResImportCycle, imp.span,
				"import cycle detected while resolving `"+path+"`").
				WithLabel(imp.blockSpan, "cannot resolve `"+r.table.name(imp.blockName)+"`").
				WithNote("this import depends on itself through other imports").
				Emit()
			continue
		}
		diag.ReportError(r.opts.Reporter, diag.ResUnresolvedImport, imp.span,
			"unresolved import `"+path+"`").
			WithLabel(imp.blockSpan, r.stuckLabel(imp)).
			Emit()
	}
}

// findCycles — трёхцветный обход: вершины, замкнутые через рёбра
// блокировок, попадают в результат.
func (r *Resolver) findCycles(stuck []int, edges map[int][]int) map[int]bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[int]uint8, len(stuck))
	onCycle := make(map[int]bool)
	var stack []int

	var dfs func(i int)
	dfs = func(i int) {
		color[i] = gray
		stack = append(stack, i)
		for _, j := range edges[i] {
			switch color[j] {
			case gray:
				for k := len(stack) - 1; k >= 0; k-- {
					onCycle[stack[k]] = true
					if stack[k] == j {
						break
					}
				}
			case white:
				dfs(j)
			}
		}
		stack = stack[:len(stack)-1]
		color[i] = black
	}
	for _, i := range stuck {
		if color[i] == white {
			dfs(i)
		}
	}
	return onCycle
}

func (r *Resolver) stuckLabel(imp *pendingImport) string {
	n := r.table.name(imp.blockName)
	if imp.blockLexical {
		return "no `" + n + "` in this scope"
	}
	mod := imp.blockScope
	if mod == r.table.crate {
		return "no `" + n + "` in the crate root"
	}
	owner := r.table.Symbols.Get(r.table.Scopes.Get(mod).Sym)
	return "no `" + n + "` in `" + r.table.name(owner.Name) + "`"
}

// boundName — имя, которое импорт внесёт в свой scope после разрешения.
func (r *Resolver) boundName(imp *pendingImport) source.StringID {
	if imp.alias != source.NoStringID {
		return imp.alias
	}
	if imp.leaf.kind == ast.SegIdent {
		return imp.leaf.name
	}
	// `self` без алиаса именуется последним идентификатором префикса
	for i := len(imp.segs) - 1; i >= 0; i-- {
		if imp.segs[i].kind == ast.SegIdent {
			return imp.segs[i].name
		}
	}
	return source.NoStringID
}
