package diagfmt

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
	"github.com/mattn/go-runewidth"

	"ryl/internal/source"
)

// tabCells — ширина табуляции в экранных колонках.
const tabCells = 4

// cellWidth считает экранную ширину строки: табы фиксированной ширины,
// остальное по таблицам runewidth (CJK и прочие широкие руны).
func cellWidth(s string) int {
	w := 0
	for _, r := range s {
		if r == '\t' {
			w += tabCells
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabCells))
}

// truncateCells обрезает строку до maxCells экранных колонок.
func truncateCells(s string, maxCells int) string {
	if cellWidth(s) <= maxCells {
		return s
	}
	w := 0
	var b strings.Builder
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if r == '\t' {
			rw = tabCells
		}
		if w+rw > maxCells-3 {
			break
		}
		w += rw
		b.WriteRune(r)
	}
	return b.String() + "..."
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func lineStartOffset(f *source.File, line uint32) uint32 {
	if line <= 1 {
		return 0
	}
	idx := line - 2
	if int(idx) < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return lenContent
}
