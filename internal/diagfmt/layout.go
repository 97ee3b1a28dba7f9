package diagfmt

import (
	"strings"
)

// lineLabel — метка на одной строке исходника, в экранных колонках.
type lineLabel struct {
	startCol int
	width    int
	msg      string
	primary  bool
}

// renderLabelRows строит строки подчёркиваний и сообщений для одной строки
// исходника. Чистая функция от списка меток (отсортированных по startCol):
// первая строка — маркеры `^`/`-` с сообщением самой правой метки после
// маркеров; сообщения более ранних меток складываются ниже под вертикальными
// коннекторами, справа налево.
func renderLabelRows(labels []lineLabel, pal palette, prim paintFunc) []string {
	if len(labels) == 0 {
		return nil
	}
	paintFor := func(l lineLabel) paintFunc {
		if l.primary {
			return prim
		}
		return pal.secondary
	}

	var rows []string

	var markers strings.Builder
	col := 0
	for i, l := range labels {
		start := l.startCol
		if start < col {
			start = col
		}
		w := l.width
		if w < 1 {
			w = 1
		}
		markers.WriteString(pad(start - col))
		ch := "-"
		if l.primary {
			ch = "^"
		}
		markers.WriteString(paintFor(l)(strings.Repeat(ch, w)))
		col = start + w
		if i == len(labels)-1 && l.msg != "" {
			markers.WriteString(" ")
			markers.WriteString(paintFor(l)(l.msg))
		}
	}
	rows = append(rows, markers.String())

	// ранние метки с текстом
	var pending []lineLabel
	for _, l := range labels[:len(labels)-1] {
		if l.msg != "" {
			pending = append(pending, l)
		}
	}
	if len(pending) == 0 {
		return rows
	}

	connectors := func(upto int) string {
		var b strings.Builder
		col := 0
		for _, l := range pending[:upto] {
			b.WriteString(pad(l.startCol - col))
			b.WriteString(paintFor(l)("|"))
			col = l.startCol + 1
		}
		return b.String()
	}

	rows = append(rows, connectors(len(pending)))
	for i := len(pending) - 1; i >= 0; i-- {
		l := pending[i]
		var b strings.Builder
		b.WriteString(connectors(i))
		used := 0
		if i > 0 {
			used = pending[i-1].startCol + 1
		}
		b.WriteString(pad(l.startCol - used))
		b.WriteString(paintFor(l)(l.msg))
		rows = append(rows, b.String())
	}
	return rows
}
