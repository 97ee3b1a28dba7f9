package diagfmt

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"ryl/internal/diag"
	"ryl/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид в порядке,
// в котором они были произведены (без пересортировки).
//
// Для каждой диагностики:
//
//	severity[CODE]: message        (код опускается у предупреждений)
//	  --> path:line:col            (первичный span)
//	   |
//	 N | строка исходника
//	   |     ^^^^ подчёркивание с сообщением
//
// Вторичные метки подчёркиваются `-`; метки из других файлов вводятся
// строкой ` ::: path:line:col`; разрыв между несоседними строками — `...`.
// Вывод — чистая функция от входа: одинаковый вход даёт идентичные байты.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	var sb strings.Builder
	for _, d := range diags {
		renderDiagnostic(&sb, d, fs, opts, pal)
	}
	_, _ = io.WriteString(w, sb.String())
}

// PrettyBag — удобная обёртка над Pretty для целого Bag.
func PrettyBag(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	Pretty(w, bag.Items(), fs, opts)
}

type fileGroup struct {
	file   source.FileID
	labels []diag.Label
}

func renderDiagnostic(sb *strings.Builder, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	prim := pal.severityPaint(d.Severity)

	header := d.Severity.Label()
	if d.Severity == diag.SevError && d.Code != diag.UnknownCode {
		header += "[" + d.Code.ID() + "]"
	}
	sb.WriteString(prim(header))
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	sb.WriteByte('\n')

	labels := d.Labels
	if !hasPrimaryLabel(labels, d.Primary) {
		labels = append([]diag.Label{{Span: d.Primary}}, labels...)
	}
	groups := groupByFile(labels, d.Primary.File)
	gw := gutterWidth(groups, fs)

	start, _ := fs.Resolve(d.Primary)
	sb.WriteString(pad(gw))
	sb.WriteString(pal.gutter("--> "))
	sb.WriteString(locator(fs, d.Primary.File, start, opts))
	sb.WriteByte('\n')

	for gi := range groups {
		g := &groups[gi]
		if gi > 0 {
			st, _ := fs.Resolve(g.labels[0].Span)
			sb.WriteString(pad(gw))
			sb.WriteString(pal.gutter("::: "))
			sb.WriteString(locator(fs, g.file, st, opts))
			sb.WriteByte('\n')
		}
		sb.WriteString(pad(gw))
		sb.WriteString(pal.gutter(" |"))
		sb.WriteByte('\n')
		renderFileGroup(sb, g, fs, opts, pal, prim, gw, d.Primary)
	}

	if opts.ShowNotes && len(d.Notes) > 0 {
		sb.WriteString(pad(gw))
		sb.WriteString(pal.gutter(" |"))
		sb.WriteByte('\n')
		for _, n := range d.Notes {
			sb.WriteString(pad(gw))
			sb.WriteString(pal.gutter(" = "))
			sb.WriteString("note: ")
			sb.WriteString(n)
			sb.WriteByte('\n')
		}
	}
	sb.WriteByte('\n')
}

func locator(fs *source.FileSet, file source.FileID, pos source.LineCol, opts PrettyOpts) string {
	f := fs.Get(file)
	return fmt.Sprintf("%s:%d:%d", f.FormatPath(opts.PathMode.name(), fs.BaseDir()), pos.Line, pos.Col)
}

func renderFileGroup(sb *strings.Builder, g *fileGroup, fs *source.FileSet, opts PrettyOpts, pal palette, prim paintFunc, gw int, primary source.Span) {
	f := fs.Get(g.file)

	byLine := make(map[uint32][]diag.Label)
	var lines []uint32
	for _, l := range g.labels {
		st, _ := fs.Resolve(l.Span)
		if _, ok := byLine[st.Line]; !ok {
			lines = append(lines, st.Line)
		}
		byLine[st.Line] = append(byLine[st.Line], l)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i] < lines[j] })

	prev := uint32(0)
	for _, ln := range lines {
		if prev != 0 && ln > prev+1 {
			sb.WriteString(pal.gutter("..."))
			sb.WriteByte('\n')
		}
		prev = ln

		text := expandTabs(f.GetLine(ln))
		if opts.Width > 0 {
			text = truncateCells(text, int(opts.Width))
		}
		sb.WriteString(pal.gutter(fmt.Sprintf("%*d | ", gw, ln)))
		sb.WriteString(text)
		sb.WriteByte('\n')

		lls := lineLabelsFor(f, ln, byLine[ln], primary, int(opts.Width))
		for _, row := range renderLabelRows(lls, pal, prim) {
			sb.WriteString(pad(gw))
			sb.WriteString(pal.gutter(" | "))
			sb.WriteString(row)
			sb.WriteByte('\n')
		}
	}
}

// lineLabelsFor пересчитывает байтовые span в экранные колонки строки.
// Многострочный span подчёркивается на своей первой строке до её конца.
func lineLabelsFor(f *source.File, ln uint32, labels []diag.Label, primary source.Span, maxCells int) []lineLabel {
	raw := f.GetLine(ln)
	lineStart := int(lineStartOffset(f, ln))

	out := make([]lineLabel, 0, len(labels))
	for _, l := range labels {
		s := int(l.Span.Start) - lineStart
		e := int(l.Span.End) - lineStart
		if s < 0 {
			s = 0
		}
		if s > len(raw) {
			s = len(raw)
		}
		if e > len(raw) {
			e = len(raw)
		}
		if e < s {
			e = s
		}
		startCol := cellWidth(raw[:s])
		w := cellWidth(raw[s:e])
		if w < 1 {
			w = 1
		}
		if maxCells > 0 && startCol >= maxCells {
			startCol = maxCells
			w = 1
		}
		out = append(out, lineLabel{
			startCol: startCol,
			width:    w,
			msg:      l.Msg,
			primary:  l.Span == primary,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].startCol < out[j].startCol })
	return out
}

func hasPrimaryLabel(labels []diag.Label, primary source.Span) bool {
	for _, l := range labels {
		if l.Span == primary {
			return true
		}
	}
	return false
}

func groupByFile(labels []diag.Label, primary source.FileID) []fileGroup {
	groups := []fileGroup{{file: primary}}
	idx := map[source.FileID]int{primary: 0}
	for _, l := range labels {
		i, ok := idx[l.Span.File]
		if !ok {
			i = len(groups)
			idx[l.Span.File] = i
			groups = append(groups, fileGroup{file: l.Span.File})
		}
		groups[i].labels = append(groups[i].labels, l)
	}
	return groups
}

func gutterWidth(groups []fileGroup, fs *source.FileSet) int {
	maxLine := uint32(1)
	for _, g := range groups {
		for _, l := range g.labels {
			st, en := fs.Resolve(l.Span)
			if st.Line > maxLine {
				maxLine = st.Line
			}
			if en.Line > maxLine {
				maxLine = en.Line
			}
		}
	}
	return len(strconv.FormatUint(uint64(maxLine), 10))
}
