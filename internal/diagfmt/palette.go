package diagfmt

import (
	"fmt"

	"github.com/fatih/color"

	"ryl/internal/diag"
)

type paintFunc func(a ...interface{}) string

// palette — набор раскрасок для частей отчёта. При выключенном цвете все
// функции тождественны, вывод байт-в-байт стабилен.
type palette struct {
	errText   paintFunc
	warnText  paintFunc
	infoText  paintFunc
	gutter    paintFunc
	secondary paintFunc
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{
			errText:   fmt.Sprint,
			warnText:  fmt.Sprint,
			infoText:  fmt.Sprint,
			gutter:    fmt.Sprint,
			secondary: fmt.Sprint,
		}
	}
	mk := func(attrs ...color.Attribute) paintFunc {
		c := color.New(attrs...)
		// не зависим от определения TTY внутри библиотеки
		c.EnableColor()
		return c.Sprint
	}
	return palette{
		errText:   mk(color.FgRed, color.Bold),
		warnText:  mk(color.FgYellow, color.Bold),
		infoText:  mk(color.FgCyan, color.Bold),
		gutter:    mk(color.FgBlue, color.Bold),
		secondary: mk(color.FgBlue),
	}
}

// severityPaint возвращает раскраску заголовка и первичных маркеров.
func (p palette) severityPaint(sev diag.Severity) paintFunc {
	switch sev {
	case diag.SevError:
		return p.errText
	case diag.SevWarning:
		return p.warnText
	default:
		return p.infoText
	}
}
