package symbols

import (
	"ryl/internal/ast"
	"ryl/internal/diag"
)

// Options настраивают построение графа областей видимости.
type Options struct {
	Reporter diag.Reporter

	// CrateName — имя корневого модуля; пустая строка означает "crate".
	CrateName string

	// SubModules отображает безтеловые `mod name;` на AST-файл с их
	// содержимым. Заполняется загрузчиком; отсутствующая запись даёт
	// пустой модуль (сама ошибка раскладки файлов отчитывается раньше).
	SubModules map[ast.ItemID]ast.FileID
}

// Resolver строит граф областей видимости и доводит импорты до
// неподвижной точки.
type Resolver struct {
	arenas  *ast.Builder
	table   *Table
	opts    Options
	pending []pendingImport
}

func NewResolver(arenas *ast.Builder, opts Options) *Resolver {
	return &Resolver{
		arenas: arenas,
		table:  NewTable(arenas.StringsInterner),
		opts:   opts,
	}
}

// Table возвращает построенную таблицу. Валидна после Build.
func (r *Resolver) Table() *Table { return r.table }
