package driver

import (
	"path/filepath"

	"ryl/internal/ast"
	"ryl/internal/diag"
	"ryl/internal/lexer"
	"ryl/internal/parser"
	"ryl/internal/source"
	"ryl/internal/symbols"
)

const defaultMaxDiagnostics = 256

// Options настраивают один проход проверки.
type Options struct {
	// CrateName — имя корневого модуля; пустая строка означает "crate".
	CrateName string

	// MaxDiagnostics ограничивает размер сумки; 0 — значение по умолчанию.
	MaxDiagnostics int

	// Cache ускоряет поиск файлов модулей между запусками; nil — без кэша.
	Cache *DiskCache
}

// Result — итог проверки одного корневого файла.
type Result struct {
	EntryPath string
	FileSet   *source.FileSet
	Builder   *ast.Builder
	Entry     ast.FileID
	Table     *symbols.Table
	Bag       *diag.Bag

	// Fatal: раскладка модулей по файлам не удалась, разрешение имён
	// не выполнялось и Table равен nil.
	Fatal bool
}

// Check прогоняет файл через полный конвейер: загрузка, лексер, парсер,
// подгрузка файлов подмодулей, построение графа областей и разрешение
// импортов. Ошибки компилируемого кода попадают в Bag; error
// возвращается только при отказе самого конвейера.
func Check(entryPath string, opts Options) (*Result, error) {
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = defaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiags)
	reporter := &diag.BagReporter{Bag: bag}

	fs := source.NewFileSetWithBase(filepath.Dir(entryPath))
	builder := ast.NewBuilder(ast.Hints{})
	res := &Result{
		EntryPath: entryPath,
		FileSet:   fs,
		Builder:   builder,
		Bag:       bag,
	}

	ld := &loader{
		fs:         fs,
		builder:    builder,
		reporter:   reporter,
		cache:      opts.Cache,
		subModules: make(map[ast.ItemID]ast.FileID),
		claimed:    make(map[string]source.Span),
	}
	entry, ok := ld.loadRoot(entryPath)
	if !ok || ld.fatal {
		res.Entry = entry
		res.Fatal = true
		return res, nil
	}
	res.Entry = entry

	r := symbols.NewResolver(builder, symbols.Options{
		Reporter:   reporter,
		CrateName:  opts.CrateName,
		SubModules: ld.subModules,
	})
	r.Build(entry)
	r.Resolve()
	res.Table = r.Table()
	return res, nil
}

func parseOne(fs *source.FileSet, id source.FileID, builder *ast.Builder, reporter diag.Reporter) ast.FileID {
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: reporter})
	return parser.ParseFile(fs, lx, builder, parser.Options{Reporter: reporter}).File
}
