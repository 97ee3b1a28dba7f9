package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ryl/internal/ast"
	"ryl/internal/diag"
	"ryl/internal/project"
	"ryl/internal/source"
)

// loader подгружает файлы безтеловых `mod name;` рекурсивно, начиная с
// корневого файла. Любая ошибка раскладки (файл не найден, два
// кандидата, файл занят другим модулем) фатальна: дальнейшая загрузка
// и разрешение имён не выполняются.
type loader struct {
	fs       *source.FileSet
	builder  *ast.Builder
	reporter diag.Reporter
	cache    *DiskCache

	subModules map[ast.ItemID]ast.FileID
	claimed    map[string]source.Span // путь файла -> span первого `mod`
	cur        *fileLookups           // кэш поисков текущего файла
	fatal      bool
}

// fileLookups — результаты поиска файлов модулей для одного
// объявляющего файла; dirty помечает расхождение с диском.
type fileLookups struct {
	key     project.Digest
	entries map[string]string
	dirty   bool
}

func (ld *loader) loadRoot(path string) (ast.FileID, bool) {
	fid, err := ld.fs.Load(path)
	if err != nil {
		diag.ReportError(ld.reporter, diag.IOLoadFileError, source.Span{},
			fmt.Sprintf("failed to load %s: %v", path, err)).Emit()
		return ast.NoFileID, false
	}
	astFile := parseOne(ld.fs, fid, ld.builder, ld.reporter)
	ld.claimed[path] = ld.builder.Files.Get(astFile).Span
	ld.loadChildren(astFile, fid, project.ModuleDir(path, true))
	return astFile, true
}

func (ld *loader) loadChildren(file ast.FileID, src source.FileID, moduleDir string) {
	prev := ld.cur
	ld.cur = ld.beginLookups(src)
	for _, itemID := range ld.builder.Files.Get(file).Items {
		ld.loadItem(itemID, moduleDir)
	}
	ld.endLookups()
	ld.cur = prev
}

func (ld *loader) loadItem(itemID ast.ItemID, moduleDir string) {
	if ld.fatal {
		return
	}
	mod, ok := ld.builder.Items.Mod(itemID)
	if !ok {
		return
	}
	name := ld.builder.StringsInterner.MustLookup(mod.Name)
	if mod.HasBody {
		// дочерние файлы инлайн-модуля живут в подкаталоге с его именем
		childDir := filepath.Join(moduleDir, name)
		for _, sub := range mod.Items {
			ld.loadItem(sub, childDir)
		}
		return
	}

	path, ok := ld.lookup(moduleDir, name, mod)
	if !ok {
		return
	}
	if prev, dup := ld.claimed[path]; dup {
		diag.ReportError(ld.reporter, diag.ModDuplicateFile, mod.NameSpan,
			fmt.Sprintf("file %q is loaded as a module more than once", path)).
			WithLabel(prev, "file first loaded here").
			WithLabel(mod.NameSpan, "file loaded again here").
			WithNote("a module file can back only one `mod` declaration").
			Emit()
		ld.fatal = true
		return
	}
	ld.claimed[path] = mod.NameSpan

	fid, err := ld.fs.Load(path)
	if err != nil {
		diag.ReportError(ld.reporter, diag.IOLoadFileError, mod.NameSpan,
			fmt.Sprintf("failed to load %s: %v", path, err)).Emit()
		ld.fatal = true
		return
	}
	astSub := parseOne(ld.fs, fid, ld.builder, ld.reporter)
	ld.subModules[itemID] = astSub
	ld.loadChildren(astSub, fid, project.ModuleDir(path, false))
}

// lookup находит файл для `mod name;`, сперва заглядывая в кэш.
func (ld *loader) lookup(moduleDir, name string, mod *ast.ModItem) (string, bool) {
	key := filepath.Join(moduleDir, name)
	if ld.cur != nil {
		if path, ok := ld.cur.entries[key]; ok {
			if st, err := os.Stat(path); err == nil && st.Mode().IsRegular() {
				return path, true
			}
			// файл исчез с диска — запись устарела
			delete(ld.cur.entries, key)
			ld.cur.dirty = true
		}
	}

	path, cand, err := project.FindModuleFile(moduleDir, name)
	if err != nil {
		ld.reportLookup(err, name, cand, mod)
		ld.fatal = true
		return "", false
	}
	if ld.cur != nil {
		ld.cur.entries[key] = path
		ld.cur.dirty = true
	}
	return path, true
}

func (ld *loader) reportLookup(err error, name string, cand project.Candidates, mod *ast.ModItem) {
	switch {
	case errors.Is(err, project.ErrModuleFileNotFound):
		diag.ReportError(ld.reporter, diag.ModFileNotFound, mod.NameSpan,
			fmt.Sprintf("file not found for module `%s`", name)).
			WithLabel(mod.NameSpan, fmt.Sprintf("no file for module `%s`", name)).
			WithNote(fmt.Sprintf("to load `%s`, create file %q or %q", name, cand.File, cand.Dir)).
			Emit()
	case errors.Is(err, project.ErrModuleFileAmbiguous):
		diag.ReportError(ld.reporter, diag.ModFileAmbiguous, mod.NameSpan,
			fmt.Sprintf("file for module `%s` found at both %q and %q", name, cand.File, cand.Dir)).
			WithLabel(mod.NameSpan, "ambiguous module file").
			WithNote("delete or rename one of them to remove the ambiguity").
			Emit()
	default:
		diag.ReportError(ld.reporter, diag.IOLoadFileError, mod.NameSpan, err.Error()).Emit()
	}
}

func (ld *loader) beginLookups(src source.FileID) *fileLookups {
	if ld.cache == nil {
		return nil
	}
	fl := &fileLookups{
		key:     project.Combine(project.Digest(ld.fs.Get(src).Hash)),
		entries: make(map[string]string),
	}
	if cached, ok := ld.cache.Get(fl.key); ok {
		fl.entries = cached
	}
	return fl
}

func (ld *loader) endLookups() {
	if ld.cur == nil || !ld.cur.dirty {
		return
	}
	// отказ записи кэша не мешает компиляции
	_ = ld.cache.Put(ld.cur.key, ld.cur.entries)
}
