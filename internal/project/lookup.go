package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Candidates — оба допустимых места файла для `mod name;`.
type Candidates struct {
	File string // moduleDir/name.ryl
	Dir  string // moduleDir/name/mod.ryl
}

var (
	// ErrModuleFileNotFound indicates that neither candidate file exists.
	ErrModuleFileNotFound = errors.New("module file not found")
	// ErrModuleFileAmbiguous indicates that both candidate files exist.
	ErrModuleFileAmbiguous = errors.New("conflicting module files")
)

// ModuleFileCandidates строит пути кандидатов для безтелового `mod name;`,
// объявленного в модуле с каталогом moduleDir (см. ModuleDir).
func ModuleFileCandidates(moduleDir, name string) Candidates {
	return Candidates{
		File: filepath.Join(moduleDir, name+".ryl"),
		Dir:  filepath.Join(moduleDir, name, "mod.ryl"),
	}
}

// ModuleDir возвращает каталог, в котором живут дочерние модули файла:
// для корня компиляции и для mod.ryl это каталог самого файла, для
// name.ryl — подкаталог name рядом с ним.
func ModuleDir(filePath string, isRoot bool) string {
	dir := filepath.Dir(filePath)
	base := filepath.Base(filePath)
	if isRoot || base == "mod.ryl" {
		return dir
	}
	return filepath.Join(dir, strings.TrimSuffix(base, ".ryl"))
}

// FindModuleFile ищет файл модуля для `mod name;`. Существовать должен
// ровно один из кандидатов: ни одного — ErrModuleFileNotFound, оба —
// ErrModuleFileAmbiguous. Обе ситуации фатальны для компиляции.
func FindModuleFile(moduleDir, name string) (string, Candidates, error) {
	cand := ModuleFileCandidates(moduleDir, name)

	fileOK, err := regularFileExists(cand.File)
	if err != nil {
		return "", cand, err
	}
	dirOK, err := regularFileExists(cand.Dir)
	if err != nil {
		return "", cand, err
	}

	switch {
	case fileOK && dirOK:
		return "", cand, fmt.Errorf("module `%s`: %w", name, ErrModuleFileAmbiguous)
	case fileOK:
		return cand.File, cand, nil
	case dirOK:
		return cand.Dir, cand, nil
	default:
		return "", cand, fmt.Errorf("module `%s`: %w", name, ErrModuleFileNotFound)
	}
}

func regularFileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}
