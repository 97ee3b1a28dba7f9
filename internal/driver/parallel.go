package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DirResult — итог проверки одного корневого файла каталога.
type DirResult struct {
	Path   string
	Result *Result
}

// ListRylFiles возвращает отсортированный список *.ryl файлов верхнего
// уровня каталога dir. Вложенные каталоги не обходим: их файлы — это
// файлы подмодулей, а не самостоятельные корни.
func ListRylFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".ryl") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir проверяет каждый *.ryl файл верхнего уровня каталога как
// независимую компиляцию. jobs <= 0 означает GOMAXPROCS. Результаты
// идут в порядке путей независимо от порядка завершения.
func CheckDir(ctx context.Context, dir string, opts Options, jobs int) ([]DirResult, error) {
	files, err := ListRylFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]DirResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := Check(path, opts)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				results[i] = DirResult{Path: path, Result: res}
				return nil
			}
		}(i, path))
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
