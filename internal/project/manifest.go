package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest describes a project's ryl.toml [package] section.
type Manifest struct {
	Name  string
	Entry string
}

// DefaultEntry — файл, с которого начинается компиляция, если манифест
// не задаёт его явно.
const DefaultEntry = "main.ryl"

// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
var ErrPackageSectionMissing = errors.New("missing [package]")

type manifestFile struct {
	Package struct {
		Name  string `toml:"name"`
		Entry string `toml:"entry"`
	} `toml:"package"`
}

// FindRylToml walks up from startDir to locate ryl.toml.
func FindRylToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "ryl.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest parses a ryl.toml [package] section.
func LoadManifest(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	m := Manifest{
		Name:  strings.TrimSpace(cfg.Package.Name),
		Entry: strings.TrimSpace(cfg.Package.Entry),
	}
	if m.Entry == "" {
		m.Entry = DefaultEntry
	}
	return m, nil
}
