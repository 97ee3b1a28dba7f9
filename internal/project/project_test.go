package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestModuleFileCandidates(t *testing.T) {
	cand := ModuleFileCandidates("src", "child")
	if cand.File != filepath.Join("src", "child.ryl") {
		t.Fatalf("file candidate: %q", cand.File)
	}
	if cand.Dir != filepath.Join("src", "child", "mod.ryl") {
		t.Fatalf("dir candidate: %q", cand.Dir)
	}
}

func TestModuleDir(t *testing.T) {
	root := filepath.Join("src", "main.ryl")
	if got := ModuleDir(root, true); got != "src" {
		t.Fatalf("root module dir: %q", got)
	}
	modFile := filepath.Join("src", "a", "mod.ryl")
	if got := ModuleDir(modFile, false); got != filepath.Join("src", "a") {
		t.Fatalf("mod.ryl module dir: %q", got)
	}
	sibling := filepath.Join("src", "a.ryl")
	if got := ModuleDir(sibling, false); got != filepath.Join("src", "a") {
		t.Fatalf("name.ryl module dir: %q", got)
	}
}

func TestFindModuleFileSibling(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "main.ryl"), "mod child;\n")
	write(t, filepath.Join(dir, "child.ryl"), "")

	path, _, err := FindModuleFile(dir, "child")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "child.ryl") {
		t.Fatalf("wrong path: %q", path)
	}
}

func TestFindModuleFileDirEntry(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "main.ryl"), "mod child;\n")
	write(t, filepath.Join(dir, "child", "mod.ryl"), "")

	path, _, err := FindModuleFile(dir, "child")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "child", "mod.ryl") {
		t.Fatalf("wrong path: %q", path)
	}
}

func TestFindModuleFileMissing(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "main.ryl"), "mod child;\n")

	_, cand, err := FindModuleFile(dir, "child")
	if !errors.Is(err, ErrModuleFileNotFound) {
		t.Fatalf("want ErrModuleFileNotFound, got %v", err)
	}
	if cand.File == "" || cand.Dir == "" {
		t.Fatalf("candidates must name both probed paths")
	}
}

func TestFindModuleFileAmbiguous(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "main.ryl"), "mod child;\n")
	write(t, filepath.Join(dir, "child.ryl"), "")
	write(t, filepath.Join(dir, "child", "mod.ryl"), "")

	_, _, err := FindModuleFile(dir, "child")
	if !errors.Is(err, ErrModuleFileAmbiguous) {
		t.Fatalf("want ErrModuleFileAmbiguous, got %v", err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ryl.toml")
	write(t, path, "[package]\nname = \"demo\"\nentry = \"src/lib.ryl\"\n")

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != "demo" || m.Entry != "src/lib.ryl" {
		t.Fatalf("manifest mismatch: %+v", m)
	}
}

func TestLoadManifestDefaultEntry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ryl.toml")
	write(t, path, "[package]\nname = \"demo\"\n")

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Entry != DefaultEntry {
		t.Fatalf("entry must default, got %q", m.Entry)
	}
}

func TestLoadManifestMissingPackage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ryl.toml")
	write(t, path, "# empty\n")

	if _, err := LoadManifest(path); !errors.Is(err, ErrPackageSectionMissing) {
		t.Fatalf("want ErrPackageSectionMissing, got %v", err)
	}
}

func TestFindRylToml(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "ryl.toml"), "[package]\nname = \"demo\"\n")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := FindRylToml(nested)
	if err != nil || !ok {
		t.Fatalf("manifest must be found walking up: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("wrong manifest dir: %q", path)
	}
}

func TestCombineDigest(t *testing.T) {
	var a, b Digest
	a[0] = 1
	b[0] = 2
	if Combine(a) == Combine(b) {
		t.Fatalf("different content must give different digests")
	}
	if Combine(a, b) != Combine(a, b) {
		t.Fatalf("digest must be deterministic")
	}
	if Combine(a, b) == Combine(a) {
		t.Fatalf("deps must contribute to the digest")
	}
}
