package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCrateNameFor(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ryl.toml"), []byte("[package]\nname = \"demo\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	nested := filepath.Join(dir, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	entry := filepath.Join(nested, "main.ryl")
	if err := os.WriteFile(entry, []byte(""), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := crateNameFor(nested); got != "demo" {
		t.Fatalf("nested dir: want %q, got %q", "demo", got)
	}
	if got := crateNameFor(entry); got != "demo" {
		t.Fatalf("file path: want %q, got %q", "demo", got)
	}
	if got := crateNameFor(t.TempDir()); got != "" {
		t.Fatalf("no manifest: want empty crate name, got %q", got)
	}
}
