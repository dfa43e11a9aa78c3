package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFiles_MergeOK(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.yaml")
	f2 := filepath.Join(dir, "b.yaml")
	os.WriteFile(f1, []byte(`
packages:
  - name: libssl
    depends_on: [zlib]
  - name: zlib
`), 0o644)
	os.WriteFile(f2, []byte(`
packages:
  - name: curl
    depends_on: [libssl]
`), 0o644)
	cfg, err := LoadFromFiles([]string{f2, f1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cfg.Packages) != 3 {
		t.Fatalf("want 3 packages, got %d", len(cfg.Packages))
	}
	// a.yaml sorts before b.yaml, so its packages come first
	if cfg.Packages[0].Name != "libssl" || cfg.Packages[2].Name != "curl" {
		t.Fatalf("merge order wrong: %+v", cfg.Packages)
	}
	if len(cfg.Packages[0].DependsOn) != 1 || cfg.Packages[0].DependsOn[0] != "zlib" {
		t.Fatalf("depends_on lost: %+v", cfg.Packages[0])
	}
}

func TestLoadFromFiles_DuplicateAcrossFiles_ErrorMentionsFiles(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.yaml")
	f2 := filepath.Join(dir, "b.yaml")
	os.WriteFile(f1, []byte(`
packages:
  - name: tool
`), 0o644)
	os.WriteFile(f2, []byte(`
packages:
  - name: tool
`), 0o644)
	_, err := LoadFromFiles([]string{f1, f2})
	if err == nil {
		t.Fatalf("expected duplicate error")
	}
	if !strings.Contains(err.Error(), "a.yaml") || !strings.Contains(err.Error(), "b.yaml") {
		t.Fatalf("error should mention both files, got: %v", err)
	}
}

func TestLoadFromFiles_DuplicateWithinFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "u.yaml")
	os.WriteFile(f, []byte(`
packages:
  - name: tool
  - name: tool
`), 0o644)
	_, err := LoadFromFiles([]string{f})
	if err == nil {
		t.Fatalf("expected duplicate error")
	}
	if !strings.Contains(err.Error(), "u.yaml") {
		t.Fatalf("error should name the file, got: %v", err)
	}
}

func TestLoadFromFiles_IgnoresNonYAML(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "p.yaml")
	os.WriteFile(f, []byte(`
packages:
  - name: tool
`), 0o644)
	junk := filepath.Join(dir, "notes.txt")
	os.WriteFile(junk, []byte("not yaml"), 0o644)
	cfg, err := LoadFromFiles([]string{f, junk})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cfg.Packages) != 1 {
		t.Fatalf("want 1 package, got %d", len(cfg.Packages))
	}
}

func TestLoadFromFiles_BadYAMLNamesFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "broken.yaml")
	os.WriteFile(f, []byte("packages: [:::"), 0o644)
	_, err := LoadFromFiles([]string{f})
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "broken.yaml") {
		t.Fatalf("error should name the file, got: %v", err)
	}
}
