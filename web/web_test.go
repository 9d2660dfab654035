package web

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestFS_Embedded(t *testing.T) {
	t.Parallel()

	fsys, err := FS("")
	if err != nil {
		t.Fatalf("FS returned error: %v", err)
	}
	for _, name := range []string{"index.html", "app.js", "style.css"} {
		if _, err := fs.Stat(fsys, name); err != nil {
			t.Fatalf("expected embedded %s: %v", name, err)
		}
	}
}

func TestFS_Dir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("custom"), 0o600); err != nil {
		t.Fatalf("failed to write index: %v", err)
	}

	fsys, err := FS(dir)
	if err != nil {
		t.Fatalf("FS returned error: %v", err)
	}
	b, err := fs.ReadFile(fsys, "index.html")
	if err != nil || string(b) != "custom" {
		t.Fatalf("expected custom index, got %q (%v)", b, err)
	}

	if _, err := FS(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}
