package output

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestZipDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "run_20240101")
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("Failed to create test dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{"a":"b"}`), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "x.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	dst := filepath.Join(tmpDir, "run_20240101.zip")
	if err := ZipDirectory(dir, dst); err != nil {
		t.Fatalf("ZipDirectory failed: %v", err)
	}

	zr, err := zip.OpenReader(dst)
	if err != nil {
		t.Fatalf("Failed to open archive: %v", err)
	}
	defer zr.Close()

	entries := make(map[string]string, len(zr.File))
	for _, zf := range zr.File {
		if zf.Method != zip.Deflate {
			t.Errorf("Entry %q method = %d, expected deflate", zf.Name, zf.Method)
		}
		rc, err := zf.Open()
		if err != nil {
			t.Fatalf("Failed to open entry %q: %v", zf.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("Failed to read entry %q: %v", zf.Name, err)
		}
		entries[zf.Name] = string(data)
	}

	// Entries are rooted at the directory itself
	if got := entries["run_20240101/en.json"]; got != `{"a":"b"}` {
		t.Errorf("en.json content = %q", got)
	}
	if got := entries["run_20240101/sub/x.txt"]; got != "x" {
		t.Errorf("x.txt content = %q", got)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries, got %d: %v", len(entries), entries)
	}
}
