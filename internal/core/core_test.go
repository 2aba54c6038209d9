package core

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	dir := t.TempDir()
	e, err := Init(filepath.Join(dir, "index"))
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestEngineIndexFolderAndSearchExact(t *testing.T) {
	e := newTestEngine(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "test.txt"), []byte("hello world unique search term 12345"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := e.IndexFolder(dir); err != nil {
		t.Fatalf("IndexFolder: %v", err)
	}
	results, err := e.SearchExact("unique search term", 10)
	if err != nil {
		t.Fatalf("SearchExact: %v", err)
	}
	if len(results) != 1 || results[0].DisplayName != "test.txt" {
		t.Fatalf("results = %+v", results)
	}
}

func TestEngineDeleteFilePropagates(t *testing.T) {
	e := newTestEngine(t)
	dir := t.TempDir()
	p := filepath.Join(dir, "x.txt")
	if err := os.WriteFile(p, []byte("content"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := e.IndexFolder(dir); err != nil {
		t.Fatalf("IndexFolder: %v", err)
	}
	if count, _ := e.DocumentCount(); count != 1 {
		t.Fatalf("DocumentCount = %d, want 1", count)
	}
	if err := e.DeleteFile(p); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if count, _ := e.DocumentCount(); count != 0 {
		t.Fatalf("DocumentCount = %d after delete, want 0", count)
	}
}

func TestEngineRebuildClearsThenReindexes(t *testing.T) {
	e := newTestEngine(t)
	dirA := t.TempDir()
	dirB := t.TempDir()
	if err := os.WriteFile(filepath.Join(dirA, "a.txt"), []byte("content a"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dirB, "b.txt"), []byte("content b"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := e.IndexFolder(dirA); err != nil {
		t.Fatalf("IndexFolder: %v", err)
	}
	if err := e.Rebuild([]string{dirB}); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	count, err := e.DocumentCount()
	if err != nil {
		t.Fatalf("DocumentCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("DocumentCount = %d after rebuild, want 1 (only dirB)", count)
	}
}

func TestEngineStats(t *testing.T) {
	e := newTestEngine(t)
	stats, err := e.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.IndexPath == "" {
		t.Error("expected a non-empty index path")
	}
}
