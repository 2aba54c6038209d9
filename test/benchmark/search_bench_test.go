package benchmark

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/worksentry/worksentry/internal/core"
)

// setupEngine creates a core.Engine over a folder of n small text files.
func setupEngine(b *testing.B, n int) (*core.Engine, string) {
	b.Helper()
	dir := b.TempDir()
	docsDir := filepath.Join(dir, "docs")
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		content := fmt.Sprintf("document number %d about machine learning and search engines", i)
		path := filepath.Join(docsDir, fmt.Sprintf("doc-%d.txt", i))
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			b.Fatal(err)
		}
	}

	engine, err := core.Init(filepath.Join(dir, "index"))
	if err != nil {
		b.Fatal(err)
	}
	if err := engine.IndexFolder(docsDir); err != nil {
		b.Fatal(err)
	}
	return engine, docsDir
}

func BenchmarkSearchExact_1k(b *testing.B) {
	engine, _ := setupEngine(b, 1000)
	defer engine.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.SearchExact("machine learning", 10)
	}
}

func BenchmarkSearchEnhanced_1k(b *testing.B) {
	engine, _ := setupEngine(b, 1000)
	defer engine.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.SearchEnhanced("machin", 10, true, true)
	}
}

func BenchmarkSearchLauncher_1k(b *testing.B) {
	engine, _ := setupEngine(b, 1000)
	defer engine.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.SearchLauncher("doc999", 10)
	}
}

func BenchmarkSearchLauncher_10k(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping 10k benchmark in short mode")
	}
	engine, _ := setupEngine(b, 10000)
	defer engine.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.SearchLauncher("doc9999", 10)
	}
}

func BenchmarkIndexFolder_1k(b *testing.B) {
	dir := b.TempDir()
	docsDir := filepath.Join(dir, "docs")
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1000; i++ {
		content := fmt.Sprintf("document number %d about indexing throughput", i)
		path := filepath.Join(docsDir, fmt.Sprintf("doc-%d.txt", i))
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine, err := core.Init(filepath.Join(dir, fmt.Sprintf("index-%d", i)))
		if err != nil {
			b.Fatal(err)
		}
		_ = engine.IndexFolder(docsDir)
		_ = engine.Close()
	}
}
