package store

import (
	"path/filepath"
	"testing"

	"github.com/worksentry/worksentry/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := OpenOrCreate(filepath.Join(dir, "index"), nil)
	if err != nil {
		t.Fatalf("OpenOrCreate: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestUpsertAndLookupMTime(t *testing.T) {
	s := openTestStore(t)

	doc := &models.Document{
		Key:         "/tmp/report.txt",
		DisplayName: "report.txt",
		Body:        "quarterly numbers and forecasts",
		Category:    "txt",
		Size:        42,
		MTime:       1000,
		RecordKind:  models.RecordFile,
	}
	w := s.Writer()
	w.Upsert(doc)
	if err := w.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	mtime, found, err := s.LookupMTime(doc.Key)
	if err != nil {
		t.Fatalf("LookupMTime: %v", err)
	}
	if !found || mtime != 1000 {
		t.Fatalf("LookupMTime = (%d, %v), want (1000, true)", mtime, found)
	}

	count, err := s.DocCount()
	if err != nil {
		t.Fatalf("DocCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("DocCount = %d, want 1", count)
	}
}

func TestUpsertReplacesPriorDocument(t *testing.T) {
	s := openTestStore(t)

	key := "/tmp/note.txt"
	for _, mtime := range []int64{100, 200} {
		w := s.Writer()
		w.Upsert(&models.Document{Key: key, DisplayName: "note.txt", MTime: mtime, RecordKind: models.RecordFile})
		if err := w.Commit(); err != nil {
			t.Fatalf("Commit: %v", err)
		}
	}

	count, err := s.DocCount()
	if err != nil {
		t.Fatalf("DocCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("DocCount = %d, want 1 after two upserts of the same key", count)
	}

	mtime, found, err := s.LookupMTime(key)
	if err != nil || !found {
		t.Fatalf("LookupMTime: %v, found=%v", err, found)
	}
	if mtime != 200 {
		t.Fatalf("LookupMTime = %d, want 200 (latest upsert)", mtime)
	}
}

func TestDeleteTerm(t *testing.T) {
	s := openTestStore(t)
	key := "/tmp/gone.txt"

	w := s.Writer()
	w.Upsert(&models.Document{Key: key, DisplayName: "gone.txt", RecordKind: models.RecordFile})
	if err := w.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	w = s.Writer()
	w.DeleteTerm(key)
	if err := w.Commit(); err != nil {
		t.Fatalf("Commit delete: %v", err)
	}

	count, err := s.DocCount()
	if err != nil {
		t.Fatalf("DocCount: %v", err)
	}
	if count != 0 {
		t.Fatalf("DocCount = %d, want 0 after delete", count)
	}
	if _, found, _ := s.LookupMTime(key); found {
		t.Error("expected key to be gone after delete")
	}
}

func TestWalkAll(t *testing.T) {
	s := openTestStore(t)
	w := s.Writer()
	for i, name := range []string{"a.txt", "b.txt", "c.txt"} {
		w.Upsert(&models.Document{Key: "/tmp/" + name, DisplayName: name, MTime: int64(i), RecordKind: models.RecordFile})
	}
	if err := w.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	seen := map[string]bool{}
	if err := s.WalkAll(func(doc *models.Document) error {
		seen[doc.Key] = true
		return nil
	}); err != nil {
		t.Fatalf("WalkAll: %v", err)
	}
	if len(seen) != 3 {
		t.Fatalf("WalkAll visited %d documents, want 3", len(seen))
	}
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	w := s.Writer()
	w.Upsert(&models.Document{Key: "/tmp/x.txt", DisplayName: "x.txt", RecordKind: models.RecordFile})
	if err := w.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	count, err := s.DocCount()
	if err != nil {
		t.Fatalf("DocCount: %v", err)
	}
	if count != 0 {
		t.Fatalf("DocCount = %d after Clear, want 0", count)
	}
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.IndexPath == "" {
		t.Error("expected non-empty IndexPath")
	}
}
