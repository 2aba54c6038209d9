package store

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"

	"github.com/worksentry/worksentry/internal/models"
	"github.com/worksentry/worksentry/internal/wserr"
)

// Writer is scoped to a single indexing operation (folder scan, single-file
// update, or browser batch) and disposed after Commit. It accepts
// DeleteTerm/AddDocument calls that become durable on Commit.
//
// Since Document.Key is the document's Bleve id, "delete_term(key, value)"
// from the spec is exactly a batch delete-by-id.
type Writer struct {
	store *Store
	batch *bleve.Batch
	done  bool
}

// Writer opens a new writer, blocking until any writer currently in flight
// on this Store completes. The façade additionally serializes writers
// across the whole process; this lock makes the single-writer invariant
// hold even when Store is driven directly (e.g. in tests).
func (s *Store) Writer() *Writer {
	s.writerMu.Lock()
	return &Writer{store: s, batch: s.index.NewBatch()}
}

// DeleteTerm deletes the document whose key equals value, if any.
func (w *Writer) DeleteTerm(value string) {
	w.batch.Delete(value)
}

// AddDocument stages doc for indexing under its own Key.
func (w *Writer) AddDocument(doc *models.Document) {
	w.batch.Index(doc.Key, doc)
}

// Upsert deletes any prior document under doc.Key, then adds doc, on the
// same batch — the upsert discipline that guarantees at-most-one live
// document per key after Commit.
func (w *Writer) Upsert(doc *models.Document) {
	w.DeleteTerm(doc.Key)
	w.AddDocument(doc)
}

// Commit makes all staged operations durable and releases the writer lock.
// A failed commit aborts the writer's changes; the lock is still released
// so a subsequent writer can proceed.
func (w *Writer) Commit() error {
	defer w.release()
	if err := w.store.index.Batch(w.batch); err != nil {
		return fmt.Errorf("%w: committing batch: %v", wserr.ErrIO, err)
	}
	return nil
}

// Discard abandons the writer without committing, releasing the lock. Used
// when a caller decides mid-operation that nothing needs to be written.
func (w *Writer) Discard() {
	w.release()
}

func (w *Writer) release() {
	if w.done {
		return
	}
	w.done = true
	w.store.writerMu.Unlock()
}
