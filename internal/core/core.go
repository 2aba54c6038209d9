// Package core implements the process-wide façade: an explicitly
// initialized handle owning the Index Store, with a mutex serializing
// writers while leaving queries free to run concurrently.
package core

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/worksentry/worksentry/internal/indexer"
	"github.com/worksentry/worksentry/internal/models"
	"github.com/worksentry/worksentry/internal/search"
	"github.com/worksentry/worksentry/internal/store"
	"github.com/worksentry/worksentry/internal/watcher"
)

// Engine is the process-wide handle. Queries read straight from the
// store; writer-side operations (index/delete/clear/rebuild/ingest) take
// writerMu for their duration, matching the spec's "held for the
// lifetime of a scan, single-file upsert, or browser batch" rule.
type Engine struct {
	writerMu sync.Mutex

	store   *store.Store
	idx     *indexer.Indexer
	eng     *search.Engine
	watcher *watcher.Watcher
	logger  *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a logger propagated to the store, indexer, and watcher.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// Init opens or creates the Index Store at indexPath and wires the
// indexer and query engine around it. It does not start a watcher; call
// StartWatcher separately once the caller knows which folders to watch.
func Init(indexPath string, opts ...Option) (*Engine, error) {
	e := &Engine{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	s, err := store.OpenOrCreate(indexPath, e.logger)
	if err != nil {
		return nil, err
	}
	e.store = s
	e.idx = indexer.New(s, indexer.WithLogger(e.logger))
	e.eng = search.New(s)
	return e, nil
}

// StartWatcher begins watching folders recursively, wiring debounced
// Upsert/Delete dispatches to IndexFile/DeleteFile. Returns the watcher
// so the caller can AddDirectory/RemoveDirectory/Stop it at runtime.
func (e *Engine) StartWatcher(ctx context.Context, folders []string) (*watcher.Watcher, error) {
	w := watcher.New(folders, true,
		func(path string) { _, _ = e.IndexFile(path) },
		func(path string) { _ = e.DeleteFile(path) },
		watcher.WithLogger(e.logger),
	)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	w.SyncExistingFiles()
	e.watcher = w
	return w, nil
}

// Close releases the watcher (if started) and the Index Store.
func (e *Engine) Close() error {
	if e.watcher != nil {
		e.watcher.Stop()
	}
	return e.store.Close()
}

// IndexFolder walks and upserts a folder, serialized against other
// writers.
func (e *Engine) IndexFolder(path string) error {
	e.writerMu.Lock()
	defer e.writerMu.Unlock()
	return e.idx.IndexFolder(path)
}

// IndexFile indexes a single file.
func (e *Engine) IndexFile(path string) (bool, error) {
	e.writerMu.Lock()
	defer e.writerMu.Unlock()
	return e.idx.IndexFile(path)
}

// DeleteFile deletes the document for key.
func (e *Engine) DeleteFile(key string) error {
	e.writerMu.Lock()
	defer e.writerMu.Unlock()
	return e.idx.DeleteFile(key)
}

// DeleteFolder deletes every document whose key has the given prefix.
func (e *Engine) DeleteFolder(prefix string) error {
	e.writerMu.Lock()
	defer e.writerMu.Unlock()
	return e.idx.DeleteFolder(prefix)
}

// Clear discards and recreates the index empty.
func (e *Engine) Clear() error {
	e.writerMu.Lock()
	defer e.writerMu.Unlock()
	return e.store.Clear()
}

// Rebuild clears the index then re-indexes each folder in order.
func (e *Engine) Rebuild(folders []string) error {
	e.writerMu.Lock()
	defer e.writerMu.Unlock()
	if err := e.store.Clear(); err != nil {
		return err
	}
	for _, f := range folders {
		if err := e.idx.IndexFolder(f); err != nil {
			return fmt.Errorf("rebuilding %s: %w", f, err)
		}
	}
	return nil
}

// IngestBrowserBatch upserts a batch of browser records, serialized
// against other writers.
func (e *Engine) IngestBrowserBatch(records []indexer.BrowserRecord) error {
	e.writerMu.Lock()
	defer e.writerMu.Unlock()
	return e.idx.IndexBrowserBatch(records)
}

// DocumentCount returns the live document count. It does not take
// writerMu: readers may run concurrently with writers per the
// store's own snapshot semantics.
func (e *Engine) DocumentCount() (uint64, error) {
	return e.store.DocCount()
}

// Stats reports document count, on-disk size, and index path.
func (e *Engine) Stats() (store.Stats, error) {
	return e.store.Stats()
}

// SearchExact runs exact-mode search.
func (e *Engine) SearchExact(query string, limit int) ([]models.SearchResult, error) {
	return e.eng.SearchExact(query, limit)
}

// SearchEnhanced runs enhanced-mode (fuzzy/prefix) search.
func (e *Engine) SearchEnhanced(query string, limit int, fuzzy, prefix bool) ([]models.SearchResult, error) {
	return e.eng.SearchEnhanced(query, limit, fuzzy, prefix)
}

// SearchLauncher runs launcher-mode search.
func (e *Engine) SearchLauncher(query string, limit int) ([]models.SearchResult, error) {
	return e.eng.SearchLauncher(query, limit)
}

// Search is the single invocation surface's `search(q, limit)`: launcher
// mode, per §6.
func (e *Engine) Search(query string, limit int) ([]models.SearchResult, error) {
	return e.SearchLauncher(query, limit)
}
