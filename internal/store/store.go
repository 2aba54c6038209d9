// Package store owns the on-disk segmented inverted index: schema, open
// policy, writer lifecycle, and the document-id walk the launcher query
// mode and folder deletion both need.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	"go.uber.org/zap"

	"github.com/worksentry/worksentry/internal/models"
	"github.com/worksentry/worksentry/internal/wserr"
)

// walkPageSize bounds how many hits a single page of WalkAll/search
// pagination requests at once.
const walkPageSize = 1000

// Store wraps a Bleve index built from the declared Document schema and
// enforces the single-writer-at-a-time rule independently of any caller's
// own locking, so the invariant holds even if Store is used directly.
type Store struct {
	path     string
	index    bleve.Index
	writerMu sync.Mutex
	logger   *zap.Logger
}

// Stats reports aggregate information about the index.
type Stats struct {
	DocumentCount uint64 `json:"document_count"`
	SizeBytes     uint64 `json:"size_bytes"`
	IndexPath     string `json:"index_path"`
}

// buildMapping declares the Document schema: key/category/url/record_kind
// are exact-term keyword fields, display_name/body are tokenized text
// fields (standard analyzer - no stemming, so "bayes" only matches
// "bayes"), size/mtime are stored numeric fields. body is indexed but
// never stored, matching the "Stored: no" column of the schema table.
// display_name and body are the only fields in the composite _all field,
// which exact-mode query strings search when no field is named.
func buildMapping() mapping.IndexMapping {
	im := bleve.NewIndexMapping()

	docMapping := bleve.NewDocumentMapping()

	kw := bleve.NewTextFieldMapping()
	kw.Analyzer = keyword.Name
	kw.Store = true
	kw.IncludeInAll = false

	text := bleve.NewTextFieldMapping()
	text.Analyzer = standard.Name
	text.IncludeInAll = false

	displayName := bleve.NewTextFieldMapping()
	displayName.Analyzer = standard.Name
	displayName.Store = true
	displayName.IncludeInAll = true

	body := bleve.NewTextFieldMapping()
	body.Analyzer = standard.Name
	body.Store = false
	body.IncludeInAll = true

	size := bleve.NewNumericFieldMapping()
	size.Store = true
	size.IncludeInAll = false

	mtime := bleve.NewNumericFieldMapping()
	mtime.Store = true
	mtime.IncludeInAll = false

	docMapping.AddFieldMappingsAt("key", kw)
	docMapping.AddFieldMappingsAt("category", kw)
	docMapping.AddFieldMappingsAt("url", kw)
	docMapping.AddFieldMappingsAt("record_kind", kw)
	docMapping.AddFieldMappingsAt("display_name", displayName)
	docMapping.AddFieldMappingsAt("body", body)
	docMapping.AddFieldMappingsAt("size", size)
	docMapping.AddFieldMappingsAt("mtime", mtime)

	im.AddDocumentMapping("document", docMapping)
	im.DefaultMapping = docMapping
	im.DefaultType = "document"
	_ = text // unused: no field is mapped with it
	return im
}

// OpenOrCreate implements the declared open policy: an absent directory is
// created fresh; a present-but-unopenable directory (unreadable or
// schema-mismatched) is removed and recreated empty, trading a full
// re-index for never serving out of a corrupted store.
func OpenOrCreate(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := os.Stat(path); err == nil {
		idx, openErr := bleve.Open(path)
		if openErr == nil {
			return &Store{path: path, index: idx, logger: logger}, nil
		}
		logger.Warn("index unreadable or schema-mismatched, recreating", zap.String("path", path), zap.Error(openErr))
		if rmErr := os.RemoveAll(path); rmErr != nil {
			return nil, fmt.Errorf("%w: removing corrupted index at %s: %v", wserr.ErrIndexCorruption, path, rmErr)
		}
	}
	idx, err := bleve.New(path, buildMapping())
	if err != nil {
		return nil, fmt.Errorf("%w: creating index at %s: %v", wserr.ErrIndexCorruption, path, err)
	}
	return &Store{path: path, index: idx, logger: logger}, nil
}

// Path returns the index directory.
func (s *Store) Path() string { return s.path }

// Close releases the underlying Bleve index.
func (s *Store) Close() error {
	return s.index.Close()
}

// Clear discards the index and recreates it empty in place.
func (s *Store) Clear() error {
	s.writerMu.Lock()
	defer s.writerMu.Unlock()
	if err := s.index.Close(); err != nil {
		return fmt.Errorf("%w: closing index before clear: %v", wserr.ErrIO, err)
	}
	if err := os.RemoveAll(s.path); err != nil {
		return fmt.Errorf("%w: removing index directory: %v", wserr.ErrIO, err)
	}
	idx, err := bleve.New(s.path, buildMapping())
	if err != nil {
		return fmt.Errorf("%w: recreating index: %v", wserr.ErrIndexCorruption, err)
	}
	s.index = idx
	return nil
}

// DocCount returns the number of live documents.
func (s *Store) DocCount() (uint64, error) {
	n, err := s.index.DocCount()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", wserr.ErrIO, err)
	}
	return n, nil
}

// Stats reports document count and on-disk size.
func (s *Store) Stats() (Stats, error) {
	count, err := s.DocCount()
	if err != nil {
		return Stats{}, err
	}
	size, err := s.dirSize()
	if err != nil {
		return Stats{}, fmt.Errorf("%w: computing index size: %v", wserr.ErrIO, err)
	}
	return Stats{DocumentCount: count, SizeBytes: size, IndexPath: s.path}, nil
}

func (s *Store) dirSize() (uint64, error) {
	var total uint64
	err := filepath.Walk(s.path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			total += uint64(info.Size())
		}
		return nil
	})
	return total, err
}

// Index exposes the underlying bleve.Index for the query engine, which
// builds mode-specific bleve queries directly against it.
func (s *Store) Index() bleve.Index { return s.index }

// Logger exposes the configured logger for sibling packages constructed
// around the same Store (indexer, watcher) that want consistent fields.
func (s *Store) Logger() *zap.Logger { return s.logger }
