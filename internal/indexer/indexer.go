// Package indexer implements folder/file scanning, incremental upserts,
// and browser-batch ingestion against the Index Store.
package indexer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/worksentry/worksentry/internal/fileclass"
	"github.com/worksentry/worksentry/internal/models"
	"github.com/worksentry/worksentry/internal/store"
	"github.com/worksentry/worksentry/internal/wserr"
)

// maxReadBytes bounds how much of a text-indexable file contributes to Body.
const maxReadBytes = 1 << 20 // 1 MiB

// Indexer drives the Index Store's writers from filesystem scans, single
// files, and browser-extraction batches.
type Indexer struct {
	store  *store.Store
	logger *zap.Logger
}

// Option configures an Indexer.
type Option func(*Indexer)

// WithLogger sets a logger for debug output (file indexed, document
// deleted, per-file scan errors).
func WithLogger(l *zap.Logger) Option {
	return func(idx *Indexer) { idx.logger = l }
}

// New creates an Indexer over store.
func New(s *store.Store, opts ...Option) *Indexer {
	idx := &Indexer{store: s, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// IndexFolder walks path recursively, following symlinks, and upserts every
// regular file with a recognized extension whose mtime has advanced past
// what's stored (or that isn't indexed yet). The whole walk shares one
// writer, committed once at the end.
func (idx *Indexer) IndexFolder(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %v", wserr.ErrInvalidInput, err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", wserr.ErrNotFound, absPath)
		}
		return fmt.Errorf("%w: %v", wserr.ErrIO, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", wserr.ErrInvalidInput, absPath)
	}

	w := idx.store.Writer()
	committed := false
	defer func() {
		if !committed {
			w.Discard()
		}
	}()

	realRoot := absPath
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		realRoot = resolved
	}
	idx.walkFollowingSymlinks(absPath, map[string]bool{realRoot: true}, func(p string, fi os.FileInfo) {
		if upsertErr := idx.stageUpsertIfStale(w, p, fi); upsertErr != nil {
			idx.logger.Warn("skipping file during folder scan", zap.String("path", p), zap.Error(upsertErr))
		}
	})

	if err := w.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// walkFollowingSymlinks visits every regular file under dir, recursing into
// subdirectories and into symlinked directories alike (unlike filepath.Walk,
// which never descends through a symlink). seen tracks the resolved real
// path of every directory entered so a symlink cycle terminates instead of
// recursing forever; a symlink whose target is already in seen is skipped.
func (idx *Indexer) walkFollowingSymlinks(dir string, seen map[string]bool, visit func(path string, fi os.FileInfo)) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		idx.logger.Warn("skipping directory during folder scan", zap.String("path", dir), zap.Error(err))
		return
	}
	for _, entry := range entries {
		p := filepath.Join(dir, entry.Name())
		fi, err := entry.Info()
		if err != nil {
			idx.logger.Warn("skipping path during folder scan", zap.String("path", p), zap.Error(err))
			continue
		}
		if fi.Mode()&os.ModeSymlink != 0 {
			target, err := filepath.EvalSymlinks(p)
			if err != nil {
				idx.logger.Warn("skipping unresolvable symlink during folder scan", zap.String("path", p), zap.Error(err))
				continue
			}
			targetInfo, err := os.Stat(target)
			if err != nil {
				idx.logger.Warn("skipping broken symlink during folder scan", zap.String("path", p), zap.Error(err))
				continue
			}
			if targetInfo.IsDir() {
				if seen[target] {
					continue
				}
				seen[target] = true
				idx.walkFollowingSymlinks(target, seen, visit)
				continue
			}
			if targetInfo.Mode().IsRegular() {
				visit(p, targetInfo)
			}
			continue
		}
		if fi.IsDir() {
			idx.walkFollowingSymlinks(p, seen, visit)
			continue
		}
		if fi.Mode().IsRegular() {
			visit(p, fi)
		}
	}
}

// stageUpsertIfStale stages (but does not commit) an upsert for p on w, iff
// p's extension is recognized and its mtime is strictly newer than what's
// currently indexed.
func (idx *Indexer) stageUpsertIfStale(w *store.Writer, p string, fi os.FileInfo) error {
	ext := fileclass.Ext(p)
	if !fileclass.Recognized(ext) {
		return nil
	}
	fileMtime := fi.ModTime().Unix()
	indexedMtime, found, err := idx.store.LookupMTime(p)
	if err != nil {
		return err
	}
	if found && fileMtime <= indexedMtime {
		return nil
	}
	doc, err := buildFileDocument(p, ext, fi)
	if err != nil {
		return err
	}
	w.Upsert(doc)
	idx.logger.Debug("staged file upsert", zap.String("path", p), zap.Int64("mtime", fileMtime))
	return nil
}

// IndexFile classifies, upserts, and commits a single file. It returns
// (false, nil) if path does not exist, is not a regular file, or has an
// unrecognized extension — a no-op, not an error.
func (idx *Indexer) IndexFile(path string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("%w: %v", wserr.ErrInvalidInput, err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", wserr.ErrIO, err)
	}
	if !info.Mode().IsRegular() {
		return false, nil
	}
	ext := fileclass.Ext(absPath)
	if !fileclass.Recognized(ext) {
		return false, nil
	}

	doc, err := buildFileDocument(absPath, ext, info)
	if err != nil {
		return false, err
	}

	w := idx.store.Writer()
	w.Upsert(doc)
	if err := w.Commit(); err != nil {
		return false, err
	}
	idx.logger.Debug("file indexed", zap.String("path", absPath))
	return true, nil
}

// DeleteFile deletes the document with the given key (absolute path) and
// commits.
func (idx *Indexer) DeleteFile(key string) error {
	w := idx.store.Writer()
	w.DeleteTerm(key)
	if err := w.Commit(); err != nil {
		return err
	}
	idx.logger.Debug("file deleted", zap.String("key", key))
	return nil
}

// DeleteFolder scans all live documents and deletes those whose key starts
// with prefix, committing once.
func (idx *Indexer) DeleteFolder(prefix string) error {
	w := idx.store.Writer()
	committed := false
	defer func() {
		if !committed {
			w.Discard()
		}
	}()

	var toDelete []string
	if err := idx.store.WalkAll(func(doc *models.Document) error {
		if strings.HasPrefix(doc.Key, prefix) {
			toDelete = append(toDelete, doc.Key)
		}
		return nil
	}); err != nil {
		return err
	}
	for _, key := range toDelete {
		w.DeleteTerm(key)
	}
	if err := w.Commit(); err != nil {
		return err
	}
	committed = true
	idx.logger.Debug("folder deleted", zap.String("prefix", prefix), zap.Int("count", len(toDelete)))
	return nil
}

// BrowserRecord is one entry of a browser-extraction batch (see
// internal/browser for the ingestion-side contract).
type BrowserRecord struct {
	URL         string
	Title       string
	SourceLabel string
	Kind        models.RecordKind
}

// IndexBrowserBatch upserts one document per record, keyed by URL, on a
// single shared writer.
func (idx *Indexer) IndexBrowserBatch(records []BrowserRecord) error {
	if len(records) == 0 {
		return nil
	}
	w := idx.store.Writer()
	committed := false
	defer func() {
		if !committed {
			w.Discard()
		}
	}()
	for _, rec := range records {
		w.Upsert(&models.Document{
			Key:         rec.URL,
			DisplayName: rec.Title,
			Body:        rec.URL,
			Category:    rec.SourceLabel,
			Size:        0,
			MTime:       0,
			URL:         rec.URL,
			RecordKind:  rec.Kind,
		})
	}
	if err := w.Commit(); err != nil {
		return err
	}
	committed = true
	idx.logger.Debug("browser batch indexed", zap.Int("count", len(records)))
	return nil
}

// buildFileDocument reads path's content under the text/filename-only
// policy and constructs the Document to upsert.
func buildFileDocument(path, ext string, info os.FileInfo) (*models.Document, error) {
	displayName := filepath.Base(path)
	body, err := readBody(path, ext, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", wserr.ErrIO, path, err)
	}
	if body == "" && !fileclass.TextIndexable(ext) {
		// Filename-only extension (or no extension): the name itself is
		// all there is to search on. A text-indexable file that read back
		// empty (too large, or not valid UTF-8) stays empty rather than
		// substituting the name.
		body = displayName
	}
	return &models.Document{
		Key:         path,
		DisplayName: displayName,
		Body:        body,
		Category:    ext,
		Size:        uint64(info.Size()),
		MTime:       info.ModTime().Unix(),
		RecordKind:  models.RecordFile,
	}, nil
}

// readBody implements the content-reading policy: only text-indexable
// extensions are read at all; a filename-only extension, a file over
// maxReadBytes, or one that fails UTF-8 decoding all yield an empty body.
// The caller substitutes DisplayName only for the filename-only case.
func readBody(path, ext string, size int64) (string, error) {
	if !fileclass.TextIndexable(ext) {
		return "", nil
	}
	if size > maxReadBytes {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", nil
	}
	return string(bytes.TrimRight(data, "\x00")), nil
}
