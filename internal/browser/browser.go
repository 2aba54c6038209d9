// Package browser defines the ingestion-side contract for browser
// history/bookmark extraction: the core accepts a batch of
// {url, title, source_label, kind} tuples and knows nothing about how
// they were produced (locked-SQLite-copy trick, bookmark JSON walk, or
// otherwise) — that lives entirely in an external collaborator.
package browser

import (
	"fmt"

	"github.com/worksentry/worksentry/internal/indexer"
	"github.com/worksentry/worksentry/internal/models"
	"github.com/worksentry/worksentry/internal/wserr"
)

// Kind distinguishes a history visit from a bookmark.
type Kind string

const (
	KindHistory  Kind = "history"
	KindBookmark Kind = "bookmark"
)

// Record is one extracted browser entry, as produced by the external
// collaborator.
type Record struct {
	URL         string
	Title       string
	SourceLabel string
	Kind        Kind
}

// ToBatch validates records (non-empty Title is the only rule; empty
// batches are not an error) and converts them to the indexer's
// BrowserRecord shape ready for ingestion.
func ToBatch(records []Record) ([]indexer.BrowserRecord, error) {
	batch := make([]indexer.BrowserRecord, 0, len(records))
	for i, r := range records {
		if r.Title == "" {
			return nil, fmt.Errorf("%w: record %d has an empty title", wserr.ErrInvalidInput, i)
		}
		batch = append(batch, indexer.BrowserRecord{
			URL:         r.URL,
			Title:       r.Title,
			SourceLabel: r.SourceLabel,
			Kind:        recordKind(r.Kind),
		})
	}
	return batch, nil
}

func recordKind(k Kind) models.RecordKind {
	if k == KindBookmark {
		return models.RecordBookmark
	}
	return models.RecordHistory
}
