package store

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search"

	"github.com/worksentry/worksentry/internal/models"
	"github.com/worksentry/worksentry/internal/wserr"
)

var storedFields = []string{"key", "display_name", "category", "size", "mtime", "url", "record_kind"}

// LookupMTime looks up the stored mtime for key by a single-term query, the
// incremental-indexing check the Indexer runs before reading a file.
// found is false when no live document carries this key.
func (s *Store) LookupMTime(key string) (mtime int64, found bool, err error) {
	q := bleve.NewTermQuery(key)
	q.SetField("key")
	req := bleve.NewSearchRequest(q)
	req.Size = 1
	req.Fields = []string{"mtime"}
	res, err := s.index.Search(req)
	if err != nil {
		return 0, false, fmt.Errorf("%w: looking up mtime for %s: %v", wserr.ErrIO, key, err)
	}
	if len(res.Hits) == 0 {
		return 0, false, nil
	}
	return fieldInt64(res.Hits[0], "mtime"), true, nil
}

// WalkAll invokes fn once per live document, reconstructed from stored
// fields (body is never stored, so Body is always empty on the walked
// copy). Paginates internally in walkPageSize batches; stops early and
// returns fn's error if fn returns non-nil.
func (s *Store) WalkAll(fn func(doc *models.Document) error) error {
	from := 0
	for {
		req := bleve.NewSearchRequest(bleve.NewMatchAllQuery())
		req.From = from
		req.Size = walkPageSize
		req.Fields = storedFields
		req.SortBy([]string{"_id"})
		res, err := s.index.Search(req)
		if err != nil {
			return fmt.Errorf("%w: walking index: %v", wserr.ErrIO, err)
		}
		if len(res.Hits) == 0 {
			return nil
		}
		for _, hit := range res.Hits {
			if err := fn(docFromHit(hit)); err != nil {
				return err
			}
		}
		from += len(res.Hits)
		if uint64(from) >= res.Total {
			return nil
		}
	}
}

func docFromHit(hit *search.DocumentMatch) *models.Document {
	return &models.Document{
		Key:         fieldString(hit, "key"),
		DisplayName: fieldString(hit, "display_name"),
		Category:    fieldString(hit, "category"),
		Size:        uint64(fieldInt64(hit, "size")),
		MTime:       fieldInt64(hit, "mtime"),
		URL:         fieldString(hit, "url"),
		RecordKind:  models.RecordKind(fieldString(hit, "record_kind")),
	}
}

func fieldString(hit *search.DocumentMatch, name string) string {
	if hit.ID == "" && name == "key" {
		return ""
	}
	if v, ok := hit.Fields[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	if name == "key" {
		return hit.ID
	}
	return ""
}

func fieldInt64(hit *search.DocumentMatch, name string) int64 {
	v, ok := hit.Fields[name]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return 0
	}
}
