// Package search implements the Query Engine's three modes — exact,
// enhanced (fuzzy/prefix), and launcher — against a shared Index Store.
package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blevesearch/bleve/v2"
	bquery "github.com/blevesearch/bleve/v2/search/query"

	"github.com/worksentry/worksentry/internal/models"
	"github.com/worksentry/worksentry/internal/ranking"
	"github.com/worksentry/worksentry/internal/store"
	"github.com/worksentry/worksentry/internal/tokenize"
	"github.com/worksentry/worksentry/internal/wserr"
)

// searchFields are the two text fields exact/enhanced mode query against.
var searchFields = []string{"body", "display_name"}

// Engine runs queries against a Store. It holds no mutable state of its
// own — every call reads straight from the index's current snapshot.
type Engine struct {
	store *store.Store
}

// New creates an Engine over s.
func New(s *store.Store) *Engine {
	return &Engine{store: s}
}

// SearchExact parses query as a boolean tokenized query-string against
// {body, display_name} and returns the top-limit hits by the index's
// default TF-IDF scoring. An empty or whitespace-only query returns an
// empty result, not an error.
func (e *Engine) SearchExact(query string, limit int) ([]models.SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, nil
	}
	q := bquery.NewQueryStringQuery(trimmed)
	return e.runFieldQuery(q, limit)
}

// SearchEnhanced tokenizes query (§4.2) and, per token and per field,
// builds a disjunction of fuzzy/prefix/exact sub-queries as configured by
// fuzzy and prefix. If no sub-queries result, it falls back to SearchExact.
func (e *Engine) SearchEnhanced(query string, limit int, fuzzy, prefix bool) ([]models.SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, nil
	}
	tokens := tokenize.Tokenize(trimmed)
	var subQueries []bquery.Query
	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		for _, field := range searchFields {
			if fuzzy && len(lower) >= 3 {
				fq := bquery.NewFuzzyQuery(lower)
				fq.SetField(field)
				fq.Fuzziness = fuzzyDistance(lower)
				subQueries = append(subQueries, fq)
			}
			if prefix && len(lower) >= 2 {
				pq := bquery.NewTermQuery(lower)
				pq.SetField(field)
				subQueries = append(subQueries, pq)
			}
			tq := bquery.NewTermQuery(lower)
			tq.SetField(field)
			subQueries = append(subQueries, tq)
		}
	}
	if len(subQueries) == 0 {
		return e.SearchExact(query, limit)
	}
	disjunction := bquery.NewDisjunctionQuery(subQueries)
	return e.runFieldQuery(disjunction, limit)
}

// fuzzyDistance maps token length to the edit distance the enhanced-mode
// fuzzy sub-query uses: 1 for short tokens, 2 for longer ones.
func fuzzyDistance(token string) int {
	if len(token) <= 4 {
		return 1
	}
	return 2
}

func (e *Engine) runFieldQuery(q bquery.Query, limit int) ([]models.SearchResult, error) {
	req := bleve.NewSearchRequest(q)
	req.Size = limit
	req.Fields = []string{"key", "display_name", "record_kind"}
	res, err := e.store.Index().Search(req)
	if err != nil {
		return nil, fmt.Errorf("%w: running query: %v", wserr.ErrIO, err)
	}
	results := make([]models.SearchResult, 0, len(res.Hits))
	for _, hit := range res.Hits {
		results = append(results, models.SearchResult{
			Key:         stringField(hit.Fields, "key", hit.ID),
			DisplayName: stringField(hit.Fields, "display_name", ""),
			Score:       hit.Score,
			RecordKind:  models.RecordKind(stringField(hit.Fields, "record_kind", "")),
		})
	}
	return results, nil
}

func stringField(fields map[string]interface{}, name, fallback string) string {
	if v, ok := fields[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}

// SearchLauncher implements launcher mode: a whole-index walk scoring
// every document's display_name against the lowercased, whitespace-split
// query parts via the subsequence scorer, sorted descending and truncated
// to limit.
func (e *Engine) SearchLauncher(query string, limit int) ([]models.SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, nil
	}
	parts := strings.Fields(strings.ToLower(trimmed))
	if len(parts) == 0 {
		return nil, nil
	}

	var matches []models.SearchResult
	err := e.store.WalkAll(func(doc *models.Document) error {
		if doc.DisplayName == "" {
			return nil
		}
		score, ok := ranking.LauncherScore(parts, strings.ToLower(doc.DisplayName))
		if !ok {
			return nil
		}
		matches = append(matches, models.SearchResult{
			Key:         doc.Key,
			DisplayName: doc.DisplayName,
			Score:       score,
			RecordKind:  doc.RecordKind,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
