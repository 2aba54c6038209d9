// Package tokenize implements the CJK-aware query tokenizer: plain
// whitespace splitting for Latin-script queries, and Bleve's CJK bigram
// analyzer (the same ecosystem answer the rest of this codebase's search
// stack already depends on) for queries containing CJK code points.
package tokenize

import (
	"strings"
	"unicode"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/cjk"
	"github.com/blevesearch/bleve/v2/registry"
)

// cjkAnalyzer is built once from Bleve's own analyzer registry, the same
// path the Index Store's document mapping would take; its bigram output
// is exactly the overlapping-short-span behavior the tokenizer contract
// calls for.
var cjkAnalyzer analysis.Analyzer

func init() {
	cache := registry.NewCache()
	a, err := cache.AnalyzerNamed(cjk.AnalyzerName)
	if err != nil {
		panic("tokenize: failed to build cjk analyzer: " + err.Error())
	}
	cjkAnalyzer = a
}

// Tokenize splits q into an ordered sequence of non-empty tokens. Queries
// containing any CJK Unified Ideographs, CJK Extension-A, or CJK
// Extension-B code point are segmented with the bigram analyzer; all
// others are split on whitespace and filtered to [alphanumeric_-].
func Tokenize(q string) []string {
	if q == "" {
		return nil
	}
	if containsCJK(q) {
		return tokenizeCJK(q)
	}
	return tokenizeLatin(q)
}

func tokenizeLatin(q string) []string {
	fields := strings.Fields(q)
	tokens := make([]string, 0, len(fields))
	var b strings.Builder
	for _, f := range fields {
		b.Reset()
		for _, r := range f {
			if isTokenRune(r) {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
		}
	}
	return tokens
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

func tokenizeCJK(q string) []string {
	tokenStream := cjkAnalyzer.Analyze([]byte(q))
	tokens := make([]string, 0, len(tokenStream))
	for _, tok := range tokenStream {
		if len(tok.Term) == 0 {
			continue
		}
		tokens = append(tokens, string(tok.Term))
	}
	return tokens
}

// containsCJK reports whether s contains a code point in any of the three
// ranges the tokenizer contract names.
func containsCJK(s string) bool {
	for _, r := range s {
		if isCJKRune(r) {
			return true
		}
	}
	return false
}

func isCJKRune(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0x3400 && r <= 0x4DBF: // CJK Extension A
		return true
	case r >= 0x20000 && r <= 0x2A6DF: // CJK Extension B
		return true
	}
	return false
}
