// Package cli formats Query Engine results for terminal and
// machine-readable output.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/worksentry/worksentry/internal/models"
)

// OutputFormat selects how WriteResults renders a result set.
type OutputFormat string

const (
	// OutputText is human-readable, one block per result (default).
	OutputText OutputFormat = "text"
	// OutputCompact is one result per line.
	OutputCompact OutputFormat = "compact"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteResults writes results to w in the given format.
func WriteResults(w io.Writer, results []models.SearchResult, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case OutputCompact:
		for i, r := range results {
			fmt.Fprintf(w, "#%d %.2f [%s] %s\n", i+1, r.Score, r.RecordKind, truncate(r.DisplayName, 80))
		}
		return nil
	default:
		fmt.Fprintf(w, "%d result(s)\n\n", len(results))
		for i, r := range results {
			fmt.Fprintf(w, "%d. %s\n", i+1, r.DisplayName)
			fmt.Fprintf(w, "   key:   %s\n", r.Key)
			fmt.Fprintf(w, "   kind:  %s\n", r.RecordKind)
			fmt.Fprintf(w, "   score: %.4f\n\n", r.Score)
		}
		return nil
	}
}

// truncate returns s cut to maxLen characters with "..." appended, or s
// unchanged if it already fits or maxLen is non-positive.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if maxLen <= 0 || len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
