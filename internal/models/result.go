package models

// SearchResult is the shape shared by all three Query Engine modes.
type SearchResult struct {
	Key         string     `json:"key"`
	DisplayName string     `json:"display_name"`
	Score       float64    `json:"score"`
	RecordKind  RecordKind `json:"record_kind"`
}

// QueryMode selects one of the three Query Engine modes.
type QueryMode string

const (
	// ModeExact runs a standard boolean tokenized query.
	ModeExact QueryMode = "exact"
	// ModeEnhanced adds fuzzy and/or prefix matching on top of exact terms.
	ModeEnhanced QueryMode = "enhanced"
	// ModeLauncher runs the subsequence-based launcher scorer.
	ModeLauncher QueryMode = "launcher"
)

// SearchQuery bundles the parameters of a single query-engine invocation.
type SearchQuery struct {
	Query  string    `json:"query"`
	Mode   QueryMode `json:"mode"`
	Limit  int       `json:"limit"`
	Fuzzy  bool      `json:"fuzzy"`
	Prefix bool      `json:"prefix"`
}
