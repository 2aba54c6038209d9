package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/worksentry/worksentry/internal/models"
)

func sampleResults() []models.SearchResult {
	return []models.SearchResult{
		{Key: "/a/b.txt", DisplayName: "b.txt", Score: 12.5, RecordKind: models.RecordFile},
	}
}

func TestWriteResultsText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, sampleResults(), OutputText); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	if !strings.Contains(buf.String(), "b.txt") {
		t.Errorf("output missing display name: %s", buf.String())
	}
}

func TestWriteResultsCompact(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, sampleResults(), OutputCompact); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("expected exactly one line per result, got %q", buf.String())
	}
}

func TestWriteResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, sampleResults(), OutputJSON); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	var out []models.SearchResult
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(out) != 1 || out[0].DisplayName != "b.txt" {
		t.Errorf("round-tripped results = %+v", out)
	}
}

func TestWriteResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, nil, OutputText); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	if !strings.Contains(buf.String(), "0 result") {
		t.Errorf("expected a 0-results message, got %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("short string should be unchanged, got %q", got)
	}
	if got := truncate("hello world", 5); got != "hello..." {
		t.Errorf("got %q", got)
	}
	if got := truncate("x", 0); got != "x" {
		t.Errorf("maxLen 0 should return as-is, got %q", got)
	}
}
