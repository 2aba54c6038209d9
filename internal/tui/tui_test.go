package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/worksentry/worksentry/internal/models"
)

func TestModelUpdateSearchResultMsgPopulatesResults(t *testing.T) {
	m := Model{}
	results := []models.SearchResult{
		{Key: "/a/b.txt", DisplayName: "b.txt", Score: 1.0, RecordKind: models.RecordFile},
	}
	next, _ := m.Update(searchResultMsg(results))
	got := next.(Model)
	if len(got.results) != 1 || got.results[0].DisplayName != "b.txt" {
		t.Errorf("results = %+v", got.results)
	}
	if got.searching {
		t.Errorf("searching should be cleared once results arrive")
	}
}

func TestModelUpdateCursorNavigation(t *testing.T) {
	m := Model{results: []models.SearchResult{{Key: "a"}, {Key: "b"}, {Key: "c"}}, cursor: 0}
	m.width = 80

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	got := next.(Model)
	if got.cursor != 1 {
		t.Fatalf("cursor after down = %d, want 1", got.cursor)
	}

	next, _ = got.Update(tea.KeyMsg{Type: tea.KeyUp})
	got = next.(Model)
	if got.cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", got.cursor)
	}
}

func TestPadBetweenFillsWidth(t *testing.T) {
	out := padBetween("left", "right", 20)
	if len(out) != 20 {
		t.Errorf("padBetween length = %d, want 20: %q", len(out), out)
	}
}

func TestClamp(t *testing.T) {
	if clamp(5, 10, 20) != 10 {
		t.Errorf("clamp below range failed")
	}
	if clamp(25, 10, 20) != 20 {
		t.Errorf("clamp above range failed")
	}
	if clamp(15, 10, 20) != 15 {
		t.Errorf("clamp in range failed")
	}
}
