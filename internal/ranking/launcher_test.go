package ranking

import (
	"strings"
	"testing"
)

func TestLauncherScoreSubsequenceMatch(t *testing.T) {
	score, ok := LauncherScore([]string{"7r"}, strings.ToLower("7 rules of power双语.epub"))
	if !ok {
		t.Fatal("expected \"7r\" to match \"7 rules of power...\"")
	}
	if score <= 0 {
		t.Errorf("score = %v, want > 0", score)
	}
}

func TestLauncherScoreRejectsNonMatch(t *testing.T) {
	if _, ok := LauncherScore([]string{"xyz"}, "7 rules of power.epub"); ok {
		t.Error("expected \"xyz\" to not match \"7 rules of power.epub\"")
	}
}

func TestLauncherScoreNoRewind(t *testing.T) {
	// "ba" matches "ab" only if the cursor is allowed to rewind between
	// parts; the shared forward cursor must reject the out-of-order case.
	if _, ok := LauncherScore([]string{"b", "a"}, "ab"); ok {
		t.Error("expected parts [\"b\",\"a\"] to fail against \"ab\" (cursor cannot rewind)")
	}
	if _, ok := LauncherScore([]string{"a", "b"}, "ab"); !ok {
		t.Error("expected parts [\"a\",\"b\"] to match \"ab\" in order")
	}
}

func TestLauncherScoreMonotonicLength(t *testing.T) {
	shortScore, ok := LauncherScore([]string{"vibe"}, "vibe.go")
	if !ok {
		t.Fatal("expected match for vibe.go")
	}
	longScore, ok := LauncherScore([]string{"vibe"}, "vibe_coding_session_notes.go")
	if !ok {
		t.Fatal("expected match for vibe_coding_session_notes.go")
	}
	if !(shortScore > longScore) {
		t.Errorf("expected shorter filename to score higher: short=%v long=%v", shortScore, longScore)
	}
}

func TestLauncherScoreNonNegativeWhenMatched(t *testing.T) {
	cases := []string{"a", "readme", "7r", "note"}
	names := []string{"a.txt", "README.md", "7 rules of power.epub", "my_notes_file.json"}
	for i, part := range cases {
		score, ok := LauncherScore([]string{part}, strings.ToLower(names[i]))
		if ok && score < 0 {
			t.Errorf("LauncherScore(%q, %q) = %v, want >= 0", part, names[i], score)
		}
	}
}

func TestLauncherScoreCategoryBonus(t *testing.T) {
	exeScore, ok := LauncherScore([]string{"app"}, "app.exe")
	if !ok {
		t.Fatal("expected match for app.exe")
	}
	jsonScore, ok := LauncherScore([]string{"app"}, "app.json")
	if !ok {
		t.Fatal("expected match for app.json")
	}
	if !(exeScore > jsonScore) {
		t.Errorf("expected .exe bonus to outscore .json penalty: exe=%v json=%v", exeScore, jsonScore)
	}
}

func TestLauncherScoreEmptyInputs(t *testing.T) {
	if _, ok := LauncherScore(nil, "anything.txt"); ok {
		t.Error("expected no-parts query to not match")
	}
	if _, ok := LauncherScore([]string{"a"}, ""); ok {
		t.Error("expected empty filename to not match")
	}
}
