package fileclass

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		ext        string
		recognized bool
		text       bool
	}{
		{"txt", true, true},
		{".TXT", true, true},
		{"go", true, true},
		{"PDF", true, false},
		{"jpg", true, false},
		{"epub", true, false},
		{"exe", true, false},
		{"unknownext", false, false},
		{"", false, false},
	}
	for _, c := range cases {
		t.Run(c.ext, func(t *testing.T) {
			recognized, text := Classify(c.ext)
			if recognized != c.recognized || text != c.text {
				t.Errorf("Classify(%q) = (%v, %v), want (%v, %v)", c.ext, recognized, text, c.recognized, c.text)
			}
		})
	}
}

func TestExt(t *testing.T) {
	if got := Ext("report.PDF"); got != "pdf" {
		t.Errorf("Ext() = %q, want %q", got, "pdf")
	}
	if got := Ext("noext"); got != "" {
		t.Errorf("Ext(%q) = %q, want empty", "noext", got)
	}
}

func TestRecognized(t *testing.T) {
	if !Recognized("md") {
		t.Error("expected md to be recognized")
	}
	if Recognized("xyz") {
		t.Error("expected xyz to be unrecognized")
	}
}
