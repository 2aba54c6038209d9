// Package ranking implements the launcher mode's subsequence scorer:
// small, pure, and unit-tested on its own, the way the teacher's
// filename scorer was factored out of the indexing pipeline for its own
// tests.
package ranking

import (
	"math"
	"strings"
)

// categoryBonus holds the additive category multiplier from the launcher
// scoring algorithm, keyed by lowercased extension (without the dot).
var categoryBonus = map[string]float64{
	"exe": 500, "lnk": 500, "app": 500, "bat": 500, "cmd": 500,
	"rs": -50, "json": -50, "dll": -50, "xml": -50, "sys": -50,
	"ts": -50, "js": -50, "css": -50, "html": -50,
}

const (
	wholeQueryPrefixBonus    = 1000
	wholeQuerySubstringBonus = 500
	wordBoundaryBonus        = 10
	consecutivenessUnit      = 2
	earlinessUnit            = 10
	lengthBonusNumerator     = 100
)

// LauncherScore computes the launcher mode score for a lowercased filename
// against already-lowercased query parts. It returns (score, true) on
// match, or (0, false) if any part fails to match as a subsequence — the
// document is dropped in that case, not merely scored zero.
//
// The shared cursor never rewinds across parts, matching the spec's
// "matched in input order via a shared forward cursor" contract: swapping
// the order of parts can turn a match into a non-match, never the reverse.
func LauncherScore(parts []string, filename string) (float64, bool) {
	if len(filename) == 0 || len(parts) == 0 {
		return 0, false
	}

	score := 0.0
	if len(parts) == 1 {
		p := parts[0]
		if strings.HasPrefix(filename, p) {
			score += wholeQueryPrefixBonus
		} else if strings.Contains(filename, p) {
			score += wholeQuerySubstringBonus
		}
	}

	runes := []rune(filename)
	nameLen := len(runes)
	pos := 0

	for _, part := range parts {
		partRunes := []rune(part)
		if len(partRunes) == 0 {
			continue
		}
		start := -1
		run := 0
		maxRun := 0
		lastMatched := -2
		for _, pr := range partRunes {
			matched := -1
			for pos < nameLen {
				if runes[pos] == pr {
					matched = pos
					pos++
					break
				}
				pos++
			}
			if matched == -1 {
				return 0, false
			}
			if start == -1 {
				start = matched
			}
			if matched == 0 || !isAlphanumeric(runes[matched-1]) {
				score += wordBoundaryBonus
			}
			if matched == lastMatched+1 {
				run++
			} else {
				run = 1
			}
			if run > maxRun {
				maxRun = run
			}
			lastMatched = matched
		}
		score += consecutivenessUnit * float64(maxRun)
		score += earlinessUnit * float64(nameLen-start) / float64(nameLen)
	}

	score += lengthBonusNumerator / math.Sqrt(float64(nameLen))
	score += categoryBonus[extensionOf(filename)]

	return score, true
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func extensionOf(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}
