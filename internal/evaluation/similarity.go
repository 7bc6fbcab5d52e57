package evaluation

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// foldCaser performs Unicode case folding for case-insensitive comparison.
// Shared at package level; cases.Fold() is safe for concurrent use.
var foldCaser = cases.Fold()

// responseSimilarity returns the normalized Levenshtein similarity of the
// two responses in [0,1], 1.0 meaning identical after case folding. It is
// recorded alongside each ResponsePair as a cheap signal of how much the
// prompt formatting actually changed the output.
func responseSimilarity(s1, s2 string) float64 {
	s1 = foldCaser.String(s1)
	s2 = foldCaser.String(s2)
	if s1 == s2 {
		return 1.0
	}

	// Levenshtein operates on runes, so normalize by rune count.
	distance := levenshtein.ComputeDistance(s1, s2)
	maxLen := utf8.RuneCountInString(s1)
	if n := utf8.RuneCountInString(s2); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}

	similarity := 1.0 - float64(distance)/float64(maxLen)
	if similarity < 0 {
		similarity = 0
	}
	return similarity
}
