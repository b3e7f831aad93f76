package matcher

import (
	"math"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Ratio returns the similarity of two words in [0, 100]: twice the length of their longest common subsequence over
// the sum of their lengths, counted in runes and rounded half to even. Two empty words are identical.
func Ratio(a, b string) int {
	if a == b {
		return perfectScore
	}

	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return perfectScore
	}

	common := commonRunes(a, b)
	return int(math.RoundToEven(float64(perfectScore*2*common) / float64(total)))
}

// commonRunes is the length of the longest common subsequence of a and b. A minimal diff (no timeout) keeps exactly
// the longest common subsequence as its equal segments.
func commonRunes(a, b string) int {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	var n int
	for _, d := range dmp.DiffMain(a, b, false) {
		if d.Type == diffmatchpatch.DiffEqual {
			n += utf8.RuneCountInString(d.Text)
		}
	}
	return n
}
