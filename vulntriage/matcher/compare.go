package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/scylladb/go-set/strset"
)

// Score summarizes how well a set of vulnerability words is covered by a set of reference words.
type Score struct {
	MatchedCount      int
	AverageSimilarity float64
	PrefixFound       bool
}

// Compare scores every vulnerability word against the reference words. A word counts when its best score reaches
// the fuzz ratio threshold. Either set being empty yields the zero Score.
func Compare(vulnWords, refWords *strset.Set, cfg Config) Score {
	if vulnWords == nil || refWords == nil || vulnWords.IsEmpty() || refWords.IsEmpty() {
		return Score{}
	}

	var (
		score Score
		total int
	)
	vulnWords.Each(func(word string) bool {
		best, prefix := bestScore(word, refWords, cfg)
		if best >= cfg.FuzzRatioThreshold {
			score.MatchedCount++
			total += best
			if prefix {
				score.PrefixFound = true
			}
		}
		return true
	})

	if score.MatchedCount > 0 {
		score.AverageSimilarity = float64(total) / float64(score.MatchedCount)
	}
	return score
}

// bestScore returns the highest score of word against any reference word and whether it came from a prefix match.
// A prefix match in a bucket whose threshold is 100 ends the scan.
func bestScore(word string, refWords *strset.Set, cfg Config) (best int, prefix bool) {
	threshold := cfg.prefixThreshold(utf8.RuneCountInString(word))

	refWords.Each(func(ref string) bool {
		if threshold == perfectScore && strings.HasPrefix(ref, word) {
			best, prefix = perfectScore, true
			return false
		}
		if ratio := Ratio(word, ref); ratio > best {
			best = ratio
		}
		return true
	})
	return best, prefix
}
