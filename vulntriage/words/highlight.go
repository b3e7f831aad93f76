package words

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/scylladb/go-set/strset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	highlightDelimiters = regexp.MustCompile(`\s+|-|,|\(|\)`)
	nonWordRunes        = regexp.MustCompile(`[^\p{L}\p{N}_]`)
)

// MarkFunc decorates a word of a candidate name that also appears in the vulnerability description. first is
// true only for the first occurrence of each distinct word.
type MarkFunc func(part string, first bool) string

// Highlight rebuilds name with every word found in vulnWords passed through mark. Delimiters (whitespace, dashes,
// commas and parentheses) are kept as they are.
func Highlight(name string, vulnWords *strset.Set, minLength int, mark MarkFunc) string {
	if name == "" || vulnWords == nil || mark == nil {
		return name
	}

	caser := cases.Lower(language.Und)
	seen := strset.New()

	var sb strings.Builder
	for _, part := range splitKeepingDelimiters(name) {
		cleaned := caser.String(nonWordRunes.ReplaceAllString(part, ""))
		if cleaned == "" || utf8.RuneCountInString(cleaned) < minLength || !vulnWords.Has(cleaned) {
			sb.WriteString(part)
			continue
		}
		sb.WriteString(mark(part, !seen.Has(cleaned)))
		seen.Add(cleaned)
	}
	return sb.String()
}

func splitKeepingDelimiters(s string) []string {
	var parts []string
	last := 0
	for _, loc := range highlightDelimiters.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			parts = append(parts, s[last:loc[0]])
		}
		parts = append(parts, s[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(s) {
		parts = append(parts, s[last:])
	}
	return parts
}
