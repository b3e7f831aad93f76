/*
Package words turns free-text vendor and product descriptions into sets of comparable words.
*/
package words

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/scylladb/go-set/strset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// vendorProductDelimiter takes precedence over commaDelimiter when both are present.
	vendorProductDelimiter = " - "
	commaDelimiter         = ","
)

var (
	digitsPattern  = regexp.MustCompile(`\p{Nd}+`)
	nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
)

// Normalize lowercases the given text, strips digits and punctuation, and returns the set of words that are at
// least minLength code points long. Empty input yields an empty set.
func Normalize(text string, minLength int) *strset.Set {
	set := strset.New()
	if text == "" {
		return set
	}

	// a caser holds state and must not be shared between goroutines
	text = cases.Lower(language.Und).String(text)
	text = digitsPattern.ReplaceAllString(text, "")
	text = nonWordPattern.ReplaceAllString(text, " ")

	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) >= minLength {
			set.Add(word)
		}
	}
	return set
}

// SplitVendorProduct splits a vulnerable software description into its vendor and product halves. The first " - "
// wins; otherwise the first comma is used; otherwise the whole description is the product and the vendor is empty.
func SplitVendorProduct(raw string) (vendor, product string) {
	if strings.Contains(raw, vendorProductDelimiter) {
		parts := strings.SplitN(raw, vendorProductDelimiter, 2)
		return parts[0], parts[1]
	}
	if strings.Contains(raw, commaDelimiter) {
		parts := strings.SplitN(raw, commaDelimiter, 2)
		return parts[0], parts[1]
	}
	return "", raw
}

// Description returns the normalized words of a whole description (vendor and product halves together).
func Description(raw string, minLength int) *strset.Set {
	vendor, product := SplitVendorProduct(raw)
	return Normalize(vendor+" "+product, minLength)
}

// Sorted returns the members of the set in lexical order.
func Sorted(set *strset.Set) []string {
	if set == nil {
		return nil
	}
	list := set.List()
	sort.Strings(list)
	return list
}
