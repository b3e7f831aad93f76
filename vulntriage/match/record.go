package match

import (
	"fmt"

	"github.com/vulntriage/vulntriage/vulntriage/inventory"
)

// Tier is the confidence bucket of an inventory candidate, driven by which halves of the vulnerable software
// description (vendor and/or product) reached a prefix-level match.
type Tier int

const (
	// NoEvidence is never materialized into a Record.
	NoEvidence Tier = iota
	// FuzzyTier means words matched only through the fuzzy ratio.
	FuzzyTier
	// PartialPrefixTier means exactly one of the vendor/product halves found a prefix match.
	PartialPrefixTier
	// FullPrefixTier means both halves found a prefix match.
	FullPrefixTier
)

// TierOf derives the tier from the prefix evidence of both halves and the total number of matched words.
func TierOf(vendorPrefix, productPrefix bool, totalMatches int) Tier {
	switch {
	case vendorPrefix && productPrefix:
		return FullPrefixTier
	case vendorPrefix || productPrefix:
		return PartialPrefixTier
	case totalMatches > 0:
		return FuzzyTier
	default:
		return NoEvidence
	}
}

// Record is an inventory entry that cleared the minimum-match bar for one vulnerability.
type Record struct {
	Entry               inventory.Entry `json:"entry"`
	Tier                Tier            `json:"tier"`
	MatchedWordCount    int             `json:"matchedWordCount"`
	AverageSimilarity   int             `json:"averageSimilarity"`
	VendorMatchedCount  int             `json:"vendorMatchedCount"`
	ProductMatchedCount int             `json:"productMatchedCount"`
}

// VendorName is the inventory vendor and name as shown to an analyst.
func (r Record) VendorName() string {
	return fmt.Sprintf("%s - %s", r.Entry.Vendor, r.Entry.Name)
}

func (r Record) String() string {
	return fmt.Sprintf("Record(id=%q tier=%d words=%d similarity=%d source=%s)", r.Entry.ID, r.Tier, r.MatchedWordCount, r.AverageSimilarity, r.Entry.Source)
}
