package models

import (
	"github.com/vulntriage/vulntriage/vulntriage/match"
)

// Candidate is an inventory entry proposed for a vulnerability.
type Candidate struct {
	ID                  string `json:"id"`
	Vendor              string `json:"vendor"`
	Name                string `json:"name"`
	Source              string `json:"source"`
	Tier                int    `json:"tier"`
	MatchedWords        int    `json:"matchedWords"`
	AverageSimilarity   int    `json:"averageSimilarity"`
	VendorMatchedWords  int    `json:"vendorMatchedWords"`
	ProductMatchedWords int    `json:"productMatchedWords"`
}

func newCandidate(r match.Record) Candidate {
	return Candidate{
		ID:                  r.Entry.ID,
		Vendor:              r.Entry.Vendor,
		Name:                r.Entry.Name,
		Source:              string(r.Entry.Source),
		Tier:                int(r.Tier),
		MatchedWords:        r.MatchedWordCount,
		AverageSimilarity:   r.AverageSimilarity,
		VendorMatchedWords:  r.VendorMatchedCount,
		ProductMatchedWords: r.ProductMatchedCount,
	}
}
