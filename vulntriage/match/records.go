package match

import (
	"sort"
)

var _ sort.Interface = (*ByRank)(nil)

// ByRank orders records by descending tier, then matched word count, then average similarity.
type ByRank []Record

// Len is the number of elements in the collection.
func (r ByRank) Len() int {
	return len(r)
}

// Less reports whether the element with index i should sort before the element with index j.
func (r ByRank) Less(i, j int) bool {
	if r[i].Tier == r[j].Tier {
		if r[i].MatchedWordCount == r[j].MatchedWordCount {
			return r[i].AverageSimilarity > r[j].AverageSimilarity
		}
		return r[i].MatchedWordCount > r[j].MatchedWordCount
	}
	return r[i].Tier > r[j].Tier
}

// Swap swaps the elements with indexes i and j.
func (r ByRank) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}

// Records is a ranked list of inventory candidates for a single vulnerability.
type Records []Record

// Sort ranks the records in place. Records that compare equal keep their relative order.
func (r Records) Sort() {
	sort.Stable(ByRank(r))
}

// Truncate ranks the records and keeps at most limit tier-1 records. Records at higher tiers are never dropped.
func (r Records) Truncate(limit int) Records {
	r.Sort()

	var strong, weak Records
	for _, record := range r {
		if record.Tier > FuzzyTier {
			strong = append(strong, record)
			continue
		}
		weak = append(weak, record)
	}

	if limit < 0 {
		limit = 0
	}
	if len(weak) > limit {
		weak = weak[:limit]
	}

	out := append(strong, weak...)
	out.Sort()
	return out
}

// Count returns the number of records at the given tier.
func (r Records) Count(tier Tier) int {
	var n int
	for _, record := range r {
		if record.Tier == tier {
			n++
		}
	}
	return n
}

// Best returns the top-ranked record, if any.
func (r Records) Best() (Record, bool) {
	if len(r) == 0 {
		return Record{}, false
	}
	return r[0], true
}
