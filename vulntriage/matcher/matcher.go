package matcher

import (
	"math"

	"github.com/scylladb/go-set/strset"

	"github.com/vulntriage/vulntriage/vulntriage/inventory"
	"github.com/vulntriage/vulntriage/vulntriage/match"
	"github.com/vulntriage/vulntriage/vulntriage/words"
)

// FindBestMatches scores the vulnerability's product description against every inventory entry and returns the
// qualifying entries ranked by tier, matched word count and average similarity. At most Index1ResultsLimit records
// of the fuzzy tier are kept.
func FindBestMatches(description string, entries []inventory.Entry, cfg Config) match.Records {
	vendor, product := words.SplitVendorProduct(description)
	vendorWords := words.Normalize(vendor, cfg.MinWordLength)
	productWords := words.Normalize(product, cfg.MinWordLength)

	var records match.Records
	for _, entry := range entries {
		record, ok := score(entry, vendorWords, productWords, cfg)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return records.Truncate(cfg.Index1ResultsLimit)
}

func score(entry inventory.Entry, vendorWords, productWords *strset.Set, cfg Config) (match.Record, bool) {
	refWords := words.Normalize(entry.Reference(), cfg.MinWordLength)
	if refWords.IsEmpty() {
		return match.Record{}, false
	}

	vendorScore := Compare(vendorWords, refWords, cfg)
	productScore := Compare(productWords, refWords, cfg)

	total := vendorScore.MatchedCount + productScore.MatchedCount
	if total == 0 {
		return match.Record{}, false
	}

	tier := match.TierOf(vendorScore.PrefixFound, productScore.PrefixFound, total)
	if tier < match.FuzzyTier || total < cfg.MinMatchedWords {
		return match.Record{}, false
	}

	weighted := vendorScore.AverageSimilarity*float64(vendorScore.MatchedCount) +
		productScore.AverageSimilarity*float64(productScore.MatchedCount)

	return match.Record{
		Entry:               entry,
		Tier:                tier,
		MatchedWordCount:    total,
		AverageSimilarity:   int(math.RoundToEven(weighted / float64(total))),
		VendorMatchedCount:  vendorScore.MatchedCount,
		ProductMatchedCount: productScore.MatchedCount,
	}, true
}
