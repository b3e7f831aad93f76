package matcher

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scylladb/go-set/strset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulntriage/vulntriage/vulntriage/inventory"
	"github.com/vulntriage/vulntriage/vulntriage/match"
)

func entry(id, vendor, name string) inventory.Entry {
	return inventory.Entry{ID: id, Vendor: vendor, Name: name, Source: inventory.LocalSource}
}

func ids(records match.Records) []string {
	var out []string
	for _, r := range records {
		out = append(out, r.Entry.ID)
	}
	return out
}

// gatewayInventory holds one vendor prefix candidate and seven identical fuzzy-only candidates.
func gatewayInventory() []inventory.Entry {
	entries := []inventory.Entry{
		entry("g-unrelated", "Gateway Corp", "Router"),
		entry("empty", "", "12"),
	}
	for i := 1; i <= 7; i++ {
		entries = append(entries, entry(fmt.Sprintf("g%d", i), "Contoso", fmt.Sprintf("Dashboard Gateway %d", i)))
	}
	return append(entries, entry("acme", "Acme", "Dashboard"))
}

func TestFindBestMatches_prefixTiers(t *testing.T) {
	allPrefix := DefaultConfig()
	allPrefix.PrefixThresholdMedium = 100
	allPrefix.PrefixThresholdLong = 100

	inv := []inventory.Entry{entry("win", "Microsoft", "Windows 11 Pro")}

	tests := []struct {
		name     string
		cfg      Config
		expected match.Record
	}{
		{
			name: "both halves prefix match",
			cfg:  allPrefix,
			expected: match.Record{
				Entry:               inv[0],
				Tier:                match.FullPrefixTier,
				MatchedWordCount:    2,
				AverageSimilarity:   100,
				VendorMatchedCount:  1,
				ProductMatchedCount: 1,
			},
		},
		{
			name: "medium words only reach the fuzzy tier by default",
			cfg:  DefaultConfig(),
			expected: match.Record{
				Entry:               inv[0],
				Tier:                match.FuzzyTier,
				MatchedWordCount:    2,
				AverageSimilarity:   100,
				VendorMatchedCount:  1,
				ProductMatchedCount: 1,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := FindBestMatches("Microsoft - Windows 10 Enterprise", inv, test.cfg)
			require.Len(t, actual, 1)
			if d := cmp.Diff(test.expected, actual[0]); d != "" {
				t.Errorf("unexpected record (-want +got):\n%s", d)
			}
		})
	}
}

func TestFindBestMatches_capsFuzzyTier(t *testing.T) {
	actual := FindBestMatches("Acme - Dashboard Gateway", gatewayInventory(), DefaultConfig())

	assert.Equal(t, []string{"acme", "g1", "g2", "g3", "g4", "g5"}, ids(actual))
	assert.Equal(t, match.PartialPrefixTier, actual[0].Tier)
	assert.Equal(t, 5, actual.Count(match.FuzzyTier))

	cfg := DefaultConfig()
	cfg.Index1ResultsLimit = 1
	actual = FindBestMatches("Acme - Dashboard Gateway", gatewayInventory(), cfg)
	assert.Equal(t, []string{"acme", "g1"}, ids(actual))
}

func TestFindBestMatches_minMatchedWords(t *testing.T) {
	inv := []inventory.Entry{entry("gw", "Gateway Corp", "Router")}

	assert.Empty(t, FindBestMatches("Acme - Dashboard Gateway", inv, DefaultConfig()))

	cfg := DefaultConfig()
	cfg.MinMatchedWords = 1
	actual := FindBestMatches("Acme - Dashboard Gateway", inv, cfg)
	require.Len(t, actual, 1)
	assert.Equal(t, 1, actual[0].MatchedWordCount)
	assert.Equal(t, 0, actual[0].VendorMatchedCount)
}

func TestFindBestMatches_noDescription(t *testing.T) {
	assert.Empty(t, FindBestMatches("", gatewayInventory(), DefaultConfig()))
	assert.Empty(t, FindBestMatches("Acme - Dashboard", nil, DefaultConfig()))
}

func TestFindBestMatches_rankingOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Index1ResultsLimit = 100
	cfg.MinMatchedWords = 1

	inv := append(gatewayInventory(),
		entry("dash", "Dash", "Gate"),
		entry("acme-gw", "Acme", "Gateway Dashboard"),
		entry("gateways", "Contoso", "Gateways"),
	)

	actual := FindBestMatches("Acme - Dashboard Gateway", inv, cfg)
	require.NotEmpty(t, actual)

	for i := 1; i < len(actual); i++ {
		prev, cur := actual[i-1], actual[i]
		before := []int{int(prev.Tier), prev.MatchedWordCount, prev.AverageSimilarity}
		after := []int{int(cur.Tier), cur.MatchedWordCount, cur.AverageSimilarity}
		assert.False(t, lexicallyLess(before, after), "record %d (%v) ranks above %d (%v)", i-1, prev, i, cur)
		assert.GreaterOrEqual(t, int(cur.Tier), int(match.FuzzyTier))
	}
}

func lexicallyLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func TestFindBestMatches_deterministic(t *testing.T) {
	first := FindBestMatches("Acme - Dashboard Gateway", gatewayInventory(), DefaultConfig())
	for i := 0; i < 10; i++ {
		again := FindBestMatches("Acme - Dashboard Gateway", gatewayInventory(), DefaultConfig())
		if d := cmp.Diff(first, again); d != "" {
			t.Fatalf("results differ between runs (-first +again):\n%s", d)
		}
	}
}

func TestFindBestMatches_thresholdMonotonicity(t *testing.T) {
	inv := append(gatewayInventory(),
		entry("dash", "Dash", "Gates"),
		entry("dashing", "Dashing", "Getaway"),
		entry("boards", "Boards", "Gate"),
	)

	var previous *strset.Set
	for threshold := 0; threshold <= 100; threshold += 5 {
		cfg := DefaultConfig()
		cfg.Index1ResultsLimit = 100
		cfg.FuzzRatioThreshold = threshold

		current := strset.New(ids(FindBestMatches("Acme - Dashboard Gateway", inv, cfg))...)
		if previous != nil {
			assert.True(t, previous.IsSuperset(current), "threshold %d added matches: %v", threshold, strset.Difference(current, previous).List())
		}
		previous = current
	}
}
