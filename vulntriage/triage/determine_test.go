package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulntriage/vulntriage/vulntriage/inventory"
	"github.com/vulntriage/vulntriage/vulntriage/journal"
	"github.com/vulntriage/vulntriage/vulntriage/match"
	"github.com/vulntriage/vulntriage/vulntriage/rule"
	"github.com/vulntriage/vulntriage/vulntriage/status"
)

func fixtureRules() rule.Set {
	return rule.NewSet(
		rule.Parse(rule.DenyCategory, "wordpress", "WordPress;;1"),
		rule.Parse(rule.AllowCategory, "own", "MyVendor;MyProduct;ID-DA-123;0"),
		rule.Parse(rule.AllowCategory, "contact", "WordPress;Contact Form;ID-WP;0"),
		rule.Parse(rule.LinuxCategory, "kernel", "Linux;Kernel;ID-LNX-001;Linux Kernel"),
	)
}

func fuzzyMatch() match.Records {
	return match.Records{{
		Entry:             inventory.Entry{ID: "ID-WIN-11", Vendor: "Microsoft", Name: "Windows 11"},
		Tier:              match.FuzzyTier,
		MatchedWordCount:  2,
		AverageSimilarity: 80,
	}}
}

func TestDetermine(t *testing.T) {
	duplicate := []journal.Entry{{CVE: "CVE-2024-0001"}}

	tests := []struct {
		name         string
		description  string
		duplicates   []journal.Entry
		rules        rule.Set
		matches      match.Records
		expected     status.Decision
		expectedFrom Source
		expectedRule string
	}{
		{
			name:         "duplicate beats a priority rule",
			description:  "WordPress Plugin Contact Form 7",
			duplicates:   duplicate,
			rules:        fixtureRules(),
			matches:      fuzzyMatch(),
			expected:     status.Decision{Status: status.Duplicate},
			expectedFrom: JournalSource,
		},
		{
			name:         "priority rule beats inventory evidence",
			description:  "WordPress Plugin Contact Form 7",
			rules:        fixtureRules(),
			matches:      fuzzyMatch(),
			expected:     status.Decision{Status: status.Deny, ResolvedID: status.AbsentID},
			expectedFrom: RuleSource,
			expectedRule: "wordpress",
		},
		{
			name:         "inventory evidence blocks an ordinary rule",
			description:  "Product by MyVendor named MyProduct",
			rules:        fixtureRules(),
			matches:      fuzzyMatch(),
			expected:     status.Decision{Status: status.Undecided},
			expectedFrom: InventorySource,
		},
		{
			name:         "ordinary rule without inventory evidence",
			description:  "Product by MyVendor named MyProduct",
			rules:        fixtureRules(),
			expected:     status.Decision{Status: status.Allow, ResolvedID: "ID-DA-123"},
			expectedFrom: RuleSource,
			expectedRule: "own",
		},
		{
			name:         "linux rule without inventory evidence",
			description:  "Linux - Kernel",
			rules:        fixtureRules(),
			expected:     status.Decision{Status: status.Linux, ResolvedID: "ID-LNX-001"},
			expectedFrom: RuleSource,
			expectedRule: "kernel",
		},
		{
			name:         "no evidence at all",
			description:  "Unknown exotic product",
			rules:        fixtureRules(),
			expected:     status.Decision{Status: status.Deny, ResolvedID: status.AbsentID},
			expectedFrom: DefaultSource,
		},
		{
			name:         "no rules configured",
			description:  "Microsoft - Windows",
			expected:     status.Decision{Status: status.Deny, ResolvedID: status.AbsentID},
			expectedFrom: DefaultSource,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := Determine(test.description, test.duplicates, test.rules, test.matches)

			assert.Equal(t, test.expected, actual.Decision)
			assert.Equal(t, test.expectedFrom, actual.Source)
			if test.expectedRule == "" {
				assert.Nil(t, actual.Rule)
			} else {
				require.NotNil(t, actual.Rule)
				assert.Equal(t, test.expectedRule, actual.Rule.Name)
			}
			if actual.Decision.Status == status.Undecided {
				assert.Empty(t, actual.Decision.ResolvedID)
			}
			assert.Equal(t, test.matches, actual.Matches)
		})
	}
}

func TestDetermine_ordinaryRuleNeverOverridesMatches(t *testing.T) {
	rules := rule.NewSet(
		rule.Parse(rule.DenyCategory, "d", "Acme;;0"),
		rule.Parse(rule.AllowCategory, "a", "Acme;;ID-1;0"),
		rule.Parse(rule.LinuxCategory, "l", "Acme;;ID-2;"),
		rule.Parse(rule.ConditionalCategory, "c", "Acme;;0"),
	)

	for _, c := range rule.Categories {
		subset := rule.Set{c: rules[c]}
		actual := Determine("Acme - Widget", nil, subset, fuzzyMatch())
		assert.Equal(t, status.Undecided, actual.Decision.Status, "category %s", c)
	}
}

func TestDetermine_deterministic(t *testing.T) {
	first := Determine("WordPress Plugin Contact Form 7", nil, fixtureRules(), nil)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Determine("WordPress Plugin Contact Form 7", nil, fixtureRules(), nil))
	}
}
