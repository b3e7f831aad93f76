package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulntriage/vulntriage/vulntriage/presenter/internal"
	"github.com/vulntriage/vulntriage/vulntriage/status"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument(internal.GenerateAnalysis(t), SortByInput, nil)

	require.Len(t, doc.Results, 4)
	assert.Equal(t, "CVE-2024-0001", doc.Results[0].Vulnerability.CVE)
	assert.Equal(t, "undecided", doc.Results[0].Status)
	assert.Empty(t, doc.Results[0].ResolvedID)
	require.Len(t, doc.Results[0].Candidates, 1)
	assert.Equal(t, Candidate{
		ID:                  "ID-WIN-11",
		Vendor:              "Microsoft",
		Name:                "Windows 11 Pro",
		Source:              "local",
		Tier:                1,
		MatchedWords:        2,
		AverageSimilarity:   100,
		VendorMatchedWords:  1,
		ProductMatchedWords: 1,
	}, doc.Results[0].Candidates[0])

	linux := doc.Results[2]
	assert.Equal(t, "Linux Kernel", linux.DisplayProduct)
	assert.Equal(t, &RuleRef{Name: "kernel", Category: "linux"}, linux.Rule)
	assert.NotNil(t, linux.Candidates, "candidates are never null")

	assert.Equal(t, &RuleRef{Name: "wordpress", Category: "deny", Priority: true}, doc.Results[1].Rule)

	assert.Equal(t, 1, doc.Count(status.Duplicate))
	assert.Equal(t, 1, doc.Count(status.Undecided))
	assert.Equal(t, 0, doc.Count(status.Allow))

	assert.Equal(t, "vulntriage", doc.Descriptor.Name)
	assert.Equal(t, "2025-10-15T09:30:00Z", doc.Descriptor.Timestamp)
	assert.Equal(t, "00000000deadbeef", doc.Descriptor.ConfigFingerprint)
}

func TestNewDocument_sortByStatus(t *testing.T) {
	doc := NewDocument(internal.GenerateAnalysis(t), SortByStatus, nil)

	var statuses []string
	for _, r := range doc.Results {
		statuses = append(statuses, r.Status)
	}
	assert.Equal(t, []string{"undecided", "linux", "deny", "duplicate"}, statuses)
}

func TestParseSortStrategy(t *testing.T) {
	s, ok := ParseSortStrategy("")
	assert.True(t, ok)
	assert.Equal(t, DefaultSortStrategy, s)

	s, ok = ParseSortStrategy(" Status ")
	assert.True(t, ok)
	assert.Equal(t, SortByStatus, s)

	_, ok = ParseSortStrategy("severity")
	assert.False(t, ok)
}
