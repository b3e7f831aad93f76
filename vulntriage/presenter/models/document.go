package models

import (
	"time"

	"github.com/vulntriage/vulntriage/internal"
	"github.com/vulntriage/vulntriage/internal/version"
	"github.com/vulntriage/vulntriage/vulntriage"
	"github.com/vulntriage/vulntriage/vulntriage/status"
)

// Document represents the JSON document to be presented
type Document struct {
	Results    []Result       `json:"results"`
	Summary    map[string]int `json:"summary"`
	Descriptor descriptor     `json:"descriptor"`
}

// NewDocument creates and populates a new Document struct, representing the populated JSON document.
func NewDocument(analysis vulntriage.Analysis, sortBy SortStrategy, appConfig interface{}) Document {
	results := make([]Result, 0, len(analysis.Results))
	for _, r := range analysis.Results {
		results = append(results, newResult(r))
	}
	sortResults(results, sortBy)

	summary := make(map[string]int)
	for s, n := range analysis.Counts() {
		summary[s.String()] = n
	}

	d := analysis.Descriptor
	return Document{
		Results: results,
		Summary: summary,
		Descriptor: descriptor{
			Name:              internal.ApplicationName,
			Version:           version.FromBuild().Version,
			ID:                d.ID,
			Timestamp:         d.Timestamp.Format(time.RFC3339),
			Responsible:       d.Responsible,
			Publication:       d.Publication,
			ConfigFingerprint: d.ConfigFingerprint,
			InventorySize:     d.InventorySize,
			RuleCount:         d.RuleCount,
			Configuration:     appConfig,
		},
	}
}

// Count returns the number of results with the given status name.
func (d Document) Count(s status.Status) int {
	return d.Summary[s.String()]
}
