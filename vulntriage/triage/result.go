package triage

import (
	"github.com/vulntriage/vulntriage/vulntriage/journal"
	"github.com/vulntriage/vulntriage/vulntriage/match"
	"github.com/vulntriage/vulntriage/vulntriage/rule"
	"github.com/vulntriage/vulntriage/vulntriage/status"
	"github.com/vulntriage/vulntriage/vulntriage/vulnerability"
)

// Source names the evidence a decision was taken on.
type Source string

const (
	JournalSource   Source = "journal"
	RuleSource      Source = "rule"
	InventorySource Source = "inventory"
	DefaultSource   Source = "default"
)

// Result is the outcome of triaging one vulnerability along with the evidence that was gathered for it.
type Result struct {
	Vulnerability vulnerability.Vulnerability `json:"vulnerability"`
	Decision      status.Decision             `json:"decision"`
	Source        Source                      `json:"source"`
	// Rule is set when an override rule decided.
	Rule       *rule.Rule      `json:"rule,omitempty"`
	Duplicates []journal.Entry `json:"duplicates,omitempty"`
	Matches    match.Records   `json:"matches,omitempty"`
	// Words are the normalized words of the whole product description.
	Words []string `json:"words,omitempty"`
}

// DisplayProduct is the product text shown in reports: the replacement name of a deciding Linux rule when it has
// one, otherwise the original description.
func (r Result) DisplayProduct() string {
	if r.Rule != nil && r.Rule.Category == rule.LinuxCategory && r.Rule.ReplacementName != "" {
		return r.Rule.ReplacementName
	}
	return r.Vulnerability.Product
}
