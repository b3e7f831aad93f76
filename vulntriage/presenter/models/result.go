package models

import (
	"github.com/vulntriage/vulntriage/vulntriage/journal"
	"github.com/vulntriage/vulntriage/vulntriage/rule"
	"github.com/vulntriage/vulntriage/vulntriage/triage"
	"github.com/vulntriage/vulntriage/vulntriage/vulnerability"
)

// Result is the presentation of a single triaged vulnerability.
type Result struct {
	Vulnerability  vulnerability.Vulnerability `json:"vulnerability"`
	Status         string                      `json:"status"`
	ResolvedID     string                      `json:"resolvedId,omitempty"`
	Source         string                      `json:"source"`
	DisplayProduct string                      `json:"displayProduct"`
	Rule           *RuleRef                    `json:"rule,omitempty"`
	Candidates     []Candidate                 `json:"candidates"`
	Duplicates     []journal.Entry             `json:"duplicates,omitempty"`
	Words          []string                    `json:"words,omitempty"`
}

// RuleRef identifies the override rule that decided a result.
type RuleRef struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Priority bool   `json:"priority"`
}

func newRuleRef(r *rule.Rule) *RuleRef {
	if r == nil {
		return nil
	}
	return &RuleRef{
		Name:     r.Name,
		Category: string(r.Category),
		Priority: r.IsPriority(),
	}
}

func newResult(r triage.Result) Result {
	// preallocate so that the JSON document shows an empty list rather than null
	candidates := make([]Candidate, 0, len(r.Matches))
	for _, m := range r.Matches {
		candidates = append(candidates, newCandidate(m))
	}

	return Result{
		Vulnerability:  r.Vulnerability,
		Status:         r.Decision.Status.String(),
		ResolvedID:     r.Decision.ResolvedID,
		Source:         string(r.Source),
		DisplayProduct: r.DisplayProduct(),
		Rule:           newRuleRef(r.Rule),
		Candidates:     candidates,
		Duplicates:     r.Duplicates,
		Words:          r.Words,
	}
}
