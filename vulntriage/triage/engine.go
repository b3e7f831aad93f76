package triage

import (
	"github.com/vulntriage/vulntriage/internal/log"
	"github.com/vulntriage/vulntriage/vulntriage/inventory"
	"github.com/vulntriage/vulntriage/vulntriage/journal"
	"github.com/vulntriage/vulntriage/vulntriage/match"
	"github.com/vulntriage/vulntriage/vulntriage/matcher"
	"github.com/vulntriage/vulntriage/vulntriage/rule"
	"github.com/vulntriage/vulntriage/vulntriage/vulnerability"
	"github.com/vulntriage/vulntriage/vulntriage/words"
)

// Engine triages vulnerabilities against a frozen snapshot of inventory, rules and journal. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	config    matcher.Config
	rules     rule.Set
	inventory []inventory.Entry
	journal   journal.Provider
}

// NewEngine snapshots the inventory entries of the given provider. A nil journal provider never reports duplicates.
func NewEngine(cfg matcher.Config, rules rule.Set, inv inventory.Provider, j journal.Provider) *Engine {
	var entries []inventory.Entry
	if inv != nil {
		entries = inv.Entries()
	}
	return &Engine{
		config:    cfg,
		rules:     rules,
		inventory: entries,
		journal:   j,
	}
}

func (e *Engine) Config() matcher.Config {
	return e.config
}

func (e *Engine) Rules() rule.Set {
	return e.rules
}

// InventorySize is the number of inventory entries matched against.
func (e *Engine) InventorySize() int {
	return len(e.inventory)
}

// Triage gathers the evidence for a single vulnerability and decides its status.
func (e *Engine) Triage(v vulnerability.Vulnerability) Result {
	var duplicates []journal.Entry
	if e.journal != nil {
		duplicates = e.journal.FindByCVE(v.CVE)
	}

	matches := e.Match(v.Product)

	result := Determine(v.Product, duplicates, e.rules, matches)
	result.Vulnerability = v
	result.Words = words.Sorted(words.Description(v.Product, e.config.MinWordLength))

	log.WithFields("cve", v.CVE, "status", result.Decision.Status, "source", result.Source).
		Debugf("triaged %q with %d candidate(s)", v.Product, len(matches))
	return result
}

// Match returns the ranked inventory candidates for a product description.
func (e *Engine) Match(description string) match.Records {
	return matcher.FindBestMatches(description, e.inventory, e.config)
}
