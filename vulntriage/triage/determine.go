/*
Package triage decides the status of a vulnerability from journal duplicates, override rules and inventory matches.
*/
package triage

import (
	"github.com/vulntriage/vulntriage/vulntriage/journal"
	"github.com/vulntriage/vulntriage/vulntriage/match"
	"github.com/vulntriage/vulntriage/vulntriage/rule"
	"github.com/vulntriage/vulntriage/vulntriage/status"
)

// Determine applies the precedence cascade to the gathered evidence and returns the first verdict reached:
//
//  1. any journal duplicate yields Duplicate
//  2. a matching priority rule yields its verdict
//  3. any inventory match yields Undecided
//  4. a matching ordinary rule yields its verdict
//  5. otherwise Deny with the absent id
//
// Inventory matches block ordinary rules: only a priority rule or a clean absence of matches lets a rule decide.
func Determine(description string, duplicates []journal.Entry, rules rule.Set, matches match.Records) Result {
	result := Result{
		Duplicates: duplicates,
		Matches:    matches,
	}

	if len(duplicates) > 0 {
		result.Decision = status.NewDuplicate()
		result.Source = JournalSource
		return result
	}

	if m := rule.Evaluate(description, rules, true); m != nil {
		return decidedByRule(result, m)
	}

	if len(matches) > 0 {
		result.Decision = status.NewUndecided()
		result.Source = InventorySource
		return result
	}

	if m := rule.Evaluate(description, rules, false); m != nil {
		return decidedByRule(result, m)
	}

	result.Decision = status.NewDeny()
	result.Source = DefaultSource
	return result
}

func decidedByRule(result Result, m *rule.Match) Result {
	r := m.Rule
	result.Decision = m.Decision
	result.Source = RuleSource
	result.Rule = &r
	return result
}
