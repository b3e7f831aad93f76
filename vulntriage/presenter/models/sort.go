package models

import (
	"sort"
	"strings"

	"github.com/vulntriage/vulntriage/vulntriage/status"
)

type SortStrategy string

const (
	// SortByInput keeps the order of the vulnerability table.
	SortByInput SortStrategy = "input"
	// SortByStatus puts results that need an analyst first, followed by the journal status order.
	SortByStatus SortStrategy = "status"

	DefaultSortStrategy = SortByInput
)

func SortStrategies() []SortStrategy {
	return []SortStrategy{SortByInput, SortByStatus}
}

// ParseSortStrategy returns the strategy with the given name, and false when it is unknown.
func ParseSortStrategy(name string) (SortStrategy, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultSortStrategy, true
	}
	for _, s := range SortStrategies() {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

func (s SortStrategy) String() string {
	return string(s)
}

var statusRank = func() map[string]int {
	rank := map[string]int{status.Undecided.String(): 0}
	for idx, s := range status.Ordered {
		rank[s.String()] = idx + 1
	}
	return rank
}()

func sortResults(results []Result, strategy SortStrategy) {
	if strategy != SortByStatus {
		return
	}
	sort.SliceStable(results, func(i, j int) bool {
		return statusRank[results[i].Status] < statusRank[results[j].Status]
	})
}
