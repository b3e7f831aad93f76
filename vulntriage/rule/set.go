package rule

import (
	"sort"
)

// Set holds the rules of every category. Rules of a category are kept in ascending name order.
type Set map[Category][]Rule

// NewSet groups the given rules by category.
func NewSet(rules ...Rule) Set {
	s := make(Set)
	for _, r := range rules {
		s[r.Category] = append(s[r.Category], r)
	}
	for _, c := range s {
		sort.SliceStable(c, func(i, j int) bool {
			return c[i].Name < c[j].Name
		})
	}
	return s
}

// FromSections parses raw rule tables of the form name -> "f1;f2;...", one table per category.
func FromSections(sections map[Category]map[string]string) Set {
	var rules []Rule
	for category, table := range sections {
		for name, value := range table {
			rules = append(rules, Parse(category, name, value))
		}
	}
	return NewSet(rules...)
}

// All returns every rule in evaluation order.
func (s Set) All() []Rule {
	var out []Rule
	for _, c := range Categories {
		out = append(out, s[c]...)
	}
	return out
}

// Len is the total number of rules.
func (s Set) Len() int {
	var n int
	for _, c := range s {
		n += len(c)
	}
	return n
}

// PriorityCount is the number of priority rules.
func (s Set) PriorityCount() int {
	var n int
	for _, r := range s.All() {
		if r.IsPriority() {
			n++
		}
	}
	return n
}
