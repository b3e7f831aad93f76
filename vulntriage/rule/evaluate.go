package rule

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vulntriage/vulntriage/vulntriage/status"
)

// Match is a rule that matched a description together with the verdict it yields.
type Match struct {
	Rule     Rule
	Decision status.Decision
}

// Evaluate tests the description against the rules in category order (deny, allow, linux, conditional) and returns
// the first match, or nil. When priorityOnly is set, rules without the priority flag are skipped.
func Evaluate(description string, rules Set, priorityOnly bool) *Match {
	lower := cases.Lower(language.Und)
	text := lower.String(description)

	for _, category := range Categories {
		for _, r := range rules[category] {
			if priorityOnly && !r.IsPriority() {
				continue
			}
			if !matches(text, r, lower) {
				continue
			}
			return &Match{
				Rule:     r,
				Decision: r.Decision(),
			}
		}
	}
	return nil
}

// matches reports whether the lowercased description contains the rule's vendor and, when set, its product.
func matches(text string, r Rule, lower cases.Caser) bool {
	if r.Vendor == "" {
		return false
	}
	if !strings.Contains(text, lower.String(r.Vendor)) {
		return false
	}
	return r.Product == "" || strings.Contains(text, lower.String(r.Product))
}
