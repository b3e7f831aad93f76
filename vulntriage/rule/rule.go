/*
Package rule holds the operator-authored override rules and the evaluator that tests a vulnerable software
description against them.
*/
package rule

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/vulntriage/vulntriage/vulntriage/status"
)

const fieldDelimiter = ";"

// Rule is a single override rule. Vendor must be non-empty for the rule to ever match; an empty Product matches any
// product.
type Rule struct {
	Name            string   `json:"name" yaml:"name"`
	Category        Category `json:"category" yaml:"category"`
	Vendor          string   `json:"vendor" yaml:"vendor"`
	Product         string   `json:"product,omitempty" yaml:"product,omitempty"`
	Priority        int      `json:"priority" yaml:"priority"`
	TargetID        string   `json:"targetId,omitempty" yaml:"target-id,omitempty"`
	ReplacementName string   `json:"replacementName,omitempty" yaml:"replacement-name,omitempty"`
	Raw             string   `json:"-" yaml:"-"`
}

// IsPriority reports whether the rule takes precedence over inventory evidence.
func (r Rule) IsPriority() bool {
	return r.Priority == 1
}

// Decision is the verdict the rule yields when it matches.
func (r Rule) Decision() status.Decision {
	switch r.Category {
	case DenyCategory:
		return status.NewDeny()
	case AllowCategory:
		return status.NewAllow(r.TargetID)
	case LinuxCategory:
		return status.NewLinux(r.TargetID)
	case ConditionalCategory:
		return status.NewConditional()
	default:
		return status.NewUndecided()
	}
}

// Parse builds a rule from its semicolon separated value. Missing trailing fields default to empty (or zero
// priority); a priority that is not made of digits is zero.
func Parse(category Category, name, value string) Rule {
	f := fields(strings.Split(value, fieldDelimiter))

	r := Rule{
		Name:     name,
		Category: category,
		Vendor:   f.at(0),
		Product:  f.at(1),
		Raw:      value,
	}

	switch category {
	case AllowCategory:
		r.TargetID = f.at(2)
		r.Priority = parsePriority(f.at(3))
	case LinuxCategory:
		r.TargetID = f.at(2)
		r.ReplacementName = f.at(3)
	default:
		r.Priority = parsePriority(f.at(2))
	}
	return r
}

type fields []string

func (f fields) at(idx int) string {
	if idx >= len(f) {
		return ""
	}
	return strings.TrimSpace(f[idx])
}

func parsePriority(value string) int {
	if value == "" {
		return 0
	}
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return 0
		}
	}
	p, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return p
}
