package rule

import (
	"fmt"
	"strings"

	"github.com/vulntriage/vulntriage/vulntriage/status"
)

// Category groups override rules by the verdict they produce.
type Category string

const (
	DenyCategory        Category = "deny"
	AllowCategory       Category = "allow"
	LinuxCategory       Category = "linux"
	ConditionalCategory Category = "conditional"
)

// Categories is the fixed evaluation order. The first matching rule in this order wins.
var Categories = []Category{DenyCategory, AllowCategory, LinuxCategory, ConditionalCategory}

// ParseCategory returns the category with the given name (case insensitive).
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown rule category: %q", name)
}

// Status is the verdict a matching rule of this category yields.
func (c Category) Status() status.Status {
	switch c {
	case DenyCategory:
		return status.Deny
	case AllowCategory:
		return status.Allow
	case LinuxCategory:
		return status.Linux
	case ConditionalCategory:
		return status.Conditional
	default:
		return status.Undecided
	}
}

// Format describes the semicolon separated fields a rule of this category is written with.
func (c Category) Format() string {
	switch c {
	case AllowCategory:
		return "vendor;product;id;priority"
	case LinuxCategory:
		return "vendor;product;id;replacement-name"
	default:
		return "vendor;product;priority"
	}
}
