/*
Package status defines the verdicts the triage engine can reach for a vulnerability.
*/
package status

import (
	"fmt"
	"strings"
)

// Status is the final verdict for a single vulnerability.
type Status int

const (
	// Undecided means ambiguous inventory evidence exists and an analyst must decide.
	Undecided Status = iota
	// Duplicate means the CVE is already recorded in the journal.
	Duplicate
	// Allow means the software is present in the inventory.
	Allow
	// Deny means the software is not present in the inventory.
	Deny
	// Linux means the software is present as part of a Linux distribution.
	Linux
	// Conditional means the software is present under a condition.
	Conditional
)

// Sentinel inventory ids for verdicts that do not point at a concrete inventory entry.
const (
	AbsentID       = "-----------"
	ConditionalID  = "-----------"
	LinuxDefaultID = "-----------"
)

// Ordered lists the decided statuses in the order they are recorded in the journal.
var Ordered = []Status{Allow, Conditional, Linux, Deny, Duplicate}

var names = map[Status]string{
	Undecided:   "undecided",
	Duplicate:   "duplicate",
	Allow:       "allow",
	Deny:        "deny",
	Linux:       "linux",
	Conditional: "conditional",
}

func (s Status) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Parse returns the status with the given name (case insensitive).
func Parse(name string) (Status, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range names {
		if n == name {
			return s, nil
		}
	}
	return Undecided, fmt.Errorf("unknown status: %q", name)
}

// MarshalText renders the status by name so that reports are readable.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Color is the report color name associated with the status. Verdicts that need action are red.
func (s Status) Color() string {
	switch s {
	case Allow, Duplicate:
		return "red"
	case Conditional:
		return "orange"
	case Linux:
		return "blue"
	case Deny:
		return "green"
	default:
		return ""
	}
}

// Decided reports whether the status is a final verdict that needs no analyst review.
func (s Status) Decided() bool {
	return s != Undecided
}
