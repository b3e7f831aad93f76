package status

import "fmt"

// Decision is a status together with the inventory id it resolved to. Undecided and Duplicate decisions never carry
// an id.
type Decision struct {
	Status     Status `json:"status"`
	ResolvedID string `json:"resolvedId,omitempty"`
}

func NewUndecided() Decision {
	return Decision{Status: Undecided}
}

func NewDuplicate() Decision {
	return Decision{Status: Duplicate}
}

func NewDeny() Decision {
	return Decision{Status: Deny, ResolvedID: AbsentID}
}

func NewConditional() Decision {
	return Decision{Status: Conditional, ResolvedID: ConditionalID}
}

// NewAllow resolves to the given inventory id.
func NewAllow(id string) Decision {
	return Decision{Status: Allow, ResolvedID: id}
}

// NewLinux resolves to the given inventory id, falling back to LinuxDefaultID when the id is empty.
func NewLinux(id string) Decision {
	if id == "" {
		id = LinuxDefaultID
	}
	return Decision{Status: Linux, ResolvedID: id}
}

func (d Decision) String() string {
	if d.ResolvedID == "" {
		return d.Status.String()
	}
	return fmt.Sprintf("%s (%s)", d.Status, d.ResolvedID)
}
