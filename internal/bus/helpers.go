package bus

import (
	"github.com/wagoodman/go-partybus"

	"github.com/vulntriage/vulntriage/vulntriage/event"
)

// Report publishes the textual outcome of a command that does not produce a triage report.
func Report(report string) {
	Publish(partybus.Event{
		Type:  event.NonRootCommandFinished,
		Value: report,
	})
}
