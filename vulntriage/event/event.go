/*
Package event provides event types for all events that the vulntriage library published onto the event bus. By
convention, for each event defined here there should be a corresponding event parser defined in the parsers/ child
package.
*/
package event

import "github.com/wagoodman/go-partybus"

const (
	// TriageStarted is a partybus event that occurs when a batch of vulnerabilities starts being triaged.
	TriageStarted partybus.EventType = "vulntriage-triage-started"

	// TriageFinished is a partybus event that occurs when a batch is triaged and the report is ready to present.
	TriageFinished partybus.EventType = "vulntriage-triage-finished"

	// NonRootCommandFinished is a partybus event that occurs when a command other than the batch triage is done.
	NonRootCommandFinished partybus.EventType = "vulntriage-non-root-command-finished"
)
