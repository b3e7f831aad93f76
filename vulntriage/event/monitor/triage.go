package monitor

import (
	"github.com/wagoodman/go-progress"

	"github.com/vulntriage/vulntriage/vulntriage/status"
)

// Triage exposes the progress of a running batch.
type Triage struct {
	VulnerabilitiesProcessed progress.Progressable
	CandidatesDiscovered     progress.Monitorable
	ByStatus                 map[status.Status]progress.Monitorable
}
