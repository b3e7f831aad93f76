package ui

import (
	"io"
)

// Select is responsible for determining the specific UI given the user options. The first UI in the returned slice
// is intended to be used and the UIs that follow are meant to be attempted only in a fallback posture. A writer is
// provided to capture the output of the final report.
func Select(_, _ bool, reportWriter io.Writer) (uis []UI) {
	return append(uis, NewLoggerUI(reportWriter))
}
