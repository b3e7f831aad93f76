package ui

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/wagoodman/go-partybus"

	"github.com/vulntriage/vulntriage/internal/log"
	"github.com/vulntriage/vulntriage/vulntriage/event/parsers"
)

func handleTriageStarted(event partybus.Event) error {
	mon, err := parsers.ParseTriageStarted(event)
	if err != nil {
		return fmt.Errorf("bad TriageStarted event: %w", err)
	}

	log.Infof("triaging %s vulnerabilities", humanize.Comma(mon.VulnerabilitiesProcessed.Size()))
	return nil
}

func handleTriageFinished(event partybus.Event, reportOutput io.Writer) error {
	// show the report to stdout
	pres, err := parsers.ParseTriageFinished(event)
	if err != nil {
		return fmt.Errorf("bad TriageFinished event: %w", err)
	}

	if err := pres.Present(reportOutput); err != nil {
		return fmt.Errorf("unable to show triage report: %w", err)
	}
	return nil
}

func handleNonRootCommandFinished(event partybus.Event, reportOutput io.Writer) error {
	result, err := parsers.ParseNonRootCommandFinished(event)
	if err != nil {
		return fmt.Errorf("bad NonRootCommandFinished event: %w", err)
	}

	if _, err := reportOutput.Write([]byte(*result)); err != nil {
		return fmt.Errorf("unable to show command output: %w", err)
	}
	return nil
}
