/*
Package parsers provides parser helpers to extract payloads for each event type that the vulntriage library publishes
onto the event bus.
*/
package parsers

import (
	"fmt"

	"github.com/wagoodman/go-partybus"

	"github.com/vulntriage/vulntriage/vulntriage/event"
	"github.com/vulntriage/vulntriage/vulntriage/event/monitor"
	"github.com/vulntriage/vulntriage/vulntriage/presenter"
)

type ErrBadPayload struct {
	Type  partybus.EventType
	Field string
	Value interface{}
}

func (e *ErrBadPayload) Error() string {
	return fmt.Sprintf("event='%s' has bad event payload field='%v': '%+v'", string(e.Type), e.Field, e.Value)
}

func newPayloadErr(t partybus.EventType, field string, value interface{}) error {
	return &ErrBadPayload{
		Type:  t,
		Field: field,
		Value: value,
	}
}

func checkEventType(actual, expected partybus.EventType) error {
	if actual != expected {
		return newPayloadErr(expected, "Type", actual)
	}
	return nil
}

func ParseTriageStarted(e partybus.Event) (*monitor.Triage, error) {
	if err := checkEventType(e.Type, event.TriageStarted); err != nil {
		return nil, err
	}

	mon, ok := e.Value.(monitor.Triage)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return &mon, nil
}

func ParseTriageFinished(e partybus.Event) (presenter.Presenter, error) {
	if err := checkEventType(e.Type, event.TriageFinished); err != nil {
		return nil, err
	}

	pres, ok := e.Value.(presenter.Presenter)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return pres, nil
}

func ParseNonRootCommandFinished(e partybus.Event) (*string, error) {
	if err := checkEventType(e.Type, event.NonRootCommandFinished); err != nil {
		return nil, err
	}

	result, ok := e.Value.(string)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return &result, nil
}
