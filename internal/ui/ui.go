package ui

import (
	"github.com/wagoodman/go-partybus"
)

// UI consumes the events published during a run and shows their outcome to the user.
type UI interface {
	Setup(unsubscribe func() error) error
	partybus.Handler
	Teardown(force bool) error
}
