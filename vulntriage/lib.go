package vulntriage

import (
	"github.com/wagoodman/go-partybus"

	"github.com/vulntriage/vulntriage/internal/bus"
	"github.com/vulntriage/vulntriage/internal/log"
	"github.com/vulntriage/vulntriage/vulntriage/logger"
)

// SetLogger sets the logger used by the library. The default discards everything.
func SetLogger(l logger.Logger) {
	log.Log = l
}

// SetBus sets the event bus the library publishes progress and results onto.
func SetBus(b *partybus.Bus) {
	bus.Set(b)
}
