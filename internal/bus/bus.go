/*
Package bus provides access to a singleton instance of an event bus (provided by the calling application). The
library publishes events that callers can subscribe to (such as batch progress and the finished report).
*/
package bus

import "github.com/wagoodman/go-partybus"

var publisher partybus.Publisher

// Set sets the singleton event bus publisher. This is optional; if no bus is provided, the library will behave no
// differently than if a bus had been provided.
func Set(p partybus.Publisher) {
	publisher = p
}

// Publish an event onto the bus. If there is no bus set by the calling application, this does nothing.
func Publish(event partybus.Event) {
	if publisher != nil {
		publisher.Publish(event)
	}
}
