package events

import "fmt"

var allowedEvents = map[string]struct{}{
	// state file
	"state.loaded": {},
	"state.failed": {},

	// annotation layer
	"annotation.extracted": {},
	"annotation.failed":    {},

	// image source
	"source.extracted": {},
	"source.failed":    {},

	// layer listing
	"layers.listed": {},
	"layers.failed": {},

	// system
	"system.startup": {},
	"system.error":   {},
}

func Validate(event string) error {
	if _, ok := allowedEvents[event]; !ok {
		return fmt.Errorf("unknown event: %s", event)
	}
	return nil
}
