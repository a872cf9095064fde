/*
Package event provides event types for all events that the library publishes
onto the event bus. Consumers (such as the cmd event loop) use these types to
filter which events they respond to.
*/
package event

import "github.com/wagoodman/go-partybus"

const (
	// MatchingStarted is a partybus event that occurs when bulk pattern
	// matching begins; the value is a progress.Progressable.
	MatchingStarted partybus.EventType = "matching-started-event"

	// MatchingFinished is a partybus event that occurs when bulk pattern
	// matching has completed.
	MatchingFinished partybus.EventType = "matching-finished-event"
)
