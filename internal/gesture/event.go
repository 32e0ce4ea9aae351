package gesture

import (
	"fmt"
	"time"
)

// EventType identifies a classified gesture.
type EventType uint8

const (
	// EventNone represents no gesture.
	EventNone EventType = iota

	// EventPressStart fires on the press edge. Informational.
	EventPressStart

	// EventRelease fires on the release edge and carries the hold
	// duration. Informational.
	EventRelease

	// EventLongPress fires once when a hold reaches the configured
	// long-press duration, while the button is still held.
	EventLongPress

	// EventDoubleClick fires when exactly two presses land within
	// the double-press gap.
	EventDoubleClick

	// EventKeepAliveCancelled fires on any press while keep-alive
	// mode owns the input.
	EventKeepAliveCancelled
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventPressStart:
		return "press"
	case EventRelease:
		return "release"
	case EventLongPress:
		return "long-press"
	case EventDoubleClick:
		return "double-click"
	case EventKeepAliveCancelled:
		return "keep-alive-cancelled"
	default:
		return fmt.Sprintf("event(%d)", t)
	}
}

// Event is a classified gesture, produced at most once per tick and
// consumed in the same tick.
type Event struct {
	// Type is the gesture kind.
	Type EventType

	// Hold is the press duration for EventRelease.
	Hold time.Duration
}
