// Package pubsub provides a generic publish/subscribe event system used to
// fan stylesheet changes and log entries out to listeners.
package pubsub

import (
	"context"
	"time"
)

// EventType names what happened.
type EventType string

const (
	// RegisteredEvent is published after a new sheet was appended to the stylesheet.
	RegisteredEvent EventType = "registered"
	// RebuiltEvent is published after a theme change rebuilt the stylesheet.
	RebuiltEvent EventType = "rebuilt"
	// LoggedEvent is published for every log entry.
	LoggedEvent EventType = "logged"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T) int
}
