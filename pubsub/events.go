package pubsub

import "context"

const (
	// StartedEvent is published when a run begins.
	StartedEvent EventType = "started"
	// UpdatedEvent carries one step of a run in progress.
	UpdatedEvent EventType = "updated"
	// FailedEvent is published when a run ends with an error.
	FailedEvent EventType = "failed"
	// FinishedEvent is published when a run ends, after FailedEvent if it failed.
	FinishedEvent EventType = "finished"
)

// Subscriber hands out event channels.
type Subscriber[T any] interface {
	// Subscribe returns a channel that is closed when ctx is done.
	Subscribe(context.Context) <-chan Event[T]
}

type (
	// EventType identifies the kind of event.
	EventType string

	// Event is a single notification with its payload.
	Event[T any] struct {
		Type    EventType
		Payload T
	}

	// Publisher fans events out to subscribers.
	Publisher[T any] interface {
		Publish(EventType, T)
	}
)
