package ports

import (
	"context"
)

// EventPublisher publishes a payload to a queue route. Payloads are
// serialized to JSON by the implementation.
type EventPublisher interface {
	Publish(ctx context.Context, route string, payload any) error
}

// Delivery is one message taken off a queue route.
type Delivery struct {
	Route   string
	Payload []byte
}

// Outbox collects messages produced while processing a delivery. Staged
// messages are published only after the handler returns without error, so a
// failed handler never leaks partial output.
type Outbox interface {
	Stage(route string, payload any)
}

// QueueHandler processes one delivery. Returning nil acknowledges the message
// and flushes the outbox; returning an error triggers the route's retry
// policy.
type QueueHandler func(ctx context.Context, delivery Delivery, outbox Outbox) error

// Notifier fans an event out to every connected client.
type Notifier interface {
	BroadcastToAll(event string, payload any)
}
