package queue

import (
	"context"
	"encoding/json"
	"errors"

	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"
)

// Bus routes queue deliveries to registered handlers and publishes messages
// for them. It implements ports.EventPublisher for the synchronous side.
//
// Every route gets the same middleware chain, parameterized by its Policy:
//
//	dead letter (exhausted) -> retry -> dead letter (invariant) -> circuit breaker -> handler
//
// Messages that violate a domain invariant skip the retry budget and go to
// the dead letter queue immediately; everything else is retried and
// dead-lettered only when the budget runs out.
type Bus struct {
	router    *message.Router
	publisher message.Publisher
	subscribe message.Subscriber
	logger    watermill.LoggerAdapter
}

// NewBus creates a bus on the given publisher and subscriber pair.
func NewBus(publisher message.Publisher, subscriber message.Subscriber, logger watermill.LoggerAdapter) (*Bus, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	return &Bus{
		router:    router,
		publisher: publisher,
		subscribe: subscriber,
		logger:    logger,
	}, nil
}

// Publish serializes the payload to JSON and publishes it to the route.
func (b *Bus) Publish(_ context.Context, route string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return b.publisher.Publish(route, message.NewMessage(uuid.NewString(), data))
}

// Subscribe registers a handler for a route with the route's resilience
// policy. Messages the handler stages on its outbox are published only after
// the handler returns nil.
func (b *Bus) Subscribe(route string, policy Policy, handler ports.QueueHandler) error {
	poisonExhausted, err := middleware.PoisonQueue(b.publisher, DeadLetterTopic(route))
	if err != nil {
		return err
	}

	poisonInvariant, err := middleware.PoisonQueueWithFilter(b.publisher, DeadLetterTopic(route),
		func(handlerErr error) bool {
			return errors.Is(handlerErr, errs.ErrInvariantViolation)
		})
	if err != nil {
		return err
	}

	retry := middleware.Retry{
		MaxRetries:      policy.MaxRetries,
		InitialInterval: policy.InitialInterval,
		MaxInterval:     policy.MaxInterval,
		Multiplier:      policy.Multiplier,
		Logger:          b.logger,
	}

	breaker := middleware.NewCircuitBreaker(policy.breakerSettings(route))

	h := b.router.AddNoPublisherHandler(
		route+"-handler",
		route,
		b.subscribe,
		b.wrap(route, handler),
	)
	h.AddMiddleware(
		poisonExhausted,
		retry.Middleware,
		poisonInvariant,
		breaker.Middleware,
	)

	return nil
}

func (b *Bus) wrap(route string, handler ports.QueueHandler) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		ctx := msg.Context()
		outbox := &stagingOutbox{}

		delivery := ports.Delivery{Route: route, Payload: msg.Payload}
		if err := handler(ctx, delivery, outbox); err != nil {
			return err
		}

		for _, staged := range outbox.staged {
			if err := b.Publish(ctx, staged.route, staged.payload); err != nil {
				return err
			}
		}

		return nil
	}
}

// Run starts routing messages and blocks until the context is cancelled.
func (b *Bus) Run(ctx context.Context) error {
	return b.router.Run(ctx)
}

// Running returns a channel that closes once the router has started and all
// handlers are consuming.
func (b *Bus) Running() <-chan struct{} {
	return b.router.Running()
}

// Close stops the router and the underlying pub/sub connections.
func (b *Bus) Close() error {
	return b.router.Close()
}
