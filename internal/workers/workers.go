package workers

import (
	"context"
	"encoding/json"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/pkg/actinguser"
	"orders/internal/pkg/errs"
)

// NotificationEvent is the websocket event name used for order processing
// notifications.
const NotificationEvent = "OrderNotification"

// outboxPublisher lets a command handler publish through the delivery's
// outbox. Staged messages reach the broker only after the handler succeeds.
type outboxPublisher struct {
	outbox ports.Outbox
}

func (p *outboxPublisher) Publish(_ context.Context, route string, payload any) error {
	p.outbox.Stage(route, payload)
	return nil
}

// decode unmarshals a delivery payload. Failures are invariant violations,
// a malformed message will not become well formed on redelivery.
func decode(delivery ports.Delivery, target any) error {
	if err := json.Unmarshal(delivery.Payload, target); err != nil {
		return errs.NewInvariantViolationErrorWithCause("malformed queue message", err)
	}

	return nil
}

// parseID converts a message identifier into a domain UUID. Like decode, a
// bad identifier is permanent, so it maps to an invariant violation.
func parseID(name string, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewInvariantViolationErrorWithCause("invalid "+name+" in queue message", err)
	}

	return id, nil
}

// withActingUser restores the acting user the producer captured. Messages
// without user context pass through unchanged.
func withActingUser(ctx context.Context, actingUserID string) context.Context {
	if actingUserID == "" {
		return ctx
	}

	userID, err := kernel.UUIDFromString(actingUserID)
	if err != nil {
		return ctx
	}

	return actinguser.WithUser(ctx, userID)
}
