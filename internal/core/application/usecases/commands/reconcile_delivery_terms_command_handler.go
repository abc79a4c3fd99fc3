package commands

import (
	"context"
	"time"

	"orders/internal/core/application/eventmsg"
	"orders/internal/core/ports"
)

// ReconcileDeliveryTermsCommandHandler re-announces recorded orders that are
// past the grace period without a delivery estimate, putting them back on the
// scheduling queue. The upsert semantics of the scheduler make a false
// positive harmless.
type ReconcileDeliveryTermsCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewReconcileDeliveryTermsCommandHandler creates a handler for the
// reconciliation sweep.
func NewReconcileDeliveryTermsCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) ReconcileDeliveryTermsCommandHandler {
	return ReconcileDeliveryTermsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the reconciliation sweep. Returns the first publish error
// encountered; already published announcements stand, which is safe because
// scheduling is idempotent.
func (h *ReconcileDeliveryTermsCommandHandler) Handle(ctx context.Context, cmd ReconcileDeliveryTermsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.Grace())
	orphans, err := uow.OrderRepository().GetAllWithoutDeliveryTerm(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, aggregate := range orphans {
		created := eventmsg.OrderCreated{
			OrderID:   aggregate.ID().String(),
			OrderDate: aggregate.OrderDate(),
		}
		if err = h.publisher.Publish(ctx, eventmsg.OrderCreatedRoute, created); err != nil {
			return err
		}
	}

	return nil
}
