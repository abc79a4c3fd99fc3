package commands

import (
	"context"

	"orders/internal/core/application/eventmsg"
	"orders/internal/core/ports"
	"orders/internal/pkg/actinguser"
)

// CancelOrderCommandHandler cancels an order and notifies connected clients.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// Returns errs.ErrObjectNotFound when the order does not exist.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	aggregate.Cancel()
	if userID, ok := actinguser.UserFrom(ctx); ok {
		aggregate.RecordUpdatedBy(userID)
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	processed := eventmsg.OrderProcessed{
		OrderID:    aggregate.ID().String(),
		CustomerID: aggregate.CustomerID().String(),
		Title:      "Cancelled",
		Message:    "Order cancelled.",
	}
	return h.publisher.Publish(ctx, eventmsg.OrderNotificationRoute, processed)
}
