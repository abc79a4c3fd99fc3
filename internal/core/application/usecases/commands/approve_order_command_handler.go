package commands

import (
	"context"
	"errors"

	"orders/internal/core/application/eventmsg"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/actinguser"
	"orders/internal/pkg/errs"
)

// ApproveOrderCommandHandler applies a queued approval to an order. The order
// row is locked for the duration of the transaction so concurrent
// redeliveries serialize.
//
// Approvals for unknown orders and for orders no longer held for approval are
// acknowledged without effect. Both are expected after redeliveries and must
// not keep the message cycling through retries.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewApproveOrderCommandHandler creates a handler for queued approvals.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the queued approval.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
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
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}
	if !aggregate.RequiresManualApproval() {
		return nil
	}

	aggregate.Approve()
	if userID, ok := actinguser.UserFrom(ctx); ok {
		aggregate.RecordUpdatedBy(userID)
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publishApproved(ctx, aggregate)
}

func (h *ApproveOrderCommandHandler) publishApproved(ctx context.Context, aggregate *order.Order) error {
	processed := eventmsg.OrderProcessed{
		OrderID:    aggregate.ID().String(),
		CustomerID: aggregate.CustomerID().String(),
		Title:      "Success",
		Message:    "Order approved successfully!",
	}
	return h.publisher.Publish(ctx, eventmsg.OrderNotificationRoute, processed)
}
