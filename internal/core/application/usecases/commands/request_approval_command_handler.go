package commands

import (
	"context"

	"orders/internal/core/application/eventmsg"
	"orders/internal/core/ports"
	"orders/internal/pkg/actinguser"
)

// RequestApprovalCommandHandler verifies that an order is eligible for manual
// approval and queues the approval for the approval worker.
type RequestApprovalCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewRequestApprovalCommandHandler creates a handler for approval requests.
func NewRequestApprovalCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) RequestApprovalCommandHandler {
	return RequestApprovalCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the approval request.
// Returns errs.ErrObjectNotFound when the order does not exist and
// ErrOrderDoesNotRequireApproval when it is not held for manual approval.
func (h *RequestApprovalCommandHandler) Handle(ctx context.Context, cmd RequestApprovalCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !aggregate.RequiresManualApproval() {
		return ErrOrderDoesNotRequireApproval
	}

	msg := eventmsg.ApproveOrder{
		OrderID: cmd.OrderID().String(),
	}
	if userID, ok := actinguser.UserFrom(ctx); ok {
		msg.ActingUserID = userID.String()
	}

	return h.publisher.Publish(ctx, eventmsg.ApproveOrderRoute, msg)
}
