package workers

import (
	"context"

	"orders/internal/core/application/eventmsg"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// ApprovalWorker consumes approval requests for orders held for manual
// approval. Requests for unknown orders or orders no longer held are
// acknowledged without effect, the command handler treats them as already
// settled.
type ApprovalWorker struct {
	uowFactory commands.OrderUoWFactory
}

// NewApprovalWorker creates the worker for the approve-order route.
func NewApprovalWorker(uowFactory commands.OrderUoWFactory) *ApprovalWorker {
	return &ApprovalWorker{uowFactory: uowFactory}
}

// Handle processes one approval request.
func (w *ApprovalWorker) Handle(ctx context.Context, delivery ports.Delivery, outbox ports.Outbox) error {
	var msg eventmsg.ApproveOrder
	if err := decode(delivery, &msg); err != nil {
		return err
	}

	orderID, err := parseID("orderId", msg.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewApproveOrderCommand(orderID)
	if err != nil {
		return errs.NewInvariantViolationErrorWithCause("invalid approve order message", err)
	}

	handler := commands.NewApproveOrderCommandHandler(w.uowFactory, &outboxPublisher{outbox: outbox})

	return handler.Handle(withActingUser(ctx, msg.ActingUserID), cmd)
}
