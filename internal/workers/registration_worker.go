package workers

import (
	"context"

	"orders/internal/core/application/eventmsg"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// RegistrationWorker consumes submitted orders from the register-order route
// and records them durably. Follow-up messages for scheduling and
// notification are staged on the delivery's outbox, so an order that was
// already recorded by an earlier attempt still gets its cascade published.
type RegistrationWorker struct {
	uowFactory commands.RegistrationUoWFactory
}

// NewRegistrationWorker creates the worker for the register-order route.
func NewRegistrationWorker(uowFactory commands.RegistrationUoWFactory) *RegistrationWorker {
	return &RegistrationWorker{uowFactory: uowFactory}
}

// Handle processes one submitted order.
func (w *RegistrationWorker) Handle(ctx context.Context, delivery ports.Delivery, outbox ports.Outbox) error {
	var msg eventmsg.RegisterOrder
	if err := decode(delivery, &msg); err != nil {
		return err
	}

	orderID, err := parseID("orderId", msg.OrderID)
	if err != nil {
		return err
	}
	customerID, err := parseID("customerId", msg.CustomerID)
	if err != nil {
		return err
	}
	paymentConditionID, err := parseID("paymentConditionId", msg.PaymentConditionID)
	if err != nil {
		return err
	}

	items := make([]commands.ItemInput, 0, len(msg.Items))
	for _, item := range msg.Items {
		items = append(items, commands.ItemInput{
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, paymentConditionID, items, msg.OrderDate)
	if err != nil {
		return errs.NewInvariantViolationErrorWithCause("invalid register order message", err)
	}

	handler := commands.NewCreateOrderCommandHandler(w.uowFactory, &outboxPublisher{outbox: outbox})

	return handler.Handle(withActingUser(ctx, msg.ActingUserID), cmd)
}
