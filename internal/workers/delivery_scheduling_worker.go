package workers

import (
	"context"

	"orders/internal/core/application/eventmsg"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// DeliverySchedulingWorker consumes order-created announcements and stores a
// delivery estimate for each recorded order. An order that is not visible yet
// is reported as an error, redelivery covers the gap between the broker and
// the registration commit.
type DeliverySchedulingWorker struct {
	handler commands.ScheduleDeliveryCommandHandler
}

// NewDeliverySchedulingWorker creates the worker for the order-created route.
// deliveryDays is the promised delivery window applied to every order.
func NewDeliverySchedulingWorker(uowFactory commands.SchedulingUoWFactory, deliveryDays int) *DeliverySchedulingWorker {
	return &DeliverySchedulingWorker{
		handler: commands.NewScheduleDeliveryCommandHandler(uowFactory, deliveryDays),
	}
}

// Handle processes one order-created announcement.
func (w *DeliverySchedulingWorker) Handle(ctx context.Context, delivery ports.Delivery, _ ports.Outbox) error {
	var msg eventmsg.OrderCreated
	if err := decode(delivery, &msg); err != nil {
		return err
	}

	orderID, err := parseID("orderId", msg.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewScheduleDeliveryCommand(orderID, msg.OrderDate)
	if err != nil {
		return errs.NewInvariantViolationErrorWithCause("invalid order created message", err)
	}

	return w.handler.Handle(ctx, cmd)
}
