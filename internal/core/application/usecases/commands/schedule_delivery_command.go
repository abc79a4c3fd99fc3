package commands

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
	"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
)

// ScheduleDeliveryCommand represents a request to compute and store the
// delivery estimate for a recorded order. Issued by the delivery scheduling
// worker.
type ScheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	orderDate time.Time

	guard guard.ConstructorGuard
}

// NewScheduleDeliveryCommand creates a command to schedule a delivery.
func NewScheduleDeliveryCommand(orderID kernel.UUID, orderDate time.Time) (ScheduleDeliveryCommand, error) {
	cmd := ScheduleDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ScheduleDeliveryCommand{}, err
	}
	cmd.orderID = orderID
	cmd.orderDate = orderDate

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrScheduleDeliveryCommandIsNotConstructed if validation fails.
func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to schedule.
func (c ScheduleDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderDate returns the moment the order was submitted. The delivery window
// is counted from this date, not from processing time.
func (c ScheduleDeliveryCommand) OrderDate() time.Time {
	return c.orderDate
}
