package commands

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// ScheduleDeliveryCommandHandler computes the delivery estimate for a
// recorded order and stores it. The estimate is upserted by order, so a
// redelivered message replaces the previous row instead of adding a second
// one.
//
// A not-found error from the order lookup is returned as-is: the scheduling
// message can overtake the registration commit, and the retry policy absorbs
// the race.
type ScheduleDeliveryCommandHandler struct {
	uowFactory   SchedulingUoWFactory
	deliveryDays int
}

// NewScheduleDeliveryCommandHandler creates a handler for delivery
// scheduling. deliveryDays is the delivery window applied to every order;
// pass order.DefaultDeliveryDays unless configured otherwise.
func NewScheduleDeliveryCommandHandler(uowFactory SchedulingUoWFactory, deliveryDays int) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		uowFactory:   uowFactory,
		deliveryDays: deliveryDays,
	}
}

// Handle processes the scheduling command.
func (h *ScheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd ScheduleDeliveryCommand) error {
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

	term, err := order.NewDeliveryTerm(kernel.NewUUID(), cmd.OrderID(), h.deliveryDays, cmd.OrderDate())
	if err != nil {
		return err
	}
	if err = aggregate.AttachDeliveryTerm(term); err != nil {
		return err
	}

	if err = uow.DeliveryTermRepository().Upsert(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
