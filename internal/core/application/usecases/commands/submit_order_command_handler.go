package commands

import (
	"context"
	"time"

	"orders/internal/core/application/eventmsg"
	"orders/internal/core/ports"
	"orders/internal/pkg/actinguser"
	"orders/internal/pkg/errs"
)

// SubmitOrderCommandHandler accepts new orders for asynchronous processing.
// Checks the catalog references synchronously so the caller gets an immediate
// rejection for unknown customers or payment conditions, then queues the
// order for the registration worker.
type SubmitOrderCommandHandler struct {
	uowFactory CatalogUoWFactory
	publisher  ports.EventPublisher
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(uowFactory CatalogUoWFactory, publisher ports.EventPublisher) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order submission command.
// Returns errs.ErrObjectNotFound when the customer or payment condition is
// unknown. On success the order is on the registration queue but not yet
// durably recorded.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
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

	exists, err := uow.CustomerRepository().Exists(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("customerId", cmd.CustomerID())
	}

	exists, err = uow.PaymentConditionRepository().Exists(ctx, cmd.PaymentConditionID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("paymentConditionId", cmd.PaymentConditionID())
	}

	msg := eventmsg.RegisterOrder{
		OrderID:            cmd.OrderID().String(),
		CustomerID:         cmd.CustomerID().String(),
		PaymentConditionID: cmd.PaymentConditionID().String(),
		OrderDate:          time.Now().UTC(),
		Items:              toMessageItems(cmd.Items()),
	}
	if userID, ok := actinguser.UserFrom(ctx); ok {
		msg.ActingUserID = userID.String()
	}

	return h.publisher.Publish(ctx, eventmsg.RegisterOrderRoute, msg)
}

func toMessageItems(items []ItemInput) []eventmsg.RegisterOrderItem {
	result := make([]eventmsg.RegisterOrderItem, 0, len(items))
	for _, item := range items {
		result = append(result, eventmsg.RegisterOrderItem{
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return result
}
