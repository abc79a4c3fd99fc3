package commands

import (
	"context"
	"errors"

	"orders/internal/core/application/eventmsg"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/actinguser"
	"orders/internal/pkg/errs"
)

// CreateOrderCommandHandler durably records an order and finalizes its
// pricing. Orders above the approval threshold are held in Created for manual
// approval; everything else is paid immediately. After the transaction
// commits, an OrderCreated message triggers delivery scheduling and an
// OrderProcessed message notifies connected clients.
//
// Delivery of the same order twice is harmless: the insert is rejected as a
// duplicate, the transaction is rolled back, and only the follow-up messages
// are re-published.
type CreateOrderCommandHandler struct {
	uowFactory RegistrationUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory RegistrationUoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// Returns errs.ErrObjectNotFound when the customer or payment condition is
// unknown.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := buildOrder(ctx, cmd)
	if err != nil {
		return err
	}
	if err = aggregate.FinalizePricing(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		// A duplicate means a previous delivery already recorded the order.
		// Re-publish the follow-up messages so a crash between commit and
		// publish cannot lose the downstream cascade.
		if !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return err
		}
	} else if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publishFollowUps(ctx, aggregate)
}

func buildOrder(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewItem(kernel.NewUUID(), input.ProductName, input.Quantity,
			kernel.NewMoneyFromCents(input.UnitPriceCents))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.PaymentConditionID(),
		items, cmd.OrderDate())
	if err != nil {
		return nil, err
	}

	if userID, ok := actinguser.UserFrom(ctx); ok {
		aggregate.RecordCreatedBy(userID)
	}

	return aggregate, nil
}

func (h *CreateOrderCommandHandler) publishFollowUps(ctx context.Context, aggregate *order.Order) error {
	created := eventmsg.OrderCreated{
		OrderID:   aggregate.ID().String(),
		OrderDate: aggregate.OrderDate(),
	}
	if err := h.publisher.Publish(ctx, eventmsg.OrderCreatedRoute, created); err != nil {
		return err
	}

	processed := eventmsg.OrderProcessed{
		OrderID:    aggregate.ID().String(),
		CustomerID: aggregate.CustomerID().String(),
		Title:      "Success",
		Message:    "Order created successfully!",
	}
	return h.publisher.Publish(ctx, eventmsg.OrderNotificationRoute, processed)
}
