package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to accept a new commercial order
// for asynchronous processing. The order is validated against the catalog and
// queued; the registration worker records it later.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewSubmitOrderCommand(orderID, customerID, paymentConditionID, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	customerID         kernel.UUID
	paymentConditionID kernel.UUID
	items              []ItemInput

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new order.
// Validates that all identifiers are valid and every item is well formed.
// Returns an error if any validation fails.
func NewSubmitOrderCommand(orderID kernel.UUID, customerID kernel.UUID,
	paymentConditionID kernel.UUID, items []ItemInput) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setPaymentConditionID(paymentConditionID),
		cmd.setItems(items),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c SubmitOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PaymentConditionID returns the identifier of the payment condition.
func (c SubmitOrderCommand) PaymentConditionID() kernel.UUID {
	return c.paymentConditionID
}

// Items returns the order lines.
func (c SubmitOrderCommand) Items() []ItemInput {
	return c.items
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitOrderCommand) setPaymentConditionID(paymentConditionID kernel.UUID) error {
	if err := paymentConditionID.Validate(); err != nil {
		return err
	}

	c.paymentConditionID = paymentConditionID
	return nil
}

func (c *SubmitOrderCommand) setItems(items []ItemInput) error {
	if err := validateItems(items); err != nil {
		return err
	}

	c.items = items
	return nil
}
