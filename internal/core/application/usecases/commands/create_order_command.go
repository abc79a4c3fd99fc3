package commands

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to durably record an order and
// finalize its pricing. Issued by the registration worker for queued
// submissions and by the synchronous creation endpoint.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	customerID         kernel.UUID
	paymentConditionID kernel.UUID
	items              []ItemInput
	orderDate          time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to record a new order.
// Validates that all identifiers are valid and every item is well formed.
// Returns an error if any validation fails.
func NewCreateOrderCommand(orderID kernel.UUID, customerID kernel.UUID,
	paymentConditionID kernel.UUID, items []ItemInput, orderDate time.Time) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setPaymentConditionID(paymentConditionID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderDate = orderDate

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PaymentConditionID returns the identifier of the payment condition.
func (c CreateOrderCommand) PaymentConditionID() kernel.UUID {
	return c.paymentConditionID
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

// OrderDate returns the moment the order was submitted.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setPaymentConditionID(paymentConditionID kernel.UUID) error {
	if err := paymentConditionID.Validate(); err != nil {
		return err
	}

	c.paymentConditionID = paymentConditionID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if err := validateItems(items); err != nil {
		return err
	}

	c.items = items
	return nil
}
