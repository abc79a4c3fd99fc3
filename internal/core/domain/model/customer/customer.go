// Package customer contains the customer entity orders are placed for.
package customer

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a buyer known to the system. Orders reference customers by
// identifier and submission is rejected when the customer does not exist.
type Customer struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewCustomer creates a validated customer.
func NewCustomer(id kernel.UUID, name string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Customer{
		id:   id,
		name: name,

		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(id kernel.UUID, name string) *Customer {
	return &Customer{
		id:   id,
		name: name,

		isConstructed: true,
	}
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}
