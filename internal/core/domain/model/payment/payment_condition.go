// Package payment contains the payment condition entity referenced by orders.
package payment

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrPaymentConditionIsNotConstructed is returned when a PaymentCondition
// instance was not created through the NewPaymentCondition factory method.
var ErrPaymentConditionIsNotConstructed = errors.New(
	"PaymentCondition must be created via NewPaymentCondition constructor")

// PaymentCondition describes how an order is paid: a display description and
// the number of installments. Orders reference conditions by identifier and
// submission is rejected when the condition does not exist.
type PaymentCondition struct {
	id           kernel.UUID
	description  string
	installments int

	isConstructed bool
}

// NewPaymentCondition creates a validated payment condition.
func NewPaymentCondition(id kernel.UUID, description string, installments int) (*PaymentCondition, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}
	if installments <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("installments",
			fmt.Errorf("%d is not greater than 0", installments))
	}

	return &PaymentCondition{
		id:           id,
		description:  description,
		installments: installments,

		isConstructed: true,
	}, nil
}

// RestorePaymentCondition reconstructs a PaymentCondition from persistence.
func RestorePaymentCondition(id kernel.UUID, description string, installments int) *PaymentCondition {
	return &PaymentCondition{
		id:           id,
		description:  description,
		installments: installments,

		isConstructed: true,
	}
}

// Validate ensures the PaymentCondition instance was properly constructed.
func (p *PaymentCondition) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentConditionIsNotConstructed
	}
	return nil
}

// ID returns the payment condition's unique identifier.
func (p *PaymentCondition) ID() kernel.UUID {
	return p.id
}

// Description returns the human-readable description.
func (p *PaymentCondition) Description() string {
	return p.description
}

// Installments returns the number of installments.
func (p *PaymentCondition) Installments() int {
	return p.installments
}
