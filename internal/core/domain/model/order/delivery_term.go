package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// DefaultDeliveryDays is the delivery window applied when no product or
// customer specific rule overrides it.
const DefaultDeliveryDays = 10

// ErrDeliveryTermIsNotConstructed is returned when a DeliveryTerm instance was
// not created through the NewDeliveryTerm factory method.
var ErrDeliveryTermIsNotConstructed = errors.New("DeliveryTerm must be created via NewDeliveryTerm constructor")

// DeliveryTerm is the estimated delivery date computed for an order. There is
// at most one term per order; recomputing for the same order replaces the
// previous estimate rather than adding a second row.
type DeliveryTerm struct {
	id                    kernel.UUID
	orderID               kernel.UUID
	deliveryDays          int
	estimatedDeliveryDate time.Time

	isConstructed bool
}

// NewDeliveryTerm computes the estimated delivery date for an order as the
// order date plus deliveryDays calendar days.
//
// Returns a validation error when either identifier is empty or deliveryDays
// is not positive.
func NewDeliveryTerm(id kernel.UUID, orderID kernel.UUID, deliveryDays int, orderDate time.Time) (*DeliveryTerm, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if deliveryDays <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveryDays",
			fmt.Errorf("%d is not greater than 0", deliveryDays))
	}

	return &DeliveryTerm{
		id:                    id,
		orderID:               orderID,
		deliveryDays:          deliveryDays,
		estimatedDeliveryDate: orderDate.AddDate(0, 0, deliveryDays),

		isConstructed: true,
	}, nil
}

// RestoreDeliveryTerm reconstructs a DeliveryTerm from persistence without
// recomputing the estimate.
func RestoreDeliveryTerm(id kernel.UUID, orderID kernel.UUID, deliveryDays int, estimatedDeliveryDate time.Time) *DeliveryTerm {
	return &DeliveryTerm{
		id:                    id,
		orderID:               orderID,
		deliveryDays:          deliveryDays,
		estimatedDeliveryDate: estimatedDeliveryDate,

		isConstructed: true,
	}
}

// Validate ensures the DeliveryTerm instance was properly constructed.
func (d *DeliveryTerm) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryTermIsNotConstructed
	}
	return nil
}

// ID returns the delivery term's unique identifier.
func (d *DeliveryTerm) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the order this term belongs to.
func (d *DeliveryTerm) OrderID() kernel.UUID {
	return d.orderID
}

// DeliveryDays returns the delivery window in calendar days.
func (d *DeliveryTerm) DeliveryDays() int {
	return d.deliveryDays
}

// EstimatedDeliveryDate returns the computed delivery date.
func (d *DeliveryTerm) EstimatedDeliveryDate() time.Time {
	return d.estimatedDeliveryDate
}
