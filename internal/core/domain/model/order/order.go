package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ApprovalThresholdCents is the order total above which an order is held for
// manual approval instead of being paid automatically.
const ApprovalThresholdCents int64 = 500_000

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// ErrOrderAlreadyFinalized is returned when pricing is applied to an order
// that already left the Processing state.
var ErrOrderAlreadyFinalized = errors.New("order pricing is already finalized")

// Order is the commercial order aggregate. It owns its items and its optional
// delivery term, carries the derived total, and enforces the status state
// machine: Processing -> Created -> Paid, Processing -> Paid, any -> Cancelled.
type Order struct {
	id                 kernel.UUID
	customerID         kernel.UUID
	paymentConditionID kernel.UUID
	items              []*Item
	orderDate          time.Time
	total              kernel.Money
	status             Status

	requiresManualApproval bool

	deliveryTerm *DeliveryTerm

	createdBy kernel.UUID
	updatedBy kernel.UUID

	isConstructed bool
}

// NewOrder creates an order in the Processing state with its total derived
// from the items. The pricing rule is applied separately with FinalizePricing
// once the order has been durably recorded.
//
// Returns a validation error when any identifier is empty, the item list is
// empty, or any item is invalid.
func NewOrder(id kernel.UUID, customerID kernel.UUID, paymentConditionID kernel.UUID,
	items []*Item, orderDate time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if err := paymentConditionID.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	total := kernel.NewMoneyFromCents(0)
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(item.Total())
	}

	return &Order{
		id:                 id,
		customerID:         customerID,
		paymentConditionID: paymentConditionID,
		items:              items,
		orderDate:          orderDate,
		total:              total,
		status:             Processing,

		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence.
//
// Returns an invariant violation when the approval flag disagrees with the
// status: only orders awaiting approval may carry the flag.
func RestoreOrder(id kernel.UUID, customerID kernel.UUID, paymentConditionID kernel.UUID,
	items []*Item, orderDate time.Time, total kernel.Money, status Status,
	requiresManualApproval bool, deliveryTerm *DeliveryTerm,
	createdBy kernel.UUID, updatedBy kernel.UUID) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if requiresManualApproval && status != Created {
		return nil, errs.NewInvariantViolationError(
			fmt.Sprintf("order %s requires approval but has status %s", id, status))
	}

	return &Order{
		id:                 id,
		customerID:         customerID,
		paymentConditionID: paymentConditionID,
		items:              items,
		orderDate:          orderDate,
		total:              total,
		status:             status,

		requiresManualApproval: requiresManualApproval,

		deliveryTerm: deliveryTerm,

		createdBy: createdBy,
		updatedBy: updatedBy,

		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// FinalizePricing applies the approval threshold to a Processing order.
// Totals above the threshold move the order to Created and flag it for manual
// approval; everything else is paid immediately.
//
// Returns ErrOrderAlreadyFinalized when the order already left Processing, so
// redelivered registration messages cannot re-run the rule.
func (o *Order) FinalizePricing() error {
	if o.status != Processing {
		return ErrOrderAlreadyFinalized
	}

	if o.total.GreaterThan(kernel.NewMoneyFromCents(ApprovalThresholdCents)) {
		o.status = Created
		o.requiresManualApproval = true
		return nil
	}

	o.status = Paid
	return nil
}

// Approve marks an order awaiting manual approval as paid. Orders that do not
// require approval are left untouched and no error is reported, so repeated
// approval messages are harmless.
func (o *Order) Approve() {
	if !o.requiresManualApproval {
		return
	}

	next, err := o.status.Approve()
	if err != nil {
		return
	}

	o.status = next
	o.requiresManualApproval = false
}

// Cancel moves the order to Cancelled regardless of its current status.
func (o *Order) Cancel() {
	o.status = o.status.Cancel()
	o.requiresManualApproval = false
}

// AttachDeliveryTerm records the delivery estimate computed for this order.
//
// Returns an invariant violation when the term was computed for a different
// order.
func (o *Order) AttachDeliveryTerm(term *DeliveryTerm) error {
	if err := term.Validate(); err != nil {
		return err
	}
	if !term.OrderID().IsEqual(o.id) {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("delivery term belongs to order %s, not %s", term.OrderID(), o.id))
	}

	o.deliveryTerm = term
	return nil
}

// RecordCreatedBy stores the identity of the user who submitted the order.
func (o *Order) RecordCreatedBy(userID kernel.UUID) {
	o.createdBy = userID
	o.updatedBy = userID
}

// RecordUpdatedBy stores the identity of the user behind the latest change.
func (o *Order) RecordUpdatedBy(userID kernel.UUID) {
	o.updatedBy = userID
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PaymentConditionID returns the identifier of the payment condition.
func (o *Order) PaymentConditionID() kernel.UUID {
	return o.paymentConditionID
}

// Items returns the order lines.
func (o *Order) Items() []*Item {
	return o.items
}

// OrderDate returns the moment the order was submitted.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Total returns the order total derived from its items.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the order's current status.
func (o *Order) Status() Status {
	return o.status
}

// RequiresManualApproval reports whether the order is held for manual
// approval.
func (o *Order) RequiresManualApproval() bool {
	return o.requiresManualApproval
}

// DeliveryTerm returns the attached delivery estimate, or nil when none has
// been computed yet.
func (o *Order) DeliveryTerm() *DeliveryTerm {
	return o.deliveryTerm
}

// CreatedBy returns the identity of the submitting user. The zero UUID means
// the order was submitted without an acting user.
func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// UpdatedBy returns the identity of the user behind the latest change.
func (o *Order) UpdatedBy() kernel.UUID {
	return o.updatedBy
}
