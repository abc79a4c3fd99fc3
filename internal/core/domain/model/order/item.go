package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single order line: a product name, a positive quantity, and a
// positive fixed-point unit price. Items are owned exclusively by their Order,
// created once, and immutable thereafter. The line total is always derived
// from quantity and unit price, never stored.
type Item struct {
	id          kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money

	isConstructed bool
}

// NewItem creates a validated order line.
//
// Returns a validation error when the product name is empty, the quantity is
// not positive, or the unit price is not positive.
func NewItem(id kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence. It applies the same
// validation as NewItem so invalid rows cannot produce invalid aggregates.
func RestoreItem(id kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (*Item, error) {
	return NewItem(id, productName, quantity, unitPrice)
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductName returns the name of the ordered product.
func (i *Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Total returns quantity x unit price. The value is recomputed on every call
// and is never persisted as stored state.
func (i *Item) Total() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.ValidatePositive("unitPrice"); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
