package commands

import "errors"

var (
	ErrItemsAreRequired      = errors.New("at least one item is required")
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
	ErrUnitPriceIsInvalid    = errors.New("unit price must be greater than 0")
)

// ItemInput is one order line as received from the outside. Commands validate
// the lines eagerly so malformed requests fail before any message or
// transaction is produced.
type ItemInput struct {
	ProductName    string
	Quantity       int
	UnitPriceCents int64
}

func validateItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if item.ProductName == "" {
			return ErrProductNameIsRequired
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
		if item.UnitPriceCents <= 0 {
			return ErrUnitPriceIsInvalid
		}
	}

	return nil
}
