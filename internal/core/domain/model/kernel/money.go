package kernel

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Money is a fixed-point currency amount stored as integer cents.
// Using integer arithmetic keeps order totals exact: a sum of line items never
// accumulates floating-point drift, and threshold comparisons (such as the
// manual-approval rule) are deterministic.
//
// Money is a value object: operations return new values and never mutate the
// receiver. Negative amounts are representable (they can appear as arithmetic
// intermediates) but domain constructors reject them where the business rules
// require positive values.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money value from an amount expressed in cents.
func NewMoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromUnits creates a Money value from whole currency units,
// e.g. NewMoneyFromUnits(5000) is 5000.00.
func NewMoneyFromUnits(units int64) Money {
	return Money{cents: units * 100}
}

// Cents returns the raw amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimal places, e.g. "6000.00".
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ValidatePositive returns a validation error when the amount is not strictly
// positive. paramName names the field being validated.
func (m Money) ValidatePositive(paramName string) error {
	if m.cents <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s is not greater than 0", m))
	}
	return nil
}
