package ports

import (
	"context"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/payment"
)

// CustomerRepository defines the read contract for customers. Order
// submission only needs existence checks and listings; customer management
// lives outside this service.
type CustomerRepository interface {
	// Exists reports whether a customer with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// GetAll retrieves all known customers.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}

// PaymentConditionRepository defines the read contract for payment
// conditions.
type PaymentConditionRepository interface {
	// Exists reports whether a payment condition with the given identifier
	// is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// GetAll retrieves all known payment conditions.
	GetAll(ctx context.Context) ([]*payment.PaymentCondition, error)
}
