package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// DeliveryTermRepository defines the persistence contract for delivery terms.
// There is at most one term per order.
type DeliveryTermRepository interface {
	// Upsert stores a delivery term, replacing any term previously stored
	// for the same order. Redelivered scheduling messages therefore converge
	// on a single row.
	Upsert(ctx context.Context, term *order.DeliveryTerm) error

	// GetByOrderID retrieves the delivery term computed for an order.
	// Returns errs.ErrObjectNotFound when none has been computed yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*order.DeliveryTerm, error)
}
