package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns errs.ErrObjectAlreadyExists when an order with the same
	// identifier is already stored, so redelivered registrations can be
	// detected without a prior read.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its items and delivery term.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order like Get while holding a row lock for
	// the duration of the surrounding transaction. Used by workers that
	// mutate order state so concurrent redeliveries serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllWithoutDeliveryTerm retrieves orders recorded before olderThan
	// that still have no delivery term. Used by the reconciliation job to
	// re-announce orders whose scheduling message was lost.
	GetAllWithoutDeliveryTerm(ctx context.Context, olderThan time.Time) ([]*order.Order, error)
}
