package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryTermRepository implements ports.DeliveryTermRepository using
// GORM. Delivery terms live in the order aggregate's table set, so the
// repository shares this package with the order repository.
type GormDeliveryTermRepository struct {
	db *gorm.DB
}

// NewGormDeliveryTermRepository creates a new GORM delivery term repository.
func NewGormDeliveryTermRepository(db *gorm.DB) *GormDeliveryTermRepository {
	return &GormDeliveryTermRepository{db: db}
}

// Upsert stores a delivery term. A term already stored for the same order is
// replaced, keyed by the unique index on order_id.
func (r *GormDeliveryTermRepository) Upsert(ctx context.Context, term *order.DeliveryTerm) error {
	if err := term.Validate(); err != nil {
		return err
	}

	dto := termFromDomain(term)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"delivery_days", "estimated_delivery_date"}),
		}).
		Create(&dto).Error
}

// GetByOrderID retrieves the delivery term computed for an order.
func (r *GormDeliveryTermRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*order.DeliveryTerm, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryTermDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryTerm", orderID.String())
		}
		return nil, err
	}

	return termToDomain(dto)
}
