package catalogrepo

import (
	"context"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/payment"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Exists reports whether a customer with the given identifier is stored.
func (r *GormCustomerRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&CustomerDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAll retrieves all known customers ordered by name.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := customerToDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, nil
}

// GormPaymentConditionRepository implements ports.PaymentConditionRepository
// using GORM.
type GormPaymentConditionRepository struct {
	db *gorm.DB
}

// NewGormPaymentConditionRepository creates a new GORM payment condition
// repository.
func NewGormPaymentConditionRepository(db *gorm.DB) *GormPaymentConditionRepository {
	return &GormPaymentConditionRepository{db: db}
}

// Exists reports whether a payment condition with the given identifier is
// stored.
func (r *GormPaymentConditionRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&PaymentConditionDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAll retrieves all known payment conditions ordered by description.
func (r *GormPaymentConditionRepository) GetAll(ctx context.Context) ([]*payment.PaymentCondition, error) {
	var dtos []PaymentConditionDTO
	if err := r.db.WithContext(ctx).Order("description").Find(&dtos).Error; err != nil {
		return nil, err
	}

	conditions := make([]*payment.PaymentCondition, 0, len(dtos))
	for _, dto := range dtos {
		p, err := paymentConditionToDomain(dto)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, p)
	}

	return conditions, nil
}
