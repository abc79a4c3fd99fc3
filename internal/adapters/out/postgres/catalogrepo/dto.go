// Package catalogrepo provides persistence for the customer and payment
// condition reference data orders are validated against.
package catalogrepo

import (
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customers.
type CustomerDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

// PaymentConditionDTO represents the database structure for payment
// conditions.
type PaymentConditionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Description  string
	Installments int
}

// TableName specifies the database table name for payment conditions.
func (PaymentConditionDTO) TableName() string {
	return "payment_conditions"
}

func customerToDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name), nil
}

func paymentConditionToDomain(dto PaymentConditionDTO) (*payment.PaymentCondition, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePaymentCondition(id, dto.Description, dto.Installments), nil
}
