// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order aggregate spans three tables: orders,
// order_items, and delivery_terms.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its string name so rows stay readable and new statuses
// do not renumber existing data.
type OrderDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID             uuid.UUID `gorm:"type:uuid;index"`
	PaymentConditionID     uuid.UUID `gorm:"type:uuid"`
	OrderDate              time.Time
	TotalCents             int64
	Status                 string `gorm:"type:varchar(16);index"`
	RequiresManualApproval bool
	CreatedBy              *uuid.UUID `gorm:"type:uuid"`
	UpdatedBy              *uuid.UUID `gorm:"type:uuid"`

	Items        []OrderItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	DeliveryTerm *DeliveryTermDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line.
type OrderItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	ProductName    string
	Quantity       int
	UnitPriceCents int64
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// DeliveryTermDTO represents the persisted delivery estimate of an order.
// The unique index on OrderID enforces at most one term per order.
type DeliveryTermDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	DeliveryDays          int
	EstimatedDeliveryDate time.Time
}

// TableName specifies the database table name for delivery terms.
func (DeliveryTermDTO) TableName() string {
	return "delivery_terms"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:             item.ID().Bytes(),
			OrderID:        aggregate.ID().Bytes(),
			ProductName:    item.ProductName(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPrice().Cents(),
		})
	}

	return OrderDTO{
		ID:                     aggregate.ID().Bytes(),
		CustomerID:             aggregate.CustomerID().Bytes(),
		PaymentConditionID:     aggregate.PaymentConditionID().Bytes(),
		OrderDate:              aggregate.OrderDate(),
		TotalCents:             aggregate.Total().Cents(),
		Status:                 aggregate.Status().String(),
		RequiresManualApproval: aggregate.RequiresManualApproval(),
		CreatedBy:              optionalUUID(aggregate.CreatedBy()),
		UpdatedBy:              optionalUUID(aggregate.UpdatedBy()),
		Items:                  items,
	}
}

func termFromDomain(term *order.DeliveryTerm) DeliveryTermDTO {
	return DeliveryTermDTO{
		ID:                    term.ID().Bytes(),
		OrderID:               term.OrderID().Bytes(),
		DeliveryDays:          term.DeliveryDays(),
		EstimatedDeliveryDate: term.EstimatedDeliveryDate(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	paymentConditionID, err := kernel.UUIDFromBytes(dto.PaymentConditionID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var term *order.DeliveryTerm
	if dto.DeliveryTerm != nil {
		term, err = termToDomain(*dto.DeliveryTerm)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(id, customerID, paymentConditionID, items, dto.OrderDate,
		kernel.NewMoneyFromCents(dto.TotalCents), status, dto.RequiresManualApproval, term,
		restoredUUID(dto.CreatedBy), restoredUUID(dto.UpdatedBy))
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, dto.ProductName, dto.Quantity,
		kernel.NewMoneyFromCents(dto.UnitPriceCents))
}

func termToDomain(dto DeliveryTermDTO) (*order.DeliveryTerm, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreDeliveryTerm(id, orderID, dto.DeliveryDays, dto.EstimatedDeliveryDate), nil
}

func optionalUUID(id kernel.UUID) *uuid.UUID {
	if id.Validate() != nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoredUUID(raw *uuid.UUID) kernel.UUID {
	if raw == nil {
		return kernel.UUID{}
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return kernel.UUID{}
	}
	return id
}
