package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves one order with its items and delivery estimate.
type GetOrderByIDQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for a single order.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: orderID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIDQueryIsNotConstructed if validation fails.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderByIDQueryResponseItem is one order line of the detail view.
type GetOrderByIDQueryResponseItem struct {
	ProductName    string
	Quantity       int
	UnitPriceCents int64
	TotalCents     int64
}

// GetOrderByIDQueryResponse is the order detail view.
// EstimatedDeliveryDate is nil while no delivery term has been computed.
type GetOrderByIDQueryResponse struct {
	ID                     kernel.UUID
	CustomerID             kernel.UUID
	PaymentConditionID     kernel.UUID
	OrderDate              time.Time
	TotalCents             int64
	Status                 string
	RequiresManualApproval bool
	EstimatedDeliveryDate  *time.Time
	Items                  []GetOrderByIDQueryResponseItem
}
