// Package queries contains read operations over the persisted state.
// Query handlers bypass the domain model and read projections straight from
// the database, following the read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves all orders, optionally filtered by customer.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	orders, err := handler.Handle(ctx, query)
type GetAllOrdersQuery struct {
	customerID    kernel.UUID
	hasCustomerID bool

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetAllOrdersQueryForCustomer creates a query for one customer's orders.
func NewGetAllOrdersQueryForCustomer(customerID kernel.UUID) (GetAllOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetAllOrdersQuery{}, err
	}

	return GetAllOrdersQuery{
		customerID:    customerID,
		hasCustomerID: true,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter. The second return value is false
// when the query is unfiltered.
func (q GetAllOrdersQuery) CustomerID() (kernel.UUID, bool) {
	return q.customerID, q.hasCustomerID
}

// GetAllOrdersQueryResponse is one order row of the listing.
// EstimatedDeliveryDate is nil while no delivery term has been computed.
type GetAllOrdersQueryResponse struct {
	ID                     kernel.UUID
	CustomerID             kernel.UUID
	OrderDate              time.Time
	TotalCents             int64
	Status                 string
	RequiresManualApproval bool
	EstimatedDeliveryDate  *time.Time
}
