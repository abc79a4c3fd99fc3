package queries

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists orders with their delivery estimates.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted by order date, newest
// first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.customer_id,
			o.order_date,
			o.total_cents,
			o.status,
			o.requires_manual_approval,
			dt.estimated_delivery_date
		FROM orders o
		LEFT JOIN delivery_terms dt ON dt.order_id = o.id
	`
	args := make([]any, 0, 1)
	if customerID, ok := query.CustomerID(); ok {
		sql += ` WHERE o.customer_id = ?`
		args = append(args, customerID.String())
	}
	sql += ` ORDER BY o.order_date DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAllOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var id, customerID uuid.UUID
		var estimated *time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&resp.OrderDate,
			&resp.TotalCents,
			&resp.Status,
			&resp.RequiresManualApproval,
			&estimated,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CustomerID = ownerID

		resp.EstimatedDeliveryDate = estimated
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
