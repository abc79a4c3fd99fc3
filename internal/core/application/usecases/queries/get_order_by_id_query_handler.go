package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler reads one order with its items and delivery
// estimate.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for order detail reads.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the detail read.
// Returns errs.ErrObjectNotFound when no such order exists.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	resp, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	items, err := h.readItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderByIDQueryHandler) readOrder(ctx context.Context, orderID kernel.UUID) (GetOrderByIDQueryResponse, error) {
	var resp GetOrderByIDQueryResponse
	var id, customerID, paymentConditionID uuid.UUID
	var estimated *time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.payment_condition_id,
			o.order_date,
			o.total_cents,
			o.status,
			o.requires_manual_approval,
			dt.estimated_delivery_date
		FROM orders o
		LEFT JOIN delivery_terms dt ON dt.order_id = o.id
		WHERE o.id = ?
	`, orderID.String()).Row()

	err := row.Scan(
		&id,
		&customerID,
		&paymentConditionID,
		&resp.OrderDate,
		&resp.TotalCents,
		&resp.Status,
		&resp.RequiresManualApproval,
		&estimated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resp, errs.NewObjectNotFoundError("orderId", orderID)
		}
		return resp, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return resp, err
	}
	resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return resp, err
	}
	resp.PaymentConditionID, err = kernel.UUIDFromBytes(paymentConditionID[:])
	if err != nil {
		return resp, err
	}
	resp.EstimatedDeliveryDate = estimated

	return resp, nil
}

func (h GetOrderByIDQueryHandler) readItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderByIDQueryResponseItem, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_name,
			quantity,
			unit_price_cents
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_name
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderByIDQueryResponseItem, 0)
	for rows.Next() {
		var item GetOrderByIDQueryResponseItem

		if err = rows.Scan(&item.ProductName, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, err
		}
		item.TotalCents = item.UnitPriceCents * int64(item.Quantity)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
