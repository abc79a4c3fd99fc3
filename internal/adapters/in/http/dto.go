package http

import (
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one order line of a creation request.
type NewOrderItem struct {
	ProductName    string `json:"productName"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

// NewOrder is the body of the order creation endpoints.
type NewOrder struct {
	CustomerID         string         `json:"customerId"`
	PaymentConditionID string         `json:"paymentConditionId"`
	Items              []NewOrderItem `json:"items"`
}

// OrderAccepted acknowledges an order creation request with the identifier
// assigned to the order.
type OrderAccepted struct {
	OrderID string `json:"orderId"`
}

// Order is one row of the order listing.
type Order struct {
	ID                     string     `json:"id"`
	CustomerID             string     `json:"customerId"`
	OrderDate              time.Time  `json:"orderDate"`
	TotalCents             int64      `json:"totalCents"`
	Status                 string     `json:"status"`
	RequiresManualApproval bool       `json:"requiresManualApproval"`
	EstimatedDeliveryDate  *time.Time `json:"estimatedDeliveryDate,omitempty"`
}

// OrderItem is one order line of the detail view.
type OrderItem struct {
	ProductName    string `json:"productName"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	TotalCents     int64  `json:"totalCents"`
}

// OrderDetail is the order detail view.
type OrderDetail struct {
	ID                     string      `json:"id"`
	CustomerID             string      `json:"customerId"`
	PaymentConditionID     string      `json:"paymentConditionId"`
	OrderDate              time.Time   `json:"orderDate"`
	TotalCents             int64       `json:"totalCents"`
	Status                 string      `json:"status"`
	RequiresManualApproval bool        `json:"requiresManualApproval"`
	EstimatedDeliveryDate  *time.Time  `json:"estimatedDeliveryDate,omitempty"`
	Items                  []OrderItem `json:"items"`
}

// Customer is one row of the customer listing.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaymentCondition is one row of the payment condition listing.
type PaymentCondition struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	Installments int    `json:"installments"`
}

func (r NewOrder) itemInputs() []commands.ItemInput {
	items := make([]commands.ItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, commands.ItemInput{
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}

	return items
}

func orderFromQuery(row queries.GetAllOrdersQueryResponse) Order {
	return Order{
		ID:                     row.ID.String(),
		CustomerID:             row.CustomerID.String(),
		OrderDate:              row.OrderDate,
		TotalCents:             row.TotalCents,
		Status:                 row.Status,
		RequiresManualApproval: row.RequiresManualApproval,
		EstimatedDeliveryDate:  row.EstimatedDeliveryDate,
	}
}

func orderDetailFromQuery(row queries.GetOrderByIDQueryResponse) OrderDetail {
	items := make([]OrderItem, 0, len(row.Items))
	for _, item := range row.Items {
		items = append(items, OrderItem{
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			TotalCents:     item.TotalCents,
		})
	}

	return OrderDetail{
		ID:                     row.ID.String(),
		CustomerID:             row.CustomerID.String(),
		PaymentConditionID:     row.PaymentConditionID.String(),
		OrderDate:              row.OrderDate,
		TotalCents:             row.TotalCents,
		Status:                 row.Status,
		RequiresManualApproval: row.RequiresManualApproval,
		EstimatedDeliveryDate:  row.EstimatedDeliveryDate,
		Items:                  items,
	}
}
