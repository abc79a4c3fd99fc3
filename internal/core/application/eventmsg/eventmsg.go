// Package eventmsg defines the queue routes and message payloads exchanged
// between the HTTP layer and the workers. Payloads are plain JSON structs
// with identifiers carried as strings, so they survive broker round trips
// without depending on domain types.
package eventmsg

import "time"

// Queue routes. Each route has a matching dead letter queue named
// "<route>-dead-letter" that receives messages whose processing was given up
// on.
const (
	// RegisterOrderRoute carries submitted orders to the registration worker.
	RegisterOrderRoute = "register-order"

	// OrderCreatedRoute announces durably recorded orders to the delivery
	// scheduling worker.
	OrderCreatedRoute = "order-created"

	// ApproveOrderRoute carries manual approval requests to the approval
	// worker.
	ApproveOrderRoute = "approve-order"

	// OrderNotificationRoute carries processing outcomes to the notification
	// worker for fan-out to connected clients.
	OrderNotificationRoute = "order-notification"
)

// RegisterOrderItem is one order line inside a RegisterOrder message.
type RegisterOrderItem struct {
	ProductName    string `json:"productName"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

// RegisterOrder asks the registration worker to durably record a submitted
// order. ActingUserID is empty when the submission carried no user context.
type RegisterOrder struct {
	OrderID            string              `json:"orderId"`
	CustomerID         string              `json:"customerId"`
	PaymentConditionID string              `json:"paymentConditionId"`
	OrderDate          time.Time           `json:"orderDate"`
	Items              []RegisterOrderItem `json:"items"`
	ActingUserID       string              `json:"actingUserId,omitempty"`
}

// OrderCreated announces that an order was durably recorded and priced. The
// delivery scheduling worker computes the delivery estimate from OrderDate.
type OrderCreated struct {
	OrderID   string    `json:"orderId"`
	OrderDate time.Time `json:"orderDate"`
}

// ApproveOrder asks the approval worker to approve an order held for manual
// approval. ActingUserID is empty when the request carried no user context.
type ApproveOrder struct {
	OrderID      string `json:"orderId"`
	ActingUserID string `json:"actingUserId,omitempty"`
}

// OrderProcessed reports a processing outcome for fan-out to connected
// clients.
type OrderProcessed struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
	Title      string `json:"title"`
	Message    string `json:"message"`
}
