package workers

import (
	"context"

	"orders/internal/core/application/eventmsg"
	"orders/internal/core/ports"
)

// notification is the payload pushed to websocket clients.
type notification struct {
	OrderID string `json:"orderId"`
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// NotificationWorker consumes processing outcomes and fans them out to every
// connected websocket client.
type NotificationWorker struct {
	notifier ports.Notifier
}

// NewNotificationWorker creates the worker for the order-notification route.
func NewNotificationWorker(notifier ports.Notifier) *NotificationWorker {
	return &NotificationWorker{notifier: notifier}
}

// Handle processes one processing outcome.
func (w *NotificationWorker) Handle(_ context.Context, delivery ports.Delivery, _ ports.Outbox) error {
	var msg eventmsg.OrderProcessed
	if err := decode(delivery, &msg); err != nil {
		return err
	}

	w.notifier.BroadcastToAll(NotificationEvent, notification{
		OrderID: msg.OrderID,
		UserID:  msg.CustomerID,
		Title:   msg.Title,
		Message: msg.Message,
	})

	return nil
}
