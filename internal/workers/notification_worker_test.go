package workers_test

import (
	"encoding/json"
	"testing"

	"orders/internal/core/application/eventmsg"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
	"orders/internal/workers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationWorker_Handle_BroadcastsOutcome(t *testing.T) {
	msg := eventmsg.OrderProcessed{
		OrderID:    kernel.NewUUID().String(),
		CustomerID: kernel.NewUUID().String(),
		Title:      "Success",
		Message:    "Order created successfully!",
	}
	payload, err := json.Marshal(msg)
	require.NoError(t, err)

	notifier := new(MockNotifier)
	notifier.On("BroadcastToAll", workers.NotificationEvent, mock.MatchedBy(func(p any) bool {
		data, marshalErr := json.Marshal(p)
		if marshalErr != nil {
			return false
		}

		var sent map[string]string
		if unmarshalErr := json.Unmarshal(data, &sent); unmarshalErr != nil {
			return false
		}

		return sent["orderId"] == msg.OrderID &&
			sent["userId"] == msg.CustomerID &&
			sent["title"] == msg.Title &&
			sent["message"] == msg.Message
	})).Once()

	worker := workers.NewNotificationWorker(notifier)
	delivery := ports.Delivery{Route: eventmsg.OrderNotificationRoute, Payload: payload}
	err = worker.Handle(t.Context(), delivery, new(recordingOutbox))

	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestNotificationWorker_Handle_MalformedPayloadIsInvariantViolation(t *testing.T) {
	notifier := new(MockNotifier)
	worker := workers.NewNotificationWorker(notifier)

	delivery := ports.Delivery{Route: eventmsg.OrderNotificationRoute, Payload: []byte("][")}
	err := worker.Handle(t.Context(), delivery, new(recordingOutbox))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvariantViolation)
	notifier.AssertNotCalled(t, "BroadcastToAll", mock.Anything, mock.Anything)
}
