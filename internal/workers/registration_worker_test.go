package workers_test

import (
	"encoding/json"
	"testing"
	"time"

	"orders/internal/core/application/eventmsg"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
	"orders/internal/workers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func registerOrderDelivery(t *testing.T, msg eventmsg.RegisterOrder) ports.Delivery {
	t.Helper()

	payload, err := json.Marshal(msg)
	require.NoError(t, err)

	return ports.Delivery{Route: eventmsg.RegisterOrderRoute, Payload: payload}
}

func registrationUoW(orders *MockOrderRepository, customers *MockCustomerRepository,
	conditions *MockPaymentConditionRepository) (*MockUoW, *MockRegistrationUoWFactory) {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("CustomerRepository").Return(customers)
	uow.On("PaymentConditionRepository").Return(conditions)
	uow.On("OrderRepository").Return(orders)

	factory := new(MockRegistrationUoWFactory)
	factory.On("Create").Return(uow)

	return uow, factory
}

func TestRegistrationWorker_Handle_RecordsOrderAndStagesFollowUps(t *testing.T) {
	actingUserID := kernel.NewUUID()
	msg := eventmsg.RegisterOrder{
		OrderID:            kernel.NewUUID().String(),
		CustomerID:         kernel.NewUUID().String(),
		PaymentConditionID: kernel.NewUUID().String(),
		OrderDate:          time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		Items: []eventmsg.RegisterOrderItem{
			{ProductName: "turbine", Quantity: 2, UnitPriceCents: 150_000},
		},
		ActingUserID: actingUserID.String(),
	}

	orders := new(MockOrderRepository)
	orders.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.ID().String() == msg.OrderID &&
			o.Status() == order.Paid &&
			o.CreatedBy().IsEqual(actingUserID)
	})).Return(nil).Once()

	customers := new(MockCustomerRepository)
	customers.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Once()
	conditions := new(MockPaymentConditionRepository)
	conditions.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Once()

	uow, factory := registrationUoW(orders, customers, conditions)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	outbox := new(recordingOutbox)
	worker := workers.NewRegistrationWorker(factory)
	err := worker.Handle(t.Context(), registerOrderDelivery(t, msg), outbox)

	require.NoError(t, err)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)

	require.Len(t, outbox.staged, 2)
	assert.Equal(t, eventmsg.OrderCreatedRoute, outbox.staged[0].route)
	created, ok := outbox.staged[0].payload.(eventmsg.OrderCreated)
	require.True(t, ok)
	assert.Equal(t, msg.OrderID, created.OrderID)

	assert.Equal(t, eventmsg.OrderNotificationRoute, outbox.staged[1].route)
	processed, ok := outbox.staged[1].payload.(eventmsg.OrderProcessed)
	require.True(t, ok)
	assert.Equal(t, "Success", processed.Title)
}

func TestRegistrationWorker_Handle_DuplicateStillStagesFollowUps(t *testing.T) {
	msg := eventmsg.RegisterOrder{
		OrderID:            kernel.NewUUID().String(),
		CustomerID:         kernel.NewUUID().String(),
		PaymentConditionID: kernel.NewUUID().String(),
		OrderDate:          time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		Items: []eventmsg.RegisterOrderItem{
			{ProductName: "turbine", Quantity: 1, UnitPriceCents: 9_900},
		},
	}

	orders := new(MockOrderRepository)
	orders.On("Add", mock.Anything, mock.Anything).
		Return(errs.NewObjectAlreadyExistsError("orderId", msg.OrderID)).Once()

	customers := new(MockCustomerRepository)
	customers.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Once()
	conditions := new(MockPaymentConditionRepository)
	conditions.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Once()

	uow, factory := registrationUoW(orders, customers, conditions)

	outbox := new(recordingOutbox)
	worker := workers.NewRegistrationWorker(factory)
	err := worker.Handle(t.Context(), registerOrderDelivery(t, msg), outbox)

	require.NoError(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Len(t, outbox.staged, 2)
}

func TestRegistrationWorker_Handle_MalformedPayloadIsInvariantViolation(t *testing.T) {
	worker := workers.NewRegistrationWorker(new(MockRegistrationUoWFactory))

	delivery := ports.Delivery{Route: eventmsg.RegisterOrderRoute, Payload: []byte("not json")}
	err := worker.Handle(t.Context(), delivery, new(recordingOutbox))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvariantViolation)
}

func TestRegistrationWorker_Handle_InvalidOrderIDIsInvariantViolation(t *testing.T) {
	msg := eventmsg.RegisterOrder{
		OrderID:            "not-a-uuid",
		CustomerID:         kernel.NewUUID().String(),
		PaymentConditionID: kernel.NewUUID().String(),
		OrderDate:          time.Now().UTC(),
		Items: []eventmsg.RegisterOrderItem{
			{ProductName: "turbine", Quantity: 1, UnitPriceCents: 9_900},
		},
	}

	worker := workers.NewRegistrationWorker(new(MockRegistrationUoWFactory))
	err := worker.Handle(t.Context(), registerOrderDelivery(t, msg), new(recordingOutbox))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvariantViolation)
}

func TestRegistrationWorker_Handle_InvalidItemsAreInvariantViolation(t *testing.T) {
	msg := eventmsg.RegisterOrder{
		OrderID:            kernel.NewUUID().String(),
		CustomerID:         kernel.NewUUID().String(),
		PaymentConditionID: kernel.NewUUID().String(),
		OrderDate:          time.Now().UTC(),
		Items:              nil,
	}

	worker := workers.NewRegistrationWorker(new(MockRegistrationUoWFactory))
	err := worker.Handle(t.Context(), registerOrderDelivery(t, msg), new(recordingOutbox))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvariantViolation)
	assert.ErrorContains(t, err, commands.ErrItemsAreRequired.Error())
}
