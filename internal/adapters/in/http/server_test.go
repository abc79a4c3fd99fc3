package http_test

import (
	"context"
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/ws"
	"orders/internal/core/application/eventmsg"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/payment"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllWithoutDeliveryTerm(ctx context.Context, olderThan time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRegistrationUoWFactory struct{ mock.Mock }

func (m *MockRegistrationUoWFactory) Create() commands.RegistrationUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistrationUoW)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

type MockPaymentConditionRepository struct{ mock.Mock }

func (m *MockPaymentConditionRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentConditionRepository) GetAll(ctx context.Context) ([]*payment.PaymentCondition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.PaymentCondition), args.Error(1)
}

type MockCatalogUoW struct{ mock.Mock }

func (m *MockCatalogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockCatalogUoW) PaymentConditionRepository() ports.PaymentConditionRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentConditionRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, route string, payload any) error {
	args := m.Called(ctx, route, payload)
	return args.Error(0)
}

func catalogUoW(customers *MockCustomerRepository, conditions *MockPaymentConditionRepository) (*MockCatalogUoW, *MockCatalogUoWFactory) {
	uow := new(MockCatalogUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("CustomerRepository").Return(customers)
	uow.On("PaymentConditionRepository").Return(conditions)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow)

	return uow, factory
}

func newTestServer(catalogFactory commands.CatalogUoWFactory, publisher ports.EventPublisher) *httpin.Server {
	submitHandler := commands.NewSubmitOrderCommandHandler(catalogFactory, publisher)
	createHandler := commands.NewCreateOrderCommandHandler(new(MockRegistrationUoWFactory), publisher)
	approvalHandler := commands.NewRequestApprovalCommandHandler(new(MockOrderUoWFactory), publisher)
	cancelHandler := commands.NewCancelOrderCommandHandler(new(MockOrderUoWFactory), publisher)

	return httpin.NewServer(submitHandler, createHandler, approvalHandler, cancelHandler,
		queries.NewGetAllOrdersQueryHandler(nil), queries.NewGetOrderByIDQueryHandler(nil),
		catalogFactory, ws.NewHub(slog.New(slog.DiscardHandler)))
}

func newApprovalTestServer(orders *MockOrderRepository) *httpin.Server {
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(orders)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	publisher := new(MockEventPublisher)
	approvalHandler := commands.NewRequestApprovalCommandHandler(factory, publisher)
	cancelHandler := commands.NewCancelOrderCommandHandler(factory, publisher)
	submitHandler := commands.NewSubmitOrderCommandHandler(new(MockCatalogUoWFactory), publisher)
	createHandler := commands.NewCreateOrderCommandHandler(new(MockRegistrationUoWFactory), publisher)

	return httpin.NewServer(submitHandler, createHandler, approvalHandler, cancelHandler,
		queries.NewGetAllOrdersQueryHandler(nil), queries.NewGetOrderByIDQueryHandler(nil),
		new(MockCatalogUoWFactory), ws.NewHub(slog.New(slog.DiscardHandler)))
}

func paidOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "turbine", 1, kernel.NewMoneyFromCents(9_900))
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]*order.Item{item}, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		item.Total(), order.Paid, false, nil, kernel.UUID{}, kernel.UUID{})
	require.NoError(t, err)

	return aggregate
}

func submitBody(t *testing.T) string {
	t.Helper()

	body, err := json.Marshal(httpin.NewOrder{
		CustomerID:         kernel.NewUUID().String(),
		PaymentConditionID: kernel.NewUUID().String(),
		Items: []httpin.NewOrderItem{
			{ProductName: "turbine", Quantity: 2, UnitPriceCents: 150_000},
		},
	})
	require.NoError(t, err)

	return string(body)
}

func performJSON(e *echo.Echo, method string, target string, body string, header map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, value := range header {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_SubmitOrder_Accepted(t *testing.T) {
	customers := new(MockCustomerRepository)
	customers.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Once()
	conditions := new(MockPaymentConditionRepository)
	conditions.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Once()
	_, factory := catalogUoW(customers, conditions)

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, eventmsg.RegisterOrderRoute,
		mock.AnythingOfType("eventmsg.RegisterOrder")).Return(nil).Once()

	e := echo.New()
	server := newTestServer(factory, publisher)
	server.RegisterRoutes(e)

	rec := performJSON(e, nethttp.MethodPost, "/api/v1/orders", submitBody(t), nil)

	require.Equal(t, nethttp.StatusAccepted, rec.Code)

	var accepted httpin.OrderAccepted
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accepted))
	assert.NotEmpty(t, accepted.OrderID)
	publisher.AssertExpectations(t)
}

func TestServer_SubmitOrder_PropagatesActingUser(t *testing.T) {
	customers := new(MockCustomerRepository)
	customers.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Once()
	conditions := new(MockPaymentConditionRepository)
	conditions.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Once()
	_, factory := catalogUoW(customers, conditions)

	actingUserID := kernel.NewUUID()
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, eventmsg.RegisterOrderRoute,
		mock.MatchedBy(func(msg eventmsg.RegisterOrder) bool {
			return msg.ActingUserID == actingUserID.String()
		})).Return(nil).Once()

	e := echo.New()
	server := newTestServer(factory, publisher)
	server.RegisterRoutes(e)

	rec := performJSON(e, nethttp.MethodPost, "/api/v1/orders", submitBody(t),
		map[string]string{httpin.ActingUserHeader: actingUserID.String()})

	require.Equal(t, nethttp.StatusAccepted, rec.Code)
	publisher.AssertExpectations(t)
}

func TestServer_SubmitOrder_InvalidActingUserHeaderIsRejected(t *testing.T) {
	_, factory := catalogUoW(new(MockCustomerRepository), new(MockPaymentConditionRepository))
	publisher := new(MockEventPublisher)

	e := echo.New()
	server := newTestServer(factory, publisher)
	server.RegisterRoutes(e)

	rec := performJSON(e, nethttp.MethodPost, "/api/v1/orders", submitBody(t),
		map[string]string{httpin.ActingUserHeader: "not-a-uuid"})

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestServer_SubmitOrder_UnknownCustomerIsNotFound(t *testing.T) {
	customers := new(MockCustomerRepository)
	customers.On("Exists", mock.Anything, mock.Anything).Return(false, nil).Once()
	conditions := new(MockPaymentConditionRepository)
	_, factory := catalogUoW(customers, conditions)

	publisher := new(MockEventPublisher)

	e := echo.New()
	server := newTestServer(factory, publisher)
	server.RegisterRoutes(e)

	rec := performJSON(e, nethttp.MethodPost, "/api/v1/orders", submitBody(t), nil)

	require.Equal(t, nethttp.StatusNotFound, rec.Code)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestServer_SubmitOrder_InvalidBodyIsBadRequest(t *testing.T) {
	_, factory := catalogUoW(new(MockCustomerRepository), new(MockPaymentConditionRepository))

	e := echo.New()
	server := newTestServer(factory, new(MockEventPublisher))
	server.RegisterRoutes(e)

	rec := performJSON(e, nethttp.MethodPost, "/api/v1/orders",
		`{"customerId":"not-a-uuid","paymentConditionId":"also-not","items":[]}`, nil)

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestServer_GetCustomers_ListsCatalog(t *testing.T) {
	first, err := customer.NewCustomer(kernel.NewUUID(), "Minerva Foods")
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	customers.On("GetAll", mock.Anything).Return([]*customer.Customer{first}, nil).Once()
	_, factory := catalogUoW(customers, new(MockPaymentConditionRepository))

	e := echo.New()
	server := newTestServer(factory, new(MockEventPublisher))
	server.RegisterRoutes(e)

	rec := performJSON(e, nethttp.MethodGet, "/api/v1/customers", "", nil)

	require.Equal(t, nethttp.StatusOK, rec.Code)

	var listed []httpin.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Minerva Foods", listed[0].Name)
}

func TestServer_RequestApproval_ConflictWhenNotHeld(t *testing.T) {
	aggregate := paidOrder(t)

	orders := new(MockOrderRepository)
	orders.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	e := echo.New()
	server := newApprovalTestServer(orders)
	server.RegisterRoutes(e)

	rec := performJSON(e, nethttp.MethodPut, "/api/v1/orders/"+aggregate.ID().String()+"/approve", "", nil)

	require.Equal(t, nethttp.StatusConflict, rec.Code)
}

func TestServer_RequestApproval_UnknownOrderIsNotFound(t *testing.T) {
	orderID := kernel.NewUUID()

	orders := new(MockOrderRepository)
	orders.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once()

	e := echo.New()
	server := newApprovalTestServer(orders)
	server.RegisterRoutes(e)

	rec := performJSON(e, nethttp.MethodPut, "/api/v1/orders/"+orderID.String()+"/approve", "", nil)

	require.Equal(t, nethttp.StatusNotFound, rec.Code)
}
