// Package http exposes the REST and websocket surface of the order system.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"orders/internal/adapters/out/ws"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers of the order API.
type Server struct {
	// Command handlers
	submitOrderHandler     commands.SubmitOrderCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	requestApprovalHandler commands.RequestApprovalCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler

	// Query handlers
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getOrderByIDHandler queries.GetOrderByIDQueryHandler
	catalogUoWFactory   commands.CatalogUoWFactory
	hub                 *ws.Hub
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	requestApprovalHandler commands.RequestApprovalCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	catalogUoWFactory commands.CatalogUoWFactory,
	hub *ws.Hub,
) *Server {
	return &Server{
		submitOrderHandler:     submitOrderHandler,
		createOrderHandler:     createOrderHandler,
		requestApprovalHandler: requestApprovalHandler,
		cancelOrderHandler:     cancelOrderHandler,
		getAllOrdersHandler:    getAllOrdersHandler,
		getOrderByIDHandler:    getOrderByIDHandler,
		catalogUoWFactory:      catalogUoWFactory,
		hub:                    hub,
	}
}

// RegisterRoutes mounts every handler on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", ActingUserMiddleware())

	api.POST("/orders", s.SubmitOrder)
	api.POST("/orders/direct", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/approve", s.RequestApproval)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/customers", s.GetCustomers)
	api.GET("/payment-conditions", s.GetPaymentConditions)

	e.GET("/ws/orders", s.OrderNotifications)
}

// SubmitOrder handles POST /api/v1/orders - accepts an order for
// asynchronous processing. The response carries the identifier the order
// will be recorded under.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, paymentConditionID, err := parseOrderRefs(newOrder)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(orderID, customerID, paymentConditionID, newOrder.itemInputs())
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, OrderAccepted{OrderID: orderID.String()})
}

// CreateOrder handles POST /api/v1/orders/direct - records an order
// synchronously, bypassing the registration queue.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, paymentConditionID, err := parseOrderRefs(newOrder)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, paymentConditionID,
		newOrder.itemInputs(), time.Now().UTC())
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderAccepted{OrderID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered
// by the customerId query parameter.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	if filter := ctx.QueryParam("customerId"); filter != "" {
		customerID, err := kernel.UUIDFromString(filter)
		if err != nil {
			return badRequest(ctx, err)
		}

		query, err = queries.NewGetAllOrdersQueryForCustomer(customerID)
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	rows, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]Order, 0, len(rows))
	for _, row := range rows {
		response = append(response, orderFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its
// lines and delivery estimate.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	row, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailFromQuery(row))
}

// RequestApproval handles PUT /api/v1/orders/:id/approve - queues a manual
// approval for an order held above the approval threshold.
func (s *Server) RequestApproval(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRequestApprovalCommand(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.requestApprovalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrOrderDoesNotRequireApproval) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Order does not require manual approval",
			})
		}
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order
// regardless of its current status.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomers handles GET /api/v1/customers - lists the customer catalog.
func (s *Server) GetCustomers(ctx echo.Context) error {
	uow := s.catalogUoWFactory.Create()

	customers, err := uow.CustomerRepository().GetAll(ctx.Request().Context())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve customers",
		})
	}

	response := make([]Customer, 0, len(customers))
	for _, c := range customers {
		response = append(response, Customer{ID: c.ID().String(), Name: c.Name()})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPaymentConditions handles GET /api/v1/payment-conditions - lists the
// payment condition catalog.
func (s *Server) GetPaymentConditions(ctx echo.Context) error {
	uow := s.catalogUoWFactory.Create()

	conditions, err := uow.PaymentConditionRepository().GetAll(ctx.Request().Context())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve payment conditions",
		})
	}

	response := make([]PaymentCondition, 0, len(conditions))
	for _, pc := range conditions {
		response = append(response, PaymentCondition{
			ID:           pc.ID().String(),
			Description:  pc.Description(),
			Installments: pc.Installments(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// OrderNotifications handles GET /ws/orders - upgrades the connection and
// streams order processing notifications.
func (s *Server) OrderNotifications(ctx echo.Context) error {
	return ws.ServeWS(s.hub, ctx.Response(), ctx.Request())
}

func parseOrderRefs(newOrder NewOrder) (kernel.UUID, kernel.UUID, error) {
	customerID, err := kernel.UUIDFromString(newOrder.CustomerID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	paymentConditionID, err := kernel.UUIDFromString(newOrder.PaymentConditionID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return customerID, paymentConditionID, nil
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid order data: " + err.Error(),
	})
}

func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
