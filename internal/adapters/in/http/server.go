// Package http exposes the fulfillment use cases over an echo HTTP API.
// Commands and queries are wired in by the composition root; this package
// only translates between the wire format and the application layer.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// managerHeader carries the acting manager's id on mutating order calls.
const managerHeader = "X-Manager-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createWarehouseHandler commands.CreateWarehouseCommandHandler
	createSectionHandler   commands.CreateSectionCommandHandler
	createPileHandler      commands.CreatePileCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	assignLocationHandler  commands.AssignLocationCommandHandler
	changeStatusHandler    commands.ChangeStatusCommandHandler

	getInventoryHandler    queries.GetWarehouseInventoryQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getAuditTrailHandler   queries.GetAuditTrailQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createWarehouseHandler commands.CreateWarehouseCommandHandler,
	createSectionHandler commands.CreateSectionCommandHandler,
	createPileHandler commands.CreatePileCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	assignLocationHandler commands.AssignLocationCommandHandler,
	changeStatusHandler commands.ChangeStatusCommandHandler,
	getInventoryHandler queries.GetWarehouseInventoryQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getAuditTrailHandler queries.GetAuditTrailQueryHandler,
) *Server {
	return &Server{
		createWarehouseHandler: createWarehouseHandler,
		createSectionHandler:   createSectionHandler,
		createPileHandler:      createPileHandler,
		createOrderHandler:     createOrderHandler,
		assignLocationHandler:  assignLocationHandler,
		changeStatusHandler:    changeStatusHandler,
		getInventoryHandler:    getInventoryHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
		getAuditTrailHandler:   getAuditTrailHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/warehouses", s.CreateWarehouse)
	api.POST("/warehouses/:id/sections", s.CreateSection)
	api.POST("/sections/:id/piles", s.CreatePile)
	api.GET("/warehouses/:id/inventory", s.GetWarehouseInventory)
	api.GET("/warehouses/:id/audits", s.GetAuditTrail)

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/location", s.AssignLocation)
	api.POST("/orders/:id/status", s.ChangeStatus)
	api.GET("/orders/active", s.GetActiveOrders)
}

// ErrorResponse is the wire format of every API error.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP status codes: missing objects to
// 404, authorization scope to 403, capacity and transition conflicts to
// 409, validation to 422 and load inconsistencies to 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, warehouse.ErrCapacityExceeded),
		errors.Is(err, services.ErrOrderNotPlaceable):
		status = http.StatusConflict
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusUnprocessableEntity
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}

func managerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(managerHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(managerHeader + " header")
	}
	return kernel.UUIDFromString(raw)
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// NewWarehouse is the request body of POST /api/v1/warehouses.
type NewWarehouse struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
}

// CreateWarehouse handles POST /api/v1/warehouses.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var body NewWarehouse
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	warehouseID := kernel.NewUUID()
	cmd, err := commands.NewCreateWarehouseCommand(
		warehouseID, body.Name, body.City, body.Address, body.Capacity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createWarehouseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": warehouseID.String()})
}

// NewSection is the request body of POST /api/v1/warehouses/:id/sections.
type NewSection struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

// CreateSection handles POST /api/v1/warehouses/:id/sections.
func (s *Server) CreateSection(ctx echo.Context) error {
	warehouseID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("warehouseID", err))
	}

	var body NewSection
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	sectionType, err := warehouse.SectionTypeFromString(body.Type)
	if err != nil {
		return writeError(ctx, err)
	}

	sectionID := kernel.NewUUID()
	cmd, err := commands.NewCreateSectionCommand(
		sectionID, warehouseID, body.Name, sectionType, body.Capacity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createSectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": sectionID.String()})
}

// NewPile is the request body of POST /api/v1/sections/:id/piles.
type NewPile struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

// CreatePile handles POST /api/v1/sections/:id/piles.
func (s *Server) CreatePile(ctx echo.Context) error {
	sectionID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("sectionID", err))
	}

	var body NewPile
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	pileType, err := warehouse.PileTypeFromString(body.Type)
	if err != nil {
		return writeError(ctx, err)
	}

	pileID := kernel.NewUUID()
	cmd, err := commands.NewCreatePileCommand(
		pileID, sectionID, body.Name, pileType, body.Capacity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createPileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": pileID.String()})
}

// NewOrderItem is one line item of an order creation request.
type NewOrderItem struct {
	ProductID  string `json:"productId"`
	Quantity   int    `json:"quantity"`
	UnitWeight int    `json:"unitWeight"`
	Dimensions string `json:"dimensions"`
	UnitPrice  string `json:"unitPrice"`
}

// NewOrder is the request body of POST /api/v1/orders.
type NewOrder struct {
	SourceWarehouseID      string         `json:"sourceWarehouseId,omitempty"`
	DestinationWarehouseID string         `json:"destinationWarehouseId,omitempty"`
	Items                  []NewOrderItem `json:"items"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	sourceID, err := optionalWireUUID(body.SourceWarehouseID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("sourceWarehouseId", err))
	}
	destinationID, err := optionalWireUUID(body.DestinationWarehouseID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("destinationWarehouseId", err))
	}

	items := make([]commands.OrderItemInput, 0, len(body.Items))
	for _, wireItem := range body.Items {
		productID, idErr := kernel.UUIDFromString(wireItem.ProductID)
		if idErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("productId", idErr))
		}

		unitPrice, priceErr := decimal.NewFromString(wireItem.UnitPrice)
		if priceErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("unitPrice", priceErr))
		}

		items = append(items, commands.OrderItemInput{
			ProductID:  productID,
			Quantity:   wireItem.Quantity,
			UnitWeight: wireItem.UnitWeight,
			Dimensions: wireItem.Dimensions,
			UnitPrice:  unitPrice,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, sourceID, destinationID, items)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// LocationAssignment is the request body of POST /api/v1/orders/:id/location.
type LocationAssignment struct {
	SectionID string `json:"sectionId"`
	PileID    string `json:"pileId"`
}

// AssignLocation handles POST /api/v1/orders/:id/location. The acting
// manager comes from the X-Manager-ID header.
func (s *Server) AssignLocation(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderID", err))
	}

	mgrID, err := managerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body LocationAssignment
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	sectionID, err := kernel.UUIDFromString(body.SectionID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("sectionId", err))
	}
	pileID, err := kernel.UUIDFromString(body.PileID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("pileId", err))
	}

	cmd, err := commands.NewAssignLocationCommand(orderID, mgrID, sectionID, pileID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.assignLocationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// StatusChange is the request body of POST /api/v1/orders/:id/status.
type StatusChange struct {
	Status string `json:"status"`
}

// ChangeStatus handles POST /api/v1/orders/:id/status. The acting manager
// comes from the X-Manager-ID header.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderID", err))
	}

	mgrID, err := managerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeStatusCommand(orderID, mgrID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// GetWarehouseInventory handles GET /api/v1/warehouses/:id/inventory.
func (s *Server) GetWarehouseInventory(ctx echo.Context) error {
	warehouseID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("warehouseID", err))
	}

	query, err := queries.NewGetWarehouseInventoryQuery(warehouseID)
	if err != nil {
		return writeError(ctx, err)
	}

	inventory, err := s.getInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInventoryResponse(inventory))
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveOrder, len(orders))
	for i, ord := range orders {
		response[i] = ActiveOrder{
			ID:          ord.ID.String(),
			Status:      ord.Status,
			TotalWeight: ord.TotalWeight,
		}
		if ord.SourceWarehouseID != nil {
			response[i].SourceWarehouseID = ord.SourceWarehouseID.String()
		}
		if ord.DestinationWarehouseID != nil {
			response[i].DestinationWarehouseID = ord.DestinationWarehouseID.String()
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAuditTrail handles GET /api/v1/warehouses/:id/audits.
func (s *Server) GetAuditTrail(ctx echo.Context) error {
	warehouseID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("warehouseID", err))
	}

	query, err := queries.NewGetAuditTrailQuery(warehouseID)
	if err != nil {
		return writeError(ctx, err)
	}

	records, err := s.getAuditTrailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AuditEvent, len(records))
	for i, record := range records {
		response[i] = AuditEvent{
			ID:         record.ID.String(),
			OrderID:    record.OrderID.String(),
			ManagerID:  record.ManagerID.String(),
			Action:     record.Action,
			Details:    record.Details,
			OccurredAt: record.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func optionalWireUUID(raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
