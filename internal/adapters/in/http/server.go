// Package http is the JSON API of trackview: the tracking map, the
// selection that drives it, and thin proxies to the platform services for
// the dashboard around the map.
package http

import (
	"net/http"
	"strings"

	"trackview/internal/core/application/usecases/commands"
	"trackview/internal/core/application/usecases/queries"
	"trackview/internal/core/domain/model/kernel"
	"trackview/internal/core/domain/model/order"
	"trackview/internal/core/domain/model/tracking"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	loginHandler          commands.LoginCommandHandler
	createOrderHandler    commands.CreateOrderCommandHandler
	deleteOrderHandler    commands.DeleteOrderCommandHandler
	createCourierHandler  commands.CreateCourierCommandHandler
	assignCourierHandler  commands.AssignCourierCommandHandler
	selectOrderHandler    commands.SelectOrderCommandHandler
	clearSelectionHandler commands.ClearSelectionCommandHandler

	// Query handlers
	getMapViewHandler      queries.GetMapViewQueryHandler
	getOrdersHandler       queries.GetOrdersQueryHandler
	getCouriersHandler     queries.GetCouriersQueryHandler
	getCourierStatsHandler queries.GetCourierStatsQueryHandler
}

func NewServer(
	loginHandler commands.LoginCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	selectOrderHandler commands.SelectOrderCommandHandler,
	clearSelectionHandler commands.ClearSelectionCommandHandler,
	getMapViewHandler queries.GetMapViewQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getCouriersHandler queries.GetCouriersQueryHandler,
	getCourierStatsHandler queries.GetCourierStatsQueryHandler,
) *Server {
	return &Server{
		loginHandler:           loginHandler,
		createOrderHandler:     createOrderHandler,
		deleteOrderHandler:     deleteOrderHandler,
		createCourierHandler:   createCourierHandler,
		assignCourierHandler:   assignCourierHandler,
		selectOrderHandler:     selectOrderHandler,
		clearSelectionHandler:  clearSelectionHandler,
		getMapViewHandler:      getMapViewHandler,
		getOrdersHandler:       getOrdersHandler,
		getCouriersHandler:     getCouriersHandler,
		getCourierStatsHandler: getCourierStatsHandler,
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Login handles POST /api/v1/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Username, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	token, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery(credential(ctx))

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:            o.ID,
			SenderName:    o.SenderName,
			RecipientName: o.RecipientName,
			AddressFrom:   o.AddressFrom,
			AddressTo:     o.AddressTo,
			Status:        o.Status.String(),
			CourierID:     o.CourierID,
			CreatedAt:     o.CreatedAt,
			CompletedAt:   o.CompletedAt,
			Weight:        o.Parcel.Weight,
			Length:        o.Parcel.Length,
			Width:         o.Parcel.Width,
			Height:        o.Parcel.Height,
			Urgency:       int(o.Parcel.Urgency),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders. The created order becomes the
// tracked one.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parcel := order.Parcel{
		Weight:  req.Weight,
		Length:  req.Length,
		Width:   req.Width,
		Height:  req.Height,
		Urgency: order.Urgency(req.Urgency),
	}
	cmd, err := commands.NewCreateOrderCommand(
		req.SenderName, req.RecipientName, req.AddressFrom, req.AddressTo, parcel, credential(ctx),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(ctx.Param("id"), credential(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCourier handles PUT /api/v1/orders/{id}/courier.
func (s *Server) AssignCourier(ctx echo.Context) error {
	var req AssignCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignCourierCommand(ctx.Param("id"), req.CourierID, credential(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetCouriersQuery(credential(ctx))

	couriers, err := s.getCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Courier, len(couriers))
	for i, c := range couriers {
		response[i] = Courier{
			ID:            c.ID,
			Name:          c.Name,
			Phone:         c.Phone,
			VehicleType:   string(c.Vehicle),
			Status:        string(c.Availability),
			ActiveOrderID: c.ActiveOrderID,
		}
		if c.Position != nil {
			p := toPoint(*c.Position)
			response[i].Position = &p
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req CreateCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCourierCommand(req.Name, credential(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := Courier{
		ID:          created.ID(),
		Name:        created.Name(),
		Phone:       created.Phone(),
		VehicleType: string(created.Vehicle()),
		Status:      string(created.Availability()),
	}
	if position, ok := created.Position(); ok {
		p := toPoint(position)
		response.Position = &p
	}
	if orderID, ok := created.ActiveOrderID(); ok {
		response.ActiveOrderID = orderID
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetCourierStats handles GET /api/v1/couriers/stats.
func (s *Server) GetCourierStats(ctx echo.Context) error {
	query := queries.NewGetCourierStatsQuery(credential(ctx))

	stats, err := s.getCourierStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CourierStats, len(stats))
	for i, st := range stats {
		response[i] = CourierStats(st)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SelectOrder handles PUT /api/v1/tracking/selection. The map is returned as
// it stands right after the selection; it fills in as sources resolve.
func (s *Server) SelectOrder(ctx echo.Context) error {
	var req SelectOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSelectOrderCommand(req.OrderID, credential(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.selectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.writeMapView(ctx, http.StatusAccepted)
}

// ClearSelection handles DELETE /api/v1/tracking/selection.
func (s *Server) ClearSelection(ctx echo.Context) error {
	cmd := commands.NewClearSelectionCommand()

	if err := s.clearSelectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMapView handles GET /api/v1/tracking/map.
func (s *Server) GetMapView(ctx echo.Context) error {
	return s.writeMapView(ctx, http.StatusOK)
}

func (s *Server) writeMapView(ctx echo.Context, status int) error {
	view, err := s.getMapViewHandler.Handle(ctx.Request().Context(), queries.NewGetMapViewQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := MapView{
		Phase:       view.Phase.String(),
		OrderID:     view.OrderID,
		OrderStatus: view.OrderStatus.String(),
		Center:      toPoint(view.Center),
		Zoom:        view.Zoom,
		Markers:     make([]Marker, len(view.Markers)),
	}
	for i, m := range view.Markers {
		response.Markers[i] = toMarker(m)
	}

	return ctx.JSON(status, response)
}

// credential returns the bearer token of the request, or "" without one.
func credential(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func toPoint(p kernel.Point) Point {
	return Point{Lat: p.Lat(), Lon: p.Lon()}
}

func toOrder(o *order.Order) Order {
	parcel := o.Parcel()
	response := Order{
		ID:            o.ID(),
		SenderName:    o.SenderName(),
		RecipientName: o.RecipientName(),
		AddressFrom:   o.AddressFrom(),
		AddressTo:     o.AddressTo(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		Weight:        parcel.Weight,
		Length:        parcel.Length,
		Width:         parcel.Width,
		Height:        parcel.Height,
		Urgency:       int(parcel.Urgency),
	}
	if courierID, ok := o.CourierID(); ok {
		response.CourierID = courierID
	}
	if completedAt, ok := o.CompletedAt(); ok {
		response.CompletedAt = &completedAt
	}
	return response
}

func toMarker(m tracking.Marker) Marker {
	return Marker{Kind: string(m.Kind), Position: toPoint(m.Position), Label: m.Label}
}
