// Package http exposes the vendor dashboard API over echo. Handlers translate
// requests into commands and queries and map domain failures onto status
// codes; no business rules live here.
package http

import (
	"errors"
	"net/http"
	"time"

	"railmeals/internal/core/application/usecases/commands"
	"railmeals/internal/core/application/usecases/queries"
	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"
	"railmeals/internal/core/domain/services"
	"railmeals/internal/core/ports"
	"railmeals/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	changeStatusHandler         commands.ChangeOrderStatusCommandHandler
	assignDeliveryHandler       commands.AssignDeliveryCommandHandler
	createDeliveryPersonHandler commands.CreateDeliveryPersonCommandHandler

	// Query handlers
	boardHandler   queries.GetPushedOrdersQueryHandler
	rosterHandler  queries.GetDeliveryRosterQueryHandler
	revenueHandler queries.GetRevenueSummaryQueryHandler

	// Suggestion support
	uowFactory commands.UoWFactory
	suggester  services.CourierSuggester

	trains ports.TrainScheduleProvider
}

// NewServer creates the dashboard API server.
func NewServer(
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	createDeliveryPersonHandler commands.CreateDeliveryPersonCommandHandler,
	boardHandler queries.GetPushedOrdersQueryHandler,
	rosterHandler queries.GetDeliveryRosterQueryHandler,
	revenueHandler queries.GetRevenueSummaryQueryHandler,
	uowFactory commands.UoWFactory,
	trains ports.TrainScheduleProvider,
) *Server {
	return &Server{
		changeStatusHandler:         changeStatusHandler,
		assignDeliveryHandler:       assignDeliveryHandler,
		createDeliveryPersonHandler: createDeliveryPersonHandler,
		boardHandler:                boardHandler,
		rosterHandler:               rosterHandler,
		revenueHandler:              revenueHandler,
		uowFactory:                  uowFactory,
		suggester:                   services.NewCourierSuggester(),
		trains:                      trains,
	}
}

// RegisterRoutes wires the API routes. Everything except the health probe
// sits behind the bearer-token middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))
	api.GET("/orders", s.GetOrders)
	api.POST("/orders/:orderID/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderID/assign", s.AssignDelivery)
	api.GET("/orders/:orderID/suggestion", s.SuggestDeliveryPerson)
	api.GET("/delivery-persons", s.GetDeliveryPersons)
	api.POST("/delivery-persons", s.CreateDeliveryPerson)
	api.GET("/trains/:trainNo/stations/:stationCode", s.GetTrainSchedule)
	api.GET("/revenue", s.GetRevenueSummary)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/v1/orders - the grouped order board.
func (s *Server) GetOrders(ctx echo.Context) error {
	outletID, err := outletIDFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetPushedOrdersQuery(outletID)
	if err != nil {
		return writeError(ctx, err)
	}

	board, err := s.boardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := boardResponse{Tabs: make([]boardTabResponse, 0, len(board.Tabs))}
	for _, tab := range board.Tabs {
		rows := make([]orderResponse, 0, len(tab.Orders))
		for _, row := range tab.Orders {
			rows = append(rows, orderResponse{
				ID:                  row.ID.String(),
				TrainNumber:         row.TrainNumber,
				StationCode:         row.StationCode,
				Status:              row.StatusCode,
				StatusLabel:         row.StatusLabel,
				Tint:                row.Tint,
				CustomerName:        row.CustomerName,
				CustomerPhone:       row.CustomerPhone,
				DeliveryPersonName:  row.DeliveryPersonName,
				Total:               row.Total.StringFixed(2),
				CreatedAt:           row.CreatedAt,
				ScheduledDeliveryAt: row.ScheduledDeliveryAt,
			})
		}
		response.Tabs = append(response.Tabs, boardTabResponse{
			Label:  tab.Label,
			Count:  tab.Count,
			Orders: rows,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderID/status - the
// immediate transition path for targets without courier attribution.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order ID")
	}

	var req changeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target := order.StatusFromCode(req.Status)
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDelivery handles POST /api/v1/orders/:orderID/assign - completes a
// deferred transition with the selected delivery person.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order ID")
	}

	var req assignDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	deliveryPersonID, err := kernel.UUIDFromString(req.DeliveryPersonID)
	if err != nil {
		return badRequest(ctx, "invalid delivery person ID")
	}

	target := order.StatusFromCode(req.Status)
	cmd, err := commands.NewAssignDeliveryCommand(orderID, deliveryPersonID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SuggestDeliveryPerson handles GET /api/v1/orders/:orderID/suggestion -
// pre-fills the courier selection step.
func (s *Server) SuggestDeliveryPerson(ctx echo.Context) error {
	outletID, err := outletIDFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order ID")
	}

	reqCtx := ctx.Request().Context()
	uow := s.uowFactory.Create()

	o, err := uow.OrderRepository().Get(reqCtx, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	people, err := uow.DeliveryPersonRepository().GetAllByOutlet(reqCtx, outletID)
	if err != nil {
		return writeError(ctx, err)
	}

	activeOrders, err := uow.OrderRepository().GetAllActiveByOutlet(reqCtx, outletID)
	if err != nil {
		return writeError(ctx, err)
	}

	suggested, err := s.suggester.Suggest(o, people, activeOrders, time.Now())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, suggestionResponse{
		DeliveryPersonID: suggested.ID().String(),
		Name:             suggested.Name(),
		TotalDeliveries:  suggested.TotalDeliveries(),
	})
}

// GetDeliveryPersons handles GET /api/v1/delivery-persons.
func (s *Server) GetDeliveryPersons(ctx echo.Context) error {
	outletID, err := outletIDFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetDeliveryRosterQuery(outletID)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.rosterHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]deliveryPersonResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, deliveryPersonResponse{
			ID:              entry.ID.String(),
			Name:            entry.Name,
			Phone:           entry.Phone,
			DocumentExpiry:  entry.DocumentExpiry,
			DocumentsValid:  entry.DocumentsValid,
			TotalDeliveries: entry.TotalDeliveries,
			ProfileImageURL: entry.ProfileImageURL,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDeliveryPerson handles POST /api/v1/delivery-persons.
func (s *Server) CreateDeliveryPerson(ctx echo.Context) error {
	outletID, err := outletIDFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var req createDeliveryPersonRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryPersonCommand(
		kernel.NewUUID(), outletID, req.Name, phone, req.DocumentExpiry, req.ProfileImageURL)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createDeliveryPersonHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetTrainSchedule handles GET /api/v1/trains/:trainNo/stations/:stationCode.
func (s *Server) GetTrainSchedule(ctx echo.Context) error {
	schedule, err := s.trains.GetSchedule(
		ctx.Request().Context(), ctx.Param("trainNo"), ctx.Param("stationCode"))
	if err != nil {
		return ctx.JSON(http.StatusBadGateway, errorResponse{
			Code:    http.StatusBadGateway,
			Message: "train information unavailable",
		})
	}

	return ctx.JSON(http.StatusOK, trainScheduleResponse{
		TrainNumber: schedule.TrainNumber,
		TrainName:   schedule.TrainName,
		StationCode: schedule.StationCode,
		ArrivesAt:   schedule.ArrivesAt,
		DepartsAt:   schedule.DepartsAt,
		PlatformNo:  schedule.PlatformNo,
	})
}

// GetRevenueSummary handles GET /api/v1/revenue?from=&to= with RFC 3339
// bounds.
func (s *Server) GetRevenueSummary(ctx echo.Context) error {
	outletID, err := outletIDFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "invalid 'from' timestamp")
	}
	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "invalid 'to' timestamp")
	}

	query, err := queries.NewGetRevenueSummaryQuery(outletID, from, to)
	if err != nil {
		return writeError(ctx, err)
	}

	summary, err := s.revenueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, revenueSummaryResponse{
		TotalRevenue:    summary.TotalRevenue.StringFixed(2),
		OrdersDelivered: summary.OrdersDelivered,
		OrdersCancelled: summary.OrdersCancelled,
		OrdersTotal:     summary.OrdersTotal,
	})
}

// writeError maps domain and application failures onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, commands.ErrCourierSelectionRequired):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, commands.ErrTransitionInFlight):
		code = http.StatusConflict
	case errors.Is(err, ports.ErrPushRejected):
		code = http.StatusBadGateway
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, services.ErrNoEligibleDeliveryPerson):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrTargetDoesNotRequireCourier):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, errorResponse{
		Code:    http.StatusUnauthorized,
		Message: "not authenticated",
	})
}
