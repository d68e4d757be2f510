// Package http exposes the booking and inspection pipeline over REST.
package http

import (
	"errors"
	"net/http"
	"strings"

	"carcheck/internal/core/application/usecases/commands"
	"carcheck/internal/core/application/usecases/queries"
	"carcheck/internal/core/domain/model/kernel"
	"carcheck/internal/core/domain/model/order"
	"carcheck/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createBookingHandler    commands.CreateBookingCommandHandler
	submitInspectionHandler commands.SubmitInspectionCommandHandler

	getOrderHandler         queries.GetOrderQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createBookingHandler commands.CreateBookingCommandHandler,
	submitInspectionHandler commands.SubmitInspectionCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
) *Server {
	return &Server{
		createBookingHandler:    createBookingHandler,
		submitInspectionHandler: submitInspectionHandler,
		getOrderHandler:         getOrderHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/bookings", s.CreateBooking)
	api.GET("/orders", s.GetPendingOrders)
	api.GET("/orders/:number", s.GetOrder)
	api.GET("/orders/:number/report", s.GetOrderReport)
	api.POST("/orders/:number/inspection", s.SubmitInspection)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateBooking handles POST /api/v1/bookings. The order is created even
// when the confirmation email fails; that case is reported with 502 so the
// client can surface the order number together with retry guidance.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var request BookingRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateBookingCommand(
		order.PersonalInfo{
			FullName: request.Client.FullName,
			Email:    request.Client.Email,
			Phone:    request.Client.Phone,
		},
		order.VehicleInfo{
			Make:            request.Vehicle.Make,
			Model:           request.Vehicle.Model,
			Year:            request.Vehicle.Year,
			VIN:             request.Vehicle.VIN,
			AppointmentDate: request.Vehicle.AppointmentDate,
			AppointmentTime: request.Vehicle.AppointmentTime,
		},
		order.SellerInfo{
			Name:  request.Seller.Name,
			Phone: request.Seller.Phone,
		},
		order.SelectedPackage{
			ID:    request.Package.ID,
			Name:  request.Package.Name,
			Price: request.Package.Price,
		},
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid booking data: "+err.Error())
	}

	result, err := s.createBookingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := BookingResponse{
		OrderNumber:      result.Number.String(),
		CustomerNotified: result.Notifications.CustomerSent,
	}
	if !result.Notifications.CustomerSent {
		response.NotificationWarning = "The booking was created, but the confirmation email " +
			"could not be delivered. Keep this order number and contact support if no " +
			"confirmation arrives."
		return ctx.JSON(http.StatusBadGateway, response)
	}

	return ctx.JSON(http.StatusCreated, response)
}

// SubmitInspection handles POST /api/v1/orders/:number/inspection.
func (s *Server) SubmitInspection(ctx echo.Context) error {
	number, err := kernel.OrderNumberFromString(ctx.Param("number"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order number")
	}

	var request InspectionRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSubmitInspectionCommand(
		number, request.results(), request.observations(), request.Finalize)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid submission data: "+err.Error())
	}

	result, err := s.submitInspectionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	s.getOrderHandler.Invalidate(number.String())

	response := InspectionResponse{
		OrderNumber:      number.String(),
		Status:           result.Status.String(),
		ProgressPercent:  result.ProgressPercent,
		ReportSource:     string(result.ReportSource),
		CustomerNotified: result.Notifications.CustomerSent,
	}

	if request.Finalize && !result.Notifications.CustomerSent {
		response.NotificationWarning = "The inspection was completed and the report stored, " +
			"but the report email could not be delivered. The report remains available " +
			"under this order number."
		return ctx.JSON(http.StatusBadGateway, response)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:number. A path parameter containing
// an @ is treated as a customer email, the shape old confirmation links used.
func (s *Server) GetOrder(ctx echo.Context) error {
	response, err := s.lookupOrder(ctx, ctx.Param("number"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderReport handles GET /api/v1/orders/:number/report. An existing
// order without a finished report answers 409 so clients can keep polling;
// only an unknown order number answers 404.
func (s *Server) GetOrderReport(ctx echo.Context) error {
	response, err := s.lookupOrder(ctx, ctx.Param("number"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if !response.ReportReady {
		return errorJSON(ctx, http.StatusConflict, "The inspection report is not ready yet")
	}

	return ctx.JSON(http.StatusOK, ReportResponse{
		OrderNumber: response.Number,
		Report:      response.Report,
	})
}

// GetPendingOrders handles GET /api/v1/orders - the inspector work list.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	orders, err := s.getPendingOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

func (s *Server) lookupOrder(ctx echo.Context, key string) (queries.GetOrderQueryResponse, error) {
	if strings.Contains(key, "@") {
		query, err := queries.NewGetOrderByEmailQuery(key)
		if err != nil {
			return queries.GetOrderQueryResponse{}, err
		}
		return s.getOrderHandler.HandleByEmail(ctx.Request().Context(), query)
	}

	number, err := kernel.OrderNumberFromString(key)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}

	query, err := queries.NewGetOrderQuery(number)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}
	return s.getOrderHandler.Handle(ctx.Request().Context(), query)
}

// writeError maps application errors onto HTTP statuses.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var incomplete *errs.ChecklistIncompleteError
	if errors.As(err, &incomplete) {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:          http.StatusUnprocessableEntity,
			Message:       "The checklist is incomplete; answer every point before finalizing",
			MissingPoints: incomplete.Missing,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrPersistence):
		return errorJSON(ctx, http.StatusInternalServerError, "Storage operation failed")
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
