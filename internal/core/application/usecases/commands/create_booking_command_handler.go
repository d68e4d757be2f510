package commands

import (
	"context"
	"log/slog"

	"carcheck/internal/core/domain/model/kernel"
	"carcheck/internal/core/domain/model/order"
	"carcheck/internal/core/domain/services"
	"carcheck/internal/pkg/errs"
	"carcheck/internal/pkg/metrics"
)

// CreateBookingResult is the outcome of a successful booking. The order is
// always persisted; Notifications reports how the confirmation messages
// fared afterwards.
type CreateBookingResult struct {
	Number        kernel.OrderNumber
	Notifications services.DispatchResult
}

// CreateBookingCommandHandler creates the order in pending status and then
// dispatches the confirmation messages. Persistence always precedes
// notification: a booking whose confirmation email failed still exists and
// can be retried by the customer support flow.
type CreateBookingCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher services.NotificationDispatcher
	pipeline   *metrics.Pipeline
	logger     *slog.Logger
}

// NewCreateBookingCommandHandler creates a handler for booking operations.
func NewCreateBookingCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher services.NotificationDispatcher,
	pipeline *metrics.Pipeline,
	logger *slog.Logger,
) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		pipeline:   pipeline,
		logger:     logger.With("component", "create_booking_handler"),
	}
}

// Handle processes the booking command: assigns a fresh order number,
// persists the order in pending status, then sends the confirmation pair.
func (h *CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (CreateBookingResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateBookingResult{}, err
	}

	number := kernel.NewOrderNumber()
	aggregate, err := order.NewOrder(number,
		cmd.PersonalInfo(), cmd.VehicleInfo(), cmd.SellerInfo(), cmd.SelectedPackage())
	if err != nil {
		return CreateBookingResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateBookingResult{}, errs.NewPersistenceError("begin booking transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreateBookingResult{}, errs.NewPersistenceError("add order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateBookingResult{}, errs.NewPersistenceError("commit booking", err)
	}

	h.pipeline.OrderCreated()
	h.logger.InfoContext(ctx, "order created",
		"order_number", number.String(), "package", cmd.SelectedPackage().Name)

	dispatched := h.dispatcher.Dispatch(ctx, aggregate, services.EventBookingConfirmed)
	h.pipeline.NotificationSent("customer", dispatched.CustomerSent)
	h.pipeline.NotificationSent("inspector", dispatched.InspectorSent)

	return CreateBookingResult{Number: number, Notifications: dispatched}, nil
}
