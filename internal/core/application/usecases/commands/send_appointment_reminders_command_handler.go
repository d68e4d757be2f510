package commands

import (
	"context"
	"log/slog"

	"carcheck/internal/core/domain/model/order"
	"carcheck/internal/core/domain/services"
)

// SendAppointmentRemindersCommandHandler sends one reminder per pending
// order scheduled for the command's date. A failed reminder is logged and
// skipped; the remaining orders are still processed.
type SendAppointmentRemindersCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher services.NotificationDispatcher
	logger     *slog.Logger
}

// NewSendAppointmentRemindersCommandHandler creates a handler for reminder
// dispatch.
func NewSendAppointmentRemindersCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher services.NotificationDispatcher,
	logger *slog.Logger,
) SendAppointmentRemindersCommandHandler {
	return SendAppointmentRemindersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger.With("component", "send_reminders_handler"),
	}
}

// Handle sends the reminders and returns how many were delivered.
func (h *SendAppointmentRemindersCommandHandler) Handle(ctx context.Context, cmd SendAppointmentRemindersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	pending, err := uow.OrderRepository().GetAllInStatus(ctx, order.Pending)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, aggregate := range pending {
		if aggregate.VehicleInfo().AppointmentDate != cmd.Date() {
			continue
		}

		if err := h.dispatcher.DispatchReminder(ctx, aggregate); err != nil {
			h.logger.WarnContext(ctx, "appointment reminder failed",
				"order_number", aggregate.Number().String(), "error", err)
			continue
		}
		sent++
	}

	return sent, nil
}
