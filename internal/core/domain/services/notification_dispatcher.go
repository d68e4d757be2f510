package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"carcheck/internal/core/domain/model/order"
	"carcheck/internal/pkg/sendqueue"
)

// Event identifies which lifecycle moment a notification pair belongs to.
type Event int

const (
	// EventBookingConfirmed is dispatched when the booking flow creates an order.
	EventBookingConfirmed Event = iota + 1

	// EventReportReady is dispatched when an inspection completes and the
	// report has been persisted.
	EventReportReady
)

// DispatchResult reports the per-recipient outcome of one dispatch.
//
// Interpretation is asymmetric: the customer-facing outcome is primary. An
// inspector failure is reported here but never escalates to an operation
// failure; a customer failure is surfaced by the caller after the order has
// already been durably saved.
type DispatchResult struct {
	CustomerSent  bool
	InspectorSent bool
	CustomerErr   error
	InspectorErr  error
}

// Errors returns the non-nil send errors, customer first.
func (r DispatchResult) Errors() []error {
	errors := make([]error, 0, 2)
	if r.CustomerErr != nil {
		errors = append(errors, r.CustomerErr)
	}
	if r.InspectorErr != nil {
		errors = append(errors, r.InspectorErr)
	}
	return errors
}

// NotificationDispatcher sends exactly two logical messages per lifecycle
// event: one to the customer, one to the inspector/operations recipient. The
// inspector copy carries the full contact details the customer copy omits.
//
// The customer message is always attempted first; the inspector message is
// attempted only after the customer attempt resolves, never concurrently,
// with a fixed inter-message delay (both enforced by the send queue) to
// respect the messaging provider's rate limit.
//
// Repeated dispatches for the same order are not deduplicated at this layer:
// delivery is at-least-once by design. Downstream idempotency, if required,
// is the messaging provider's concern.
type NotificationDispatcher struct {
	queue              *sendqueue.Queue
	inspectorRecipient string
	logger             *slog.Logger
}

// NewNotificationDispatcher creates a dispatcher sending through the given
// queue. inspectorRecipient is the operations mailbox for internal alerts.
func NewNotificationDispatcher(queue *sendqueue.Queue, inspectorRecipient string, logger *slog.Logger) NotificationDispatcher {
	return NotificationDispatcher{
		queue:              queue,
		inspectorRecipient: inspectorRecipient,
		logger:             logger.With("component", "notification_dispatcher"),
	}
}

// Dispatch sends the customer and inspector messages for the given event.
// It never returns an error; the caller inspects the DispatchResult and
// applies the partial-failure policy.
func (d NotificationDispatcher) Dispatch(ctx context.Context, o *order.Order, event Event) DispatchResult {
	customer, inspector := d.composeMessages(o, event)

	results := d.queue.Run(ctx, []sendqueue.Task{customer, inspector})

	outcome := DispatchResult{
		CustomerSent: results[0].Sent(),
		CustomerErr:  results[0].Err,
	}
	if len(results) > 1 {
		outcome.InspectorSent = results[1].Sent()
		outcome.InspectorErr = results[1].Err
	}

	if outcome.InspectorErr != nil {
		d.logger.WarnContext(ctx, "inspector notification failed",
			"order_number", o.Number().String(), "error", outcome.InspectorErr)
	}
	return outcome
}

// DispatchReminder sends a single appointment reminder to the customer.
func (d NotificationDispatcher) DispatchReminder(ctx context.Context, o *order.Order) error {
	vehicle := o.VehicleInfo()
	body := fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder of your vehicle inspection appointment.\n\n"+
			"Order number: %s\nVehicle: %s\nDate: %s\nTime: %s\n\n"+
			"The CarCheck team",
		o.PersonalInfo().FullName, o.Number(), vehicle.Description(),
		vehicle.AppointmentDate, vehicle.AppointmentTime)

	results := d.queue.Run(ctx, []sendqueue.Task{{
		To:      o.PersonalInfo().Email,
		Subject: fmt.Sprintf("Appointment reminder - Order #%s", o.Number()),
		Body:    body,
	}})
	return results[0].Err
}

func (d NotificationDispatcher) composeMessages(o *order.Order, event Event) (sendqueue.Task, sendqueue.Task) {
	if event == EventReportReady {
		return d.reportReadyCustomerMessage(o), d.reportReadyInspectorMessage(o)
	}
	return d.bookingCustomerMessage(o), d.bookingInspectorMessage(o)
}

func (d NotificationDispatcher) bookingCustomerMessage(o *order.Order) sendqueue.Task {
	vehicle := o.VehicleInfo()
	pkg := o.SelectedPackage()

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", o.PersonalInfo().FullName)
	b.WriteString("Your vehicle inspection appointment is confirmed.\n\n")
	fmt.Fprintf(&b, "Order number: %s\n", o.Number())
	fmt.Fprintf(&b, "Package: %s ($%.2f)\n", pkg.Name, pkg.Price)
	fmt.Fprintf(&b, "Vehicle: %s\n", vehicle.Description())
	fmt.Fprintf(&b, "Date: %s\nTime: %s\n\n", vehicle.AppointmentDate, vehicle.AppointmentTime)
	b.WriteString("Keep this order number to track your inspection and fetch the report.\n\nThe CarCheck team")

	return sendqueue.Task{
		To:      o.PersonalInfo().Email,
		Subject: fmt.Sprintf("Appointment confirmed - Order #%s", o.Number()),
		Body:    b.String(),
	}
}

// bookingInspectorMessage is the internal alert; unlike the customer copy it
// carries the client's and the seller's full contact details.
func (d NotificationDispatcher) bookingInspectorMessage(o *order.Order) sendqueue.Task {
	personal := o.PersonalInfo()
	vehicle := o.VehicleInfo()
	seller := o.SellerInfo()
	pkg := o.SelectedPackage()

	var b strings.Builder
	b.WriteString("A new inspection appointment was booked.\n\n")
	fmt.Fprintf(&b, "Order number: %s\n", o.Number())
	fmt.Fprintf(&b, "Package: %s ($%.2f)\n\n", pkg.Name, pkg.Price)
	fmt.Fprintf(&b, "Client: %s\nPhone: %s\nEmail: %s\n\n", personal.FullName, personal.Phone, personal.Email)
	fmt.Fprintf(&b, "Seller: %s\nSeller phone: %s\n\n", seller.Name, seller.Phone)
	fmt.Fprintf(&b, "Vehicle: %s\nVIN: %s\n", vehicle.Description(), vehicle.VIN)
	fmt.Fprintf(&b, "Date: %s\nTime: %s\n", vehicle.AppointmentDate, vehicle.AppointmentTime)

	return sendqueue.Task{
		To:      d.inspectorRecipient,
		Subject: fmt.Sprintf("New inspection appointment - Order #%s", o.Number()),
		Body:    b.String(),
	}
}

func (d NotificationDispatcher) reportReadyCustomerMessage(o *order.Order) sendqueue.Task {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", o.PersonalInfo().FullName)
	fmt.Fprintf(&b, "The inspection of your %s is complete. ", o.VehicleInfo().Description())
	fmt.Fprintf(&b, "Your report is ready under order number %s.\n\n", o.Number())
	b.WriteString(o.Report())
	b.WriteString("\n\nThe CarCheck team")

	return sendqueue.Task{
		To:      o.PersonalInfo().Email,
		Subject: fmt.Sprintf("Your inspection report is ready - Order #%s", o.Number()),
		Body:    b.String(),
	}
}

func (d NotificationDispatcher) reportReadyInspectorMessage(o *order.Order) sendqueue.Task {
	personal := o.PersonalInfo()

	var b strings.Builder
	fmt.Fprintf(&b, "Inspection completed for order %s (%s).\n\n", o.Number(), o.VehicleInfo().Description())
	fmt.Fprintf(&b, "Client: %s\nPhone: %s\nEmail: %s\n", personal.FullName, personal.Phone, personal.Email)

	return sendqueue.Task{
		To:      d.inspectorRecipient,
		Subject: fmt.Sprintf("Inspection completed - Order #%s", o.Number()),
		Body:    b.String(),
	}
}
