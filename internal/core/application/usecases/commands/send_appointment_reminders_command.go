package commands

import (
	"errors"

	"carcheck/internal/core/domain/model/kernel"
	"carcheck/internal/pkg/errs"
)

var ErrSendAppointmentRemindersCommandIsNotConstructed = errors.New(
	"SendAppointmentRemindersCommand must be created via NewSendAppointmentRemindersCommand constructor",
)

// SendAppointmentRemindersCommand requests reminder emails for every pending
// order whose appointment falls on the given date.
type SendAppointmentRemindersCommand struct { //nolint:recvcheck //using for validation
	date string

	guard kernel.ConstructorGuard
}

// NewSendAppointmentRemindersCommand creates a reminder command for the given
// appointment date (same format the booking stored, YYYY-MM-DD).
func NewSendAppointmentRemindersCommand(date string) (SendAppointmentRemindersCommand, error) {
	if date == "" {
		return SendAppointmentRemindersCommand{}, errs.NewValueIsRequiredError("date")
	}

	return SendAppointmentRemindersCommand{
		date:  date,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendAppointmentRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendAppointmentRemindersCommandIsNotConstructed)
}

// Date returns the appointment date the reminders target.
func (c SendAppointmentRemindersCommand) Date() string {
	return c.date
}
