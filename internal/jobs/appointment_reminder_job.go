package jobs

import (
	"context"
	"log/slog"
	"time"

	"carcheck/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// reminderSchedule fires every morning at 09:00 server time, early enough
// for a next-day reminder to be useful.
const reminderSchedule = "0 9 * * *"

// AppointmentReminderJob sends reminder emails for inspections scheduled the
// next day. Pending orders only: an order already in progress or completed
// needs no reminder.
type AppointmentReminderJob struct {
	handler commands.SendAppointmentRemindersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAppointmentReminderJob creates the daily reminder job.
func NewAppointmentReminderJob(handler commands.SendAppointmentRemindersCommandHandler, logger *slog.Logger) *AppointmentReminderJob {
	return &AppointmentReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "appointment_reminder_job"),
	}
}

// Start schedules the job.
func (j *AppointmentReminderJob) Start() error {
	_, err := j.cron.AddFunc(reminderSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Appointment reminder job started (daily at 09:00)")
	return nil
}

// Stop stops the job.
func (j *AppointmentReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Appointment reminder job stopped")
}

func (j *AppointmentReminderJob) run() {
	ctx := context.Background()
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	cmd, err := commands.NewSendAppointmentRemindersCommand(tomorrow)
	if err != nil {
		j.logger.ErrorContext(ctx, "Appointment reminder job misconfigured", "error", err)
		return
	}

	sent, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Appointment reminder job failed", "error", err)
		return
	}

	if sent > 0 {
		j.logger.InfoContext(ctx, "Appointment reminders sent", "count", sent, "date", tomorrow)
	}
}
