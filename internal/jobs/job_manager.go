package jobs

import (
	"fmt"
	"log/slog"

	"carcheck/internal/core/application/usecases/commands"
)

// JobManager provides unified lifecycle control over all scheduled jobs.
type JobManager struct {
	appointmentReminderJob *AppointmentReminderJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	remindersHandler commands.SendAppointmentRemindersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		appointmentReminderJob: NewAppointmentReminderJob(remindersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.appointmentReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start appointment reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.appointmentReminderJob.Stop()
}
