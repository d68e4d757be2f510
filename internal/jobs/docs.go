// Package jobs provides scheduled background tasks for the inspection
// service, implemented with github.com/robfig/cron/v3.
//
// A single job runs today: AppointmentReminderJob fires daily at 09:00 and
// emails a reminder to every customer whose pending inspection appointment
// falls on the next day.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(remindersHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A failed reminder is logged and skipped; the job never retries within a
// run, the next day's run covers persistent failures.
package jobs
