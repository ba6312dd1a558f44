package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"gardenhub-backend/internal/jobs"
	"gardenhub-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner.
// Schedules run in the application's local zone so "7 AM" means 7 AM
// where the gardens are.
func NewScheduler(jobRunner *jobs.JobRunner, loc *time.Location) *Scheduler {
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.SendPickerReminders, s.jobs.SendPickerReminders)
	if err != nil {
		logger.Error("Failed to register SendPickerReminders job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.ExpireStaleActivations, s.jobs.ExpireStaleActivations)
	if err != nil {
		logger.Error("Failed to register ExpireStaleActivations job", "error", err)
	}

	logger.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// IsRunning returns true if the scheduler has registered entries
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
