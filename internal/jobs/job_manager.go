// Package jobs provides the scheduled background tasks of the service,
// implemented on github.com/robfig/cron/v3 and coordinated by JobManager.
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	verificationPurgeJob *VerificationPurgeJob
}

// NewJobManager creates a job manager with all required jobs wired to their
// command handlers.
func NewJobManager(
	purgeHandler commands.PurgeStaleVerificationsCommandHandler,
	purgeSchedule string,
	purgeMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		verificationPurgeJob: NewVerificationPurgeJob(purgeHandler, purgeSchedule, purgeMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.verificationPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start verification purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.verificationPurgeJob.Stop()
}
