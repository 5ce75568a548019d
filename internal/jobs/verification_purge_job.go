package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/commands"
)

// VerificationPurgeJob periodically deletes verification codes that were
// never redeemed. Accounts stay unverified until the user requests a new
// code through a profile edit.
type VerificationPurgeJob struct {
	handler  commands.PurgeStaleVerificationsCommandHandler
	cron     *cron.Cron
	schedule string
	maxAge   time.Duration
	logger   *slog.Logger
}

// NewVerificationPurgeJob creates the purge job. The schedule is a standard
// five-field cron expression; codes older than maxAge are purged on each run.
func NewVerificationPurgeJob(
	handler commands.PurgeStaleVerificationsCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *VerificationPurgeJob {
	return &VerificationPurgeJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		maxAge:   maxAge,
		logger:   logger.With("component", "verification_purge_job"),
	}
}

// Start schedules the purge and begins running it.
func (j *VerificationPurgeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeStaleVerificationsCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Verification purge job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Verification purge job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Verification purge job started",
		"schedule", j.schedule, "maxAge", j.maxAge)
	return nil
}

// Stop stops the purge job.
func (j *VerificationPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Verification purge job stopped")
}
