package commands

import (
	"context"
	"log/slog"
	"time"
)

// PurgeStaleVerificationsCommandHandler drops verification codes that were
// never redeemed before their maximum age.
type PurgeStaleVerificationsCommandHandler struct {
	uowFactory UserUoWFactory
	logger     *slog.Logger
}

// NewPurgeStaleVerificationsCommandHandler creates a handler for the purge job.
func NewPurgeStaleVerificationsCommandHandler(
	uowFactory UserUoWFactory,
	logger *slog.Logger,
) PurgeStaleVerificationsCommandHandler {
	return PurgeStaleVerificationsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("handler", "purge_stale_verifications"),
	}
}

// Handle processes the purge command.
func (h *PurgeStaleVerificationsCommandHandler) Handle(ctx context.Context, cmd PurgeStaleVerificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())
	purged, err := uow.VerificationRepository().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if purged > 0 {
		h.logger.InfoContext(ctx, "purged stale verification codes", "count", purged)
	}

	return nil
}
