package commands

import (
	"context"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"
)

// VerifyEmailCommandHandler confirms an email address from its mailed code.
// A code is single-use: verifying consumes it.
type VerifyEmailCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewVerifyEmailCommandHandler creates a handler for email verification.
func NewVerifyEmailCommandHandler(uowFactory UserUoWFactory) VerifyEmailCommandHandler {
	return VerifyEmailCommandHandler{
		uowFactory: uowFactory,
	}
}

// RequiredRoles declares verification open to anyone; possession of the
// code is the credential.
func (h *VerifyEmailCommandHandler) RequiredRoles() services.RoleRequirement {
	return services.Public()
}

// Handle processes the verification command.
func (h *VerifyEmailCommandHandler) Handle(ctx context.Context, cmd VerifyEmailCommand) error {
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

	verification, err := uow.VerificationRepository().GetByCode(ctx, cmd.Code())
	if err != nil {
		return err
	}

	verifiedUser, err := uow.UserRepository().Get(ctx, verification.UserID())
	if err != nil {
		return err
	}

	verifiedUser.MarkVerified()
	if err = uow.UserRepository().Update(ctx, verifiedUser); err != nil {
		return err
	}

	if err = uow.VerificationRepository().Delete(ctx, verification.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
