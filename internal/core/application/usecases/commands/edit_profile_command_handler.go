package commands

import (
	"context"
	"log/slog"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"
	"github.com/ghk0409/ongs-eats-backend/internal/core/ports"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
)

// EditProfileCommandHandler handles profile updates. Changing the email
// drops the verified flag and issues a fresh verification code; the old
// code for the user is discarded in the same transaction.
type EditProfileCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	mailer     ports.Mailer
	logger     *slog.Logger
}

// NewEditProfileCommandHandler creates a handler for profile updates.
func NewEditProfileCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	mailer ports.Mailer,
	logger *slog.Logger,
) EditProfileCommandHandler {
	return EditProfileCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		mailer:     mailer,
		logger:     logger.With("handler", "edit_profile"),
	}
}

// RequiredRoles declares profile editing open to any authenticated user.
func (h *EditProfileCommandHandler) RequiredRoles() services.RoleRequirement {
	return services.Require(services.TagAny)
}

// Handle processes the profile update command.
// The aggregate is reloaded inside the transaction so a stale actor copy
// cannot overwrite fields it never read.
func (h *EditProfileCommandHandler) Handle(ctx context.Context, cmd EditProfileCommand) error {
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

	editedUser, err := uow.UserRepository().Get(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}

	var verification *user.Verification
	if cmd.Email() != nil && *cmd.Email() != editedUser.Email() {
		verification, err = h.changeEmail(ctx, uow, editedUser, *cmd.Email())
		if err != nil {
			return err
		}
	}

	if cmd.Password() != nil {
		hash, hashErr := h.hasher.Hash(*cmd.Password())
		if hashErr != nil {
			return hashErr
		}
		if err = editedUser.ChangePassword(hash); err != nil {
			return err
		}
	}

	if err = uow.UserRepository().Update(ctx, editedUser); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if verification != nil {
		if err = h.mailer.SendVerificationEmail(ctx, editedUser.Email(), verification.Code()); err != nil {
			h.logger.WarnContext(ctx, "failed to send verification email",
				"userID", editedUser.ID(), "error", err)
		}
	}

	return nil
}

func (h *EditProfileCommandHandler) changeEmail(
	ctx context.Context,
	uow UserUoW,
	editedUser *user.User,
	email string,
) (*user.Verification, error) {
	taken, err := uow.UserRepository().ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewValueIsInvalidErrorWithCause("email", ErrEmailAlreadyTaken)
	}

	if err = editedUser.ChangeEmail(email); err != nil {
		return nil, err
	}

	if err = uow.VerificationRepository().DeleteForUser(ctx, editedUser.ID()); err != nil {
		return nil, err
	}

	verification, err := user.NewVerification(editedUser.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.VerificationRepository().Add(ctx, verification); err != nil {
		return nil, err
	}

	return verification, nil
}
