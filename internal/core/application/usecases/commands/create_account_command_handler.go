package commands

import (
	"context"
	"log/slog"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"
	"github.com/ghk0409/ongs-eats-backend/internal/core/ports"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
)

// CreateAccountCommandHandler handles account registration. The user and
// its verification code are written in one transaction; the verification
// email goes out only after the transaction commits.
type CreateAccountCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	mailer     ports.Mailer
	logger     *slog.Logger
}

// NewCreateAccountCommandHandler creates a handler for account registration.
func NewCreateAccountCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	mailer ports.Mailer,
	logger *slog.Logger,
) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		mailer:     mailer,
		logger:     logger.With("handler", "create_account"),
	}
}

// RequiredRoles declares registration open to anyone.
func (h *CreateAccountCommandHandler) RequiredRoles() services.RoleRequirement {
	return services.Public()
}

// Handle processes the registration command.
// Email sending is best-effort: a mail failure is logged and the account
// still exists, unverified, until the code is requested again.
func (h *CreateAccountCommandHandler) Handle(ctx context.Context, cmd CreateAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	newUser, err := user.NewUser(cmd.Email(), hash, cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taken, err := uow.UserRepository().ExistsByEmail(ctx, newUser.Email())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewValueIsInvalidErrorWithCause("email", ErrEmailAlreadyTaken)
	}

	if err = uow.UserRepository().Add(ctx, newUser); err != nil {
		return err
	}

	verification, err := user.NewVerification(newUser.ID())
	if err != nil {
		return err
	}

	if err = uow.VerificationRepository().Add(ctx, verification); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.mailer.SendVerificationEmail(ctx, newUser.Email(), verification.Code()); err != nil {
		h.logger.WarnContext(ctx, "failed to send verification email",
			"userID", newUser.ID(), "error", err)
	}

	return nil
}
