package commands

import (
	"context"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"
	"github.com/ghk0409/ongs-eats-backend/internal/core/ports"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
)

// LoginCommandHandler authenticates credentials and issues an access token.
// Read-only: repository calls run outside a transaction on the main
// connection.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	signer     ports.TokenSigner
}

// NewLoginCommandHandler creates a handler for authentication.
func NewLoginCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	signer ports.TokenSigner,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		signer:     signer,
	}
}

// RequiredRoles declares login open to anyone.
func (h *LoginCommandHandler) RequiredRoles() services.RoleRequirement {
	return services.Public()
}

// Handle verifies the credentials and returns a signed token for the user.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	loggedUser, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		return "", err
	}

	if !h.hasher.Compare(loggedUser.PasswordHash(), cmd.Password()) {
		return "", errs.NewPermissionDeniedErrorWithCause("login", ErrWrongPassword)
	}

	return h.signer.Sign(loggedUser.ID())
}
