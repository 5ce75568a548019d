package commands

import (
	"context"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
)

// DeleteRestaurantCommandHandler handles restaurant removal. Only the
// restaurant's owner may remove it.
type DeleteRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewDeleteRestaurantCommandHandler creates a handler for restaurant removal.
func NewDeleteRestaurantCommandHandler(uowFactory RestaurantUoWFactory) DeleteRestaurantCommandHandler {
	return DeleteRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// RequiredRoles declares who may remove restaurants.
func (h *DeleteRestaurantCommandHandler) RequiredRoles() services.RoleRequirement {
	return services.Require(services.TagOwner)
}

// Handle processes the removal command.
func (h *DeleteRestaurantCommandHandler) Handle(ctx context.Context, cmd DeleteRestaurantCommand) error {
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

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if rest.OwnerID() != cmd.Owner().ID() {
		return errs.NewPermissionDeniedErrorWithCause("delete restaurant", ErrNotRestaurantOwner)
	}

	if err = uow.RestaurantRepository().Delete(ctx, rest.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
