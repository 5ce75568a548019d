package commands

import (
	"context"
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/restaurant"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
)

var ErrNotRestaurantOwner = errors.New("only the restaurant owner can do that")

// CreateDishCommandHandler handles adding dishes to a restaurant's menu.
// Only the restaurant's owner may extend its menu.
type CreateDishCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateDishCommandHandler creates a handler for menu additions.
func NewCreateDishCommandHandler(uowFactory RestaurantUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// RequiredRoles declares who may add dishes.
func (h *CreateDishCommandHandler) RequiredRoles() services.RoleRequirement {
	return services.Require(services.TagOwner)
}

// Handle processes the menu addition and returns the new dish id.
func (h *CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return 0, err
	}

	if rest.OwnerID() != cmd.Owner().ID() {
		return 0, errs.NewPermissionDeniedErrorWithCause("create dish", ErrNotRestaurantOwner)
	}

	newDish, err := restaurant.NewDish(
		cmd.Name(), cmd.Price(), cmd.Description(), cmd.Photo(), rest.ID(), cmd.Options(),
	)
	if err != nil {
		return 0, err
	}

	if err = uow.DishRepository().Add(ctx, newDish); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newDish.ID(), nil
}
