package commands

import (
	"context"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/restaurant"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"
)

// CreateRestaurantCommandHandler handles restaurant registration.
// The category is resolved by normalized name inside the same transaction,
// so two owners naming the same category concurrently end up sharing one row.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant registration.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// RequiredRoles declares who may register restaurants.
func (h *CreateRestaurantCommandHandler) RequiredRoles() services.RoleRequirement {
	return services.Require(services.TagOwner)
}

// Handle processes the registration command and returns the new restaurant id.
func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) (int64, error) {
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

	category, err := uow.CategoryRepository().GetOrCreate(ctx, cmd.CategoryName())
	if err != nil {
		return 0, err
	}

	categoryID := category.ID()
	newRestaurant, err := restaurant.NewRestaurant(
		cmd.Name(), cmd.CoverImage(), cmd.Address(), cmd.Owner().ID(), &categoryID,
	)
	if err != nil {
		return 0, err
	}

	if err = uow.RestaurantRepository().Add(ctx, newRestaurant); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newRestaurant.ID(), nil
}
