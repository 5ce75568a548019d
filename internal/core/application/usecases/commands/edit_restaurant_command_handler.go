package commands

import (
	"context"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
)

// EditRestaurantCommandHandler handles changes to a restaurant listing.
// Only the restaurant's owner may edit it. A category change resolves the
// new category by normalized name inside the same transaction, creating it
// on first use.
type EditRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewEditRestaurantCommandHandler creates a handler for restaurant edits.
func NewEditRestaurantCommandHandler(uowFactory RestaurantUoWFactory) EditRestaurantCommandHandler {
	return EditRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// RequiredRoles declares who may edit restaurants.
func (h *EditRestaurantCommandHandler) RequiredRoles() services.RoleRequirement {
	return services.Require(services.TagOwner)
}

// Handle processes the edit command.
func (h *EditRestaurantCommandHandler) Handle(ctx context.Context, cmd EditRestaurantCommand) error {
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
		return errs.NewPermissionDeniedErrorWithCause("edit restaurant", ErrNotRestaurantOwner)
	}

	if cmd.Name() != nil {
		if err = rest.Rename(*cmd.Name()); err != nil {
			return err
		}
	}

	if cmd.CoverImage() != nil {
		rest.ChangeCoverImage(*cmd.CoverImage())
	}

	if cmd.Address() != nil {
		if err = rest.Relocate(*cmd.Address()); err != nil {
			return err
		}
	}

	if cmd.CategoryName() != nil {
		category, categoryErr := uow.CategoryRepository().GetOrCreate(ctx, *cmd.CategoryName())
		if categoryErr != nil {
			return categoryErr
		}

		categoryID := category.ID()
		rest.ChangeCategory(&categoryID)
	}

	if err = uow.RestaurantRepository().Update(ctx, rest); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
