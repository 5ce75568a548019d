package commands

import (
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var ErrDeleteRestaurantCommandIsNotConstructed = errors.New(
	"DeleteRestaurantCommand must be created via NewDeleteRestaurantCommand constructor",
)

// DeleteRestaurantCommand represents an owner's request to remove their
// restaurant. The menu goes with it; past orders keep their item snapshots.
type DeleteRestaurantCommand struct { //nolint:recvcheck //using for validation
	owner        *user.User
	restaurantID int64

	guard guard.ConstructorGuard
}

// NewDeleteRestaurantCommand creates a command to remove a restaurant.
func NewDeleteRestaurantCommand(owner *user.User, restaurantID int64) (DeleteRestaurantCommand, error) {
	deleteCommand := DeleteRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deleteCommand.setOwner(owner),
		deleteCommand.setRestaurantID(restaurantID),
	); err != nil {
		return DeleteRestaurantCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteRestaurantCommandIsNotConstructed if validation fails.
func (c DeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRestaurantCommandIsNotConstructed)
}

// Owner returns the user removing the restaurant.
func (c DeleteRestaurantCommand) Owner() *user.User {
	return c.owner
}

// RestaurantID returns the identifier of the restaurant to remove.
func (c DeleteRestaurantCommand) RestaurantID() int64 {
	return c.restaurantID
}

func (c *DeleteRestaurantCommand) setOwner(owner *user.User) error {
	if owner == nil {
		return ErrActorIsRequired
	}

	c.owner = owner
	return nil
}

func (c *DeleteRestaurantCommand) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsRequiredError("restaurantID")
	}

	c.restaurantID = restaurantID
	return nil
}
