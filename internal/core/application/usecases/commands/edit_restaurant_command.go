package commands

import (
	"errors"
	"strings"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	ErrEditRestaurantCommandIsNotConstructed = errors.New(
		"EditRestaurantCommand must be created via NewEditRestaurantCommand constructor",
	)
	ErrNoRestaurantChanges = errors.New(
		"at least one of name, coverImage, address or categoryName must be provided",
	)
)

// EditRestaurantCommand represents an owner's request to change their
// restaurant's listing. Nil fields are left untouched.
type EditRestaurantCommand struct { //nolint:recvcheck //using for validation
	owner        *user.User
	restaurantID int64
	name         *string
	coverImage   *string
	address      *string
	categoryName *string

	guard guard.ConstructorGuard
}

// NewEditRestaurantCommand creates a command to update a restaurant listing.
// At least one change must be requested.
func NewEditRestaurantCommand(
	owner *user.User,
	restaurantID int64,
	name, coverImage, address, categoryName *string,
) (EditRestaurantCommand, error) {
	editCommand := EditRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		editCommand.setOwner(owner),
		editCommand.setRestaurantID(restaurantID),
		editCommand.setChanges(name, coverImage, address, categoryName),
	); err != nil {
		return EditRestaurantCommand{}, err
	}

	return editCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditRestaurantCommandIsNotConstructed if validation fails.
func (c EditRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrEditRestaurantCommandIsNotConstructed)
}

// Owner returns the user editing the restaurant.
func (c EditRestaurantCommand) Owner() *user.User {
	return c.owner
}

// RestaurantID returns the identifier of the restaurant to edit.
func (c EditRestaurantCommand) RestaurantID() int64 {
	return c.restaurantID
}

// Name returns the new name, or nil to keep the current one.
func (c EditRestaurantCommand) Name() *string {
	return c.name
}

// CoverImage returns the new cover image, or nil to keep the current one.
// A non-nil empty value clears the image.
func (c EditRestaurantCommand) CoverImage() *string {
	return c.coverImage
}

// Address returns the new address, or nil to keep the current one.
func (c EditRestaurantCommand) Address() *string {
	return c.address
}

// CategoryName returns the raw name of the category to move the restaurant
// into, or nil to keep the current one.
func (c EditRestaurantCommand) CategoryName() *string {
	return c.categoryName
}

func (c *EditRestaurantCommand) setOwner(owner *user.User) error {
	if owner == nil {
		return ErrActorIsRequired
	}

	c.owner = owner
	return nil
}

func (c *EditRestaurantCommand) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsRequiredError("restaurantID")
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *EditRestaurantCommand) setChanges(name, coverImage, address, categoryName *string) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrRestaurantNameIsRequired
		}
		c.name = &trimmed
	}

	if coverImage != nil {
		c.coverImage = coverImage
	}

	if address != nil {
		trimmed := strings.TrimSpace(*address)
		if trimmed == "" {
			return ErrAddressIsRequired
		}
		c.address = &trimmed
	}

	if categoryName != nil {
		if strings.TrimSpace(*categoryName) == "" {
			return ErrCategoryNameIsRequired
		}
		c.categoryName = categoryName
	}

	if c.name == nil && c.coverImage == nil && c.address == nil && c.categoryName == nil {
		return ErrNoRestaurantChanges
	}

	return nil
}
