package commands

import (
	"errors"
	"strings"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
	ErrAddressIsRequired        = errors.New("address is required")
	ErrCategoryNameIsRequired   = errors.New("category name is required")
)

// CreateRestaurantCommand represents an owner's request to register a
// restaurant under a category. The category is resolved by name and
// created on first use.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	owner        *user.User
	name         string
	coverImage   string
	address      string
	categoryName string

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
func NewCreateRestaurantCommand(
	owner *user.User,
	name, coverImage, address, categoryName string,
) (CreateRestaurantCommand, error) {
	restaurantCommand := CreateRestaurantCommand{
		coverImage: coverImage,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurantCommand.setOwner(owner),
		restaurantCommand.setName(name),
		restaurantCommand.setAddress(address),
		restaurantCommand.setCategoryName(categoryName),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return restaurantCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRestaurantCommandIsNotConstructed if validation fails.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// Owner returns the user registering the restaurant.
func (c CreateRestaurantCommand) Owner() *user.User {
	return c.owner
}

// Name returns the restaurant name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// CoverImage returns the cover image URL, possibly empty.
func (c CreateRestaurantCommand) CoverImage() string {
	return c.coverImage
}

// Address returns the restaurant address.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

// CategoryName returns the raw category name to resolve.
func (c CreateRestaurantCommand) CategoryName() string {
	return c.categoryName
}

func (c *CreateRestaurantCommand) setOwner(owner *user.User) error {
	if owner == nil {
		return ErrActorIsRequired
	}

	c.owner = owner
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateRestaurantCommand) setCategoryName(categoryName string) error {
	if strings.TrimSpace(categoryName) == "" {
		return ErrCategoryNameIsRequired
	}

	c.categoryName = categoryName
	return nil
}
