package commands

import (
	"errors"
	"strings"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/restaurant"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	ErrCreateDishCommandIsNotConstructed = errors.New(
		"CreateDishCommand must be created via NewCreateDishCommand constructor",
	)
	ErrDishNameIsRequired = errors.New("dish name is required")
	ErrDishPriceIsInvalid = errors.New("dish price must not be negative")
)

// CreateDishCommand represents an owner's request to add a dish, with its
// option tree, to one of their restaurants.
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	owner        *user.User
	restaurantID int64
	name         string
	price        int64
	description  string
	photo        string
	options      []restaurant.Option

	guard guard.ConstructorGuard
}

// NewCreateDishCommand creates a command to add a dish to a restaurant.
func NewCreateDishCommand(
	owner *user.User,
	restaurantID int64,
	name string,
	price int64,
	description, photo string,
	options []restaurant.Option,
) (CreateDishCommand, error) {
	dishCommand := CreateDishCommand{
		description: description,
		photo:       photo,
		options:     options,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dishCommand.setOwner(owner),
		dishCommand.setRestaurantID(restaurantID),
		dishCommand.setName(name),
		dishCommand.setPrice(price),
	); err != nil {
		return CreateDishCommand{}, err
	}

	return dishCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDishCommandIsNotConstructed if validation fails.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// Owner returns the user adding the dish.
func (c CreateDishCommand) Owner() *user.User {
	return c.owner
}

// RestaurantID returns the restaurant the dish belongs to.
func (c CreateDishCommand) RestaurantID() int64 {
	return c.restaurantID
}

// Name returns the dish name.
func (c CreateDishCommand) Name() string {
	return c.name
}

// Price returns the base price of the dish.
func (c CreateDishCommand) Price() int64 {
	return c.price
}

// Description returns the dish description, possibly empty.
func (c CreateDishCommand) Description() string {
	return c.description
}

// Photo returns the dish photo URL, possibly empty.
func (c CreateDishCommand) Photo() string {
	return c.photo
}

// Options returns the dish's option tree.
func (c CreateDishCommand) Options() []restaurant.Option {
	return c.options
}

func (c *CreateDishCommand) setOwner(owner *user.User) error {
	if owner == nil {
		return ErrActorIsRequired
	}

	c.owner = owner
	return nil
}

func (c *CreateDishCommand) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return ErrRestaurantIDIsInvalid
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateDishCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrDishNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDishCommand) setPrice(price int64) error {
	if price < 0 {
		return ErrDishPriceIsInvalid
	}

	c.price = price
	return nil
}
