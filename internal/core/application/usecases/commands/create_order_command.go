package commands

import (
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrActorIsRequired       = errors.New("actor is required")
	ErrRestaurantIDIsInvalid = errors.New("restaurant id must be greater than 0")
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
)

// OrderItemInput is one dish selection in an order request: the dish and
// the option choices made for it. Option names that do not exist on the
// dish are ignored during pricing rather than rejected.
type OrderItemInput struct {
	DishID  int64
	Options []order.ItemOption
}

// CreateOrderCommand represents a customer's request to place an order
// at a restaurant.
//
// Example:
//
//	items := []commands.OrderItemInput{
//	    {DishID: 3, Options: []order.ItemOption{{Name: "Spice Level", Choice: "Kill me"}}},
//	}
//	cmd, err := commands.NewCreateOrderCommand(customer, 7, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := commands.NewCreateOrderCommandHandler(uowFactory, pricer, bus, logger)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer     *user.User
	restaurantID int64
	items        []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer is present, the restaurant id is positive,
// and at least one item is requested.
func NewCreateOrderCommand(customer *user.User, restaurantID int64, items []OrderItemInput) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomer(customer),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Customer returns the user placing the order.
func (c CreateOrderCommand) Customer() *user.User {
	return c.customer
}

// RestaurantID returns the restaurant the order is placed at.
func (c CreateOrderCommand) RestaurantID() int64 {
	return c.restaurantID
}

// Items returns the requested dish selections.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *CreateOrderCommand) setCustomer(customer *user.User) error {
	if customer == nil {
		return ErrActorIsRequired
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return ErrRestaurantIDIsInvalid
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	c.items = items
	return nil
}
