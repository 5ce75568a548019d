package commands

import (
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var ErrTakeOrderCommandIsNotConstructed = errors.New(
	"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
)

// TakeOrderCommand represents a delivery driver claiming an order.
// Claiming attaches the driver to the order, which from then on makes the
// order visible to them and lets them drive the hand-off statuses.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	driver  *user.User
	orderID int64

	guard guard.ConstructorGuard
}

// NewTakeOrderCommand creates a command for a driver to claim an order.
func NewTakeOrderCommand(driver *user.User, orderID int64) (TakeOrderCommand, error) {
	takeCommand := TakeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		takeCommand.setDriver(driver),
		takeCommand.setOrderID(orderID),
	); err != nil {
		return TakeOrderCommand{}, err
	}

	return takeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTakeOrderCommandIsNotConstructed if validation fails.
func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

// Driver returns the driver claiming the order.
func (c TakeOrderCommand) Driver() *user.User {
	return c.driver
}

// OrderID returns the order being claimed.
func (c TakeOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *TakeOrderCommand) setDriver(driver *user.User) error {
	if driver == nil {
		return ErrActorIsRequired
	}

	c.driver = driver
	return nil
}

func (c *TakeOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
