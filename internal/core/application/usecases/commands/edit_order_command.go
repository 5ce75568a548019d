package commands

import (
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	ErrEditOrderCommandIsNotConstructed = errors.New(
		"EditOrderCommand must be created via NewEditOrderCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// EditOrderCommand represents a request to move an order to a new status.
// Which statuses the actor may set is decided by the order aggregate, not
// here: owners drive the kitchen, drivers drive the hand-off.
//
// Example:
//
//	cmd, err := commands.NewEditOrderCommand(owner, orderID, order.Cooking)
//	if err != nil {
//	    return fmt.Errorf("invalid edit request: %w", err)
//	}
//
//	handler := commands.NewEditOrderCommandHandler(uowFactory, bus, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to edit order: %w", err)
//	}
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	actor   *user.User
	orderID int64
	status  order.Status

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to change an order's status.
// Validates that the actor is present, the order id is positive, and the
// target status is a known one.
func NewEditOrderCommand(actor *user.User, orderID int64, status order.Status) (EditOrderCommand, error) {
	editCommand := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		editCommand.setActor(actor),
		editCommand.setOrderID(orderID),
		editCommand.setStatus(status),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return editCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditOrderCommandIsNotConstructed if validation fails.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// Actor returns the user requesting the status change.
func (c EditOrderCommand) Actor() *user.User {
	return c.actor
}

// OrderID returns the order being edited.
func (c EditOrderCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the requested target status.
func (c EditOrderCommand) Status() order.Status {
	return c.status
}

func (c *EditOrderCommand) setActor(actor *user.User) error {
	if actor == nil {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}

func (c *EditOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
