package queries

import (
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// GetOrderQuery retrieves a single order with its items. The actor must be
// a participant of the order: its customer, its driver, or the owner of its
// restaurant. An order that exists but is not theirs is a permission error,
// not a missing order.
type GetOrderQuery struct {
	actor   *user.User
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(actor *user.User, orderID int64) (GetOrderQuery, error) {
	if actor == nil {
		return GetOrderQuery{}, ErrActorIsRequired
	}
	if orderID <= 0 {
		return GetOrderQuery{}, ErrOrderIDIsInvalid
	}

	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the user asking for the order.
func (q GetOrderQuery) Actor() *user.User {
	return q.actor
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderQueryItemResponse represents one dish selection of the order.
type GetOrderQueryItemResponse struct {
	ID      int64
	DishID  int64
	Options []order.ItemOption
}

// GetOrderQueryResponse represents a single order in full detail.
type GetOrderQueryResponse struct {
	ID           int64
	Status       string
	Total        *int64
	RestaurantID *int64
	CustomerID   *int64
	DriverID     *int64
	Items        []GetOrderQueryItemResponse
}
