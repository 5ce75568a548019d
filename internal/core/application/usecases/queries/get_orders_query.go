// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return flat response
// structs instead of domain aggregates.
package queries

import (
	"errors"
	"time"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
	ErrActorIsRequired = errors.New("actor is required")
)

// GetOrdersQuery retrieves the orders visible to the actor, scoped by role:
// customers see the orders they placed, drivers the orders they deliver,
// owners the orders of their restaurants. An optional status narrows the
// result.
//
// Example:
//
//	query, err := queries.NewGetOrdersQuery(actor, nil)
//	if err != nil {
//	    return err
//	}
//
//	handler := queries.NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	actor  *user.User
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the actor's orders. A nil status
// means all statuses.
func NewGetOrdersQuery(actor *user.User, status *order.Status) (GetOrdersQuery, error) {
	if actor == nil {
		return GetOrdersQuery{}, ErrActorIsRequired
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		actor:  actor,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the user whose orders are listed.
func (q GetOrdersQuery) Actor() *user.User {
	return q.actor
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// GetOrdersQueryResponse represents one order in a listing.
type GetOrdersQueryResponse struct {
	ID           int64
	Status       string
	Total        *int64
	RestaurantID *int64
	CustomerID   *int64
	DriverID     *int64
	CreatedAt    time.Time
}
