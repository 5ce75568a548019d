package queries

import (
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery lists the restaurant catalog. Public: browsing needs
// no account.
type GetRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a query for the restaurant listing.
func NewGetRestaurantsQuery() GetRestaurantsQuery {
	return GetRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantsQueryIsNotConstructed if validation fails.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// GetRestaurantsQueryResponse represents one restaurant in the listing.
// CategoryName is nil for restaurants whose category was deleted.
type GetRestaurantsQueryResponse struct {
	ID           int64
	Name         string
	CoverImage   string
	Address      string
	OwnerID      int64
	CategoryName *string
}
