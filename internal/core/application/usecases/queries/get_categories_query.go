package queries

import (
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var ErrGetCategoriesQueryIsNotConstructed = errors.New(
	"GetCategoriesQuery must be created via NewGetCategoriesQuery constructor",
)

// GetCategoriesQuery lists every category with its restaurant count.
// Public: browsing needs no account.
type GetCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCategoriesQuery creates a query for the category listing.
func NewGetCategoriesQuery() GetCategoriesQuery {
	return GetCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCategoriesQueryIsNotConstructed if validation fails.
func (q GetCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoriesQueryIsNotConstructed)
}

// GetCategoriesQueryResponse represents one category in the listing.
type GetCategoriesQueryResponse struct {
	ID              int64
	Name            string
	Slug            string
	RestaurantCount int64
}
