package queries

import (
	"errors"
	"strings"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var ErrGetCategoryQueryIsNotConstructed = errors.New(
	"GetCategoryQuery must be created via NewGetCategoryQuery constructor",
)

// GetCategoryQuery looks up one category by its slug, with the restaurants
// filed under it. Public: browsing needs no account.
type GetCategoryQuery struct {
	slug string

	guard guard.ConstructorGuard
}

// NewGetCategoryQuery creates a query for one category.
func NewGetCategoryQuery(slug string) (GetCategoryQuery, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return GetCategoryQuery{}, errs.NewValueIsRequiredError("slug")
	}

	return GetCategoryQuery{slug: slug, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCategoryQueryIsNotConstructed if validation fails.
func (q GetCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoryQueryIsNotConstructed)
}

// Slug returns the normalized category key to look up.
func (q GetCategoryQuery) Slug() string {
	return q.slug
}

// CategoryRestaurant represents one restaurant filed under the category.
type CategoryRestaurant struct {
	ID         int64
	Name       string
	CoverImage string
	Address    string
	OwnerID    int64
}

// GetCategoryQueryResponse represents the category with its restaurants.
type GetCategoryQueryResponse struct {
	ID          int64
	Name        string
	Slug        string
	Restaurants []CategoryRestaurant
}
