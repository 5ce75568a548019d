package ports

import (
	"context"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates.
type RestaurantRepository interface {
	// Add persists a new restaurant and records the assigned identifier on
	// the aggregate.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by identifier.
	Get(ctx context.Context, id int64) (*restaurant.Restaurant, error)

	// GetByOwner retrieves every restaurant the user owns.
	GetByOwner(ctx context.Context, ownerID int64) ([]*restaurant.Restaurant, error)

	// Update persists changes to an existing restaurant.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Delete removes a restaurant. Its dishes are removed with it; orders
	// that reference it survive with the reference nulled.
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository defines the persistence contract for categories.
type CategoryRepository interface {
	// GetOrCreate resolves a raw category name to its category, creating it
	// when no category with the normalized slug exists yet. Repeated calls
	// with equivalent raw names return the same category. Concurrent
	// creations of the same slug are resolved by the storage uniqueness
	// constraint followed by a second lookup.
	GetOrCreate(ctx context.Context, rawName string) (*restaurant.Category, error)

	// GetBySlug retrieves a category by its normalized slug.
	GetBySlug(ctx context.Context, slug string) (*restaurant.Category, error)
}

// DishRepository defines the persistence contract for dishes.
type DishRepository interface {
	// Add persists a new dish and records the assigned identifier on the
	// aggregate.
	Add(ctx context.Context, aggregate *restaurant.Dish) error

	// Get retrieves a dish by identifier.
	Get(ctx context.Context, id int64) (*restaurant.Dish, error)
}
