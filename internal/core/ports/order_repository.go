package ports

import (
	"context"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations load orders joined with their restaurant so the
// denormalized owner identifier needed by visibility checks is present.
type OrderRepository interface {
	// Add persists a new order together with all of its items in the
	// current transaction, and records the assigned identifiers on the
	// aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and driver changes to an existing order.
	// Items are immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier, including its items and the
	// owner of its restaurant.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
