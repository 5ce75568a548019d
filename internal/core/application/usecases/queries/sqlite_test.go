package queries_test

import (
	"context"
	"testing"

	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/orderrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/restaurantrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/userrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/restaurant"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database with the full schema.
// Query handlers run plain SQL, so an embedded database is enough to
// exercise them without a container round trip.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.VerificationDTO{},
		&restaurantrepo.CategoryDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	require.NoError(t, err)

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role user.Role) *user.User {
	t.Helper()

	seeded, err := user.NewUser(email, "hash", role)
	require.NoError(t, err)
	require.NoError(t, userrepo.NewGormUserRepository(db).Add(context.Background(), seeded))
	return seeded
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string, ownerID int64, categoryID *int64) *restaurant.Restaurant {
	t.Helper()

	seeded, err := restaurant.NewRestaurant(name, "", "1 Test St", ownerID, categoryID)
	require.NoError(t, err)
	require.NoError(t, restaurantrepo.NewGormRestaurantRepository(db).Add(context.Background(), seeded))
	return seeded
}

func seedOrder(t *testing.T, db *gorm.DB, customerID, restaurantID, ownerID int64, items []order.Item, total int64) *order.Order {
	t.Helper()

	seeded, err := order.NewOrder(customerID, restaurantID, ownerID, items, total)
	require.NoError(t, err)
	require.NoError(t, orderrepo.NewGormOrderRepository(db).Add(context.Background(), seeded))
	return seeded
}
