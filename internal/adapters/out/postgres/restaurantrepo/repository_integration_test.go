package restaurantrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/restaurantrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/userrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/restaurant"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
)

// RestaurantRepositoryIntegrationTestSuite verifies restaurant, category,
// and dish persistence against a real PostgreSQL instance.
type RestaurantRepositoryIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	restaurants *restaurantrepo.GormRestaurantRepository
	categories  *restaurantrepo.GormCategoryRepository
	dishes      *restaurantrepo.GormDishRepository

	owner *user.User
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.VerificationDTO{},
		&restaurantrepo.CategoryDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.DishDTO{},
	))
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE dishes, restaurants, categories, verifications, users").Error)

	suite.restaurants = restaurantrepo.NewGormRestaurantRepository(suite.db)
	suite.categories = restaurantrepo.NewGormCategoryRepository(suite.db)
	suite.dishes = restaurantrepo.NewGormDishRepository(suite.db)

	owner, err := user.NewUser("owner@ongs.dev", "$2a$04$hash", user.Owner)
	suite.Require().NoError(err)
	suite.Require().NoError(userrepo.NewGormUserRepository(suite.db).Add(context.Background(), owner))
	suite.owner = owner
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestGetOrCreate_NormalizesAndDeduplicates() {
	ctx := context.Background()

	first, err := suite.categories.GetOrCreate(ctx, "  Korean BBQ ")
	suite.Require().NoError(err)
	suite.Equal("korean bbq", first.Name())
	suite.Equal("korean-bbq", first.Slug())

	// Equivalent raw spellings resolve to the same category.
	second, err := suite.categories.GetOrCreate(ctx, "KOREAN bbq")
	suite.Require().NoError(err)
	suite.Equal(first.ID(), second.ID())

	var count int64
	suite.Require().NoError(suite.db.Model(&restaurantrepo.CategoryDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestGetBySlug_Missing_ReturnsNotFound() {
	_, err := suite.categories.GetBySlug(context.Background(), "no-such-category")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestAddAndGetRestaurant() {
	ctx := context.Background()

	category, err := suite.categories.GetOrCreate(ctx, "Chicken")
	suite.Require().NoError(err)
	categoryID := category.ID()

	added, err := restaurant.NewRestaurant("Ongs Chicken", "http://img", "Seoul", suite.owner.ID(), &categoryID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurants.Add(ctx, added))
	suite.Require().Positive(added.ID())

	loaded, err := suite.restaurants.Get(ctx, added.ID())
	suite.Require().NoError(err)
	suite.Equal("Ongs Chicken", loaded.Name())
	suite.Equal(suite.owner.ID(), loaded.OwnerID())
	suite.Require().NotNil(loaded.CategoryID())
	suite.Equal(categoryID, *loaded.CategoryID())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestUpdateRestaurant_PersistsChanges() {
	ctx := context.Background()

	added, err := restaurant.NewRestaurant("Ongs Chicken", "", "Seoul", suite.owner.ID(), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurants.Add(ctx, added))

	category, err := suite.categories.GetOrCreate(ctx, "Korean BBQ")
	suite.Require().NoError(err)
	categoryID := category.ID()

	suite.Require().NoError(added.Rename("Ongs BBQ"))
	suite.Require().NoError(added.Relocate("Busan"))
	added.ChangeCategory(&categoryID)
	suite.Require().NoError(suite.restaurants.Update(ctx, added))

	loaded, err := suite.restaurants.Get(ctx, added.ID())
	suite.Require().NoError(err)
	suite.Equal("Ongs BBQ", loaded.Name())
	suite.Equal("Busan", loaded.Address())
	suite.Require().NotNil(loaded.CategoryID())
	suite.Equal(categoryID, *loaded.CategoryID())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestUpdateRestaurant_Missing_ReturnsNotFound() {
	ghost, err := restaurant.RestoreRestaurant(9999, "Ghost", "", "Nowhere", suite.owner.ID(), nil)
	suite.Require().NoError(err)

	err = suite.restaurants.Update(context.Background(), ghost)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestDeleteRestaurant_CascadesDishes() {
	ctx := context.Background()

	added, err := restaurant.NewRestaurant("Ongs Chicken", "", "Seoul", suite.owner.ID(), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurants.Add(ctx, added))

	dish, err := restaurant.NewDish("Fried Chicken", 15000, "Whole bird", "", added.ID(), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.dishes.Add(ctx, dish))

	suite.Require().NoError(suite.restaurants.Delete(ctx, added.ID()))

	_, err = suite.restaurants.Get(ctx, added.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.dishes.Get(ctx, dish.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestDeleteRestaurant_Missing_ReturnsNotFound() {
	err := suite.restaurants.Delete(context.Background(), 9999)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestGetByOwner_ScopesToOwner() {
	ctx := context.Background()

	other, err := user.NewUser("other@ongs.dev", "$2a$04$hash", user.Owner)
	suite.Require().NoError(err)
	suite.Require().NoError(userrepo.NewGormUserRepository(suite.db).Add(ctx, other))

	mine, err := restaurant.NewRestaurant("Mine", "", "Seoul", suite.owner.ID(), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurants.Add(ctx, mine))

	theirs, err := restaurant.NewRestaurant("Theirs", "", "Busan", other.ID(), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurants.Add(ctx, theirs))

	owned, err := suite.restaurants.GetByOwner(ctx, suite.owner.ID())
	suite.Require().NoError(err)
	suite.Require().Len(owned, 1)
	suite.Equal("Mine", owned[0].Name())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestCategoryDeletion_DetachesRestaurants() {
	ctx := context.Background()

	category, err := suite.categories.GetOrCreate(ctx, "Chicken")
	suite.Require().NoError(err)
	categoryID := category.ID()

	added, err := restaurant.NewRestaurant("Ongs Chicken", "", "Seoul", suite.owner.ID(), &categoryID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurants.Add(ctx, added))

	suite.Require().NoError(suite.db.Exec("DELETE FROM categories WHERE id = ?", categoryID).Error)

	loaded, err := suite.restaurants.Get(ctx, added.ID())
	suite.Require().NoError(err)
	suite.Nil(loaded.CategoryID())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestDish_OptionSchemaRoundTrip() {
	ctx := context.Background()

	rest, err := restaurant.NewRestaurant("Ongs Chicken", "", "Seoul", suite.owner.ID(), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurants.Add(ctx, rest))

	spicyExtra := int64(500)
	largeExtra := int64(2000)
	xlExtra := int64(4000)
	options := []restaurant.Option{
		{Name: "Spicy", Extra: &spicyExtra},
		{Name: "Size", Choices: []restaurant.Choice{{Name: "L", Extra: &largeExtra}, {Name: "XL", Extra: &xlExtra}}},
	}

	added, err := restaurant.NewDish("Fried Chicken", 15000, "Whole bird", "", rest.ID(), options)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.dishes.Add(ctx, added))

	loaded, err := suite.dishes.Get(ctx, added.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(15000), loaded.Price())
	suite.Equal(options, loaded.Options())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestDish_DeletedWithRestaurant() {
	ctx := context.Background()

	rest, err := restaurant.NewRestaurant("Ongs Chicken", "", "Seoul", suite.owner.ID(), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurants.Add(ctx, rest))

	added, err := restaurant.NewDish("Fried Chicken", 15000, "Whole bird", "", rest.ID(), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.dishes.Add(ctx, added))

	suite.Require().NoError(suite.db.Exec("DELETE FROM restaurants WHERE id = ?", rest.ID()).Error)

	_, err = suite.dishes.Get(ctx, added.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestRestaurantRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RestaurantRepositoryIntegrationTestSuite))
}
