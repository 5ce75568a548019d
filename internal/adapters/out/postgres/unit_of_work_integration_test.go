package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/orderrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/restaurantrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/userrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/core/ports"
)

// UnitOfWorkIntegrationTestSuite verifies the GORM-based unit of work
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.VerificationDTO{},
		&restaurantrepo.CategoryDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_items, orders, dishes, restaurants, categories, verifications, users").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.VerificationRepository())
	suite.NotNil(uow1.RestaurantRepository())
	suite.NotNil(uow1.CategoryRepository())
	suite.NotNil(uow1.DishRepository())
	suite.NotNil(uow1.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Repeated begin on an open transaction should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	aggregate, err := user.NewUser("client@ongs.dev", "$2a$04$hash", user.Customer)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, aggregate))

	verification, err := user.NewVerification(aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.VerificationRepository().Add(ctx, verification))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertUserCount(1)
	suite.assertVerificationCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	aggregate, err := user.NewUser("client@ongs.dev", "$2a$04$hash", user.Customer)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, aggregate))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertUserCount(0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommit_IsHarmless() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	aggregate, err := user.NewUser("client@ongs.dev", "$2a$04$hash", user.Customer)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, aggregate))

	suite.Require().NoError(uow.Commit(ctx))

	// The usual "defer uow.Rollback(ctx)" fires after commit; it reports an
	// error but must not undo the committed work.
	suite.Error(uow.Rollback(ctx))
	suite.assertUserCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WorkWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Read-only handlers use repositories without Begin; they run on the
	// main connection.
	aggregate, err := user.NewUser("client@ongs.dev", "$2a$04$hash", user.Customer)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, aggregate))

	loaded, err := uow.UserRepository().GetByEmail(ctx, "client@ongs.dev")
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), loaded.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedChanges_InvisibleOutside() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	aggregate, err := user.NewUser("client@ongs.dev", "$2a$04$hash", user.Customer)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, aggregate))

	// A second unit of work on the main connection must not see the
	// uncommitted row.
	outside := suite.factory.Create()
	_, err = outside.UserRepository().GetByEmail(ctx, "client@ongs.dev")
	suite.Error(err)

	suite.Require().NoError(uow.Commit(ctx))

	_, err = outside.UserRepository().GetByEmail(ctx, "client@ongs.dev")
	suite.NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) assertUserCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&userrepo.UserDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *UnitOfWorkIntegrationTestSuite) assertVerificationCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&userrepo.VerificationDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
