package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpin "github.com/ghk0409/ongs-eats-backend/internal/adapters/in/http"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/crypto"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/jwtauth"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/mailgun"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/userrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/commands"
	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/queries"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"
	"github.com/ghk0409/ongs-eats-backend/internal/core/ports"
	"github.com/ghk0409/ongs-eats-backend/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	bus        ports.NotificationBus
	hasher     crypto.BcryptHasher
	signer     jwtauth.Signer
	mailer     *mailgun.Mailer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, bus ports.NotificationBus, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		bus:        bus,
		hasher:     crypto.NewBcryptHasher(0),
		signer:     jwtauth.NewSigner(config.JWTSecret, config.JWTTTL),
		mailer:     mailgun.NewMailer(config.MailgunDomain, config.MailgunAPIKey, config.MailgunFrom),
		logger:     logger,
	}
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateAccountCommandHandler() commands.CreateAccountCommandHandler {
	return commands.NewCreateAccountCommandHandler(c.userUoWFactory(), c.hasher, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userUoWFactory(), c.hasher, c.signer)
}

func (c *CompositionRoot) CreateVerifyEmailCommandHandler() commands.VerifyEmailCommandHandler {
	return commands.NewVerifyEmailCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateEditProfileCommandHandler() commands.EditProfileCommandHandler {
	return commands.NewEditProfileCommandHandler(c.userUoWFactory(), c.hasher, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateEditRestaurantCommandHandler() commands.EditRestaurantCommandHandler {
	return commands.NewEditRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRestaurantCommandHandler() commands.DeleteRestaurantCommandHandler {
	return commands.NewDeleteRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(), services.NewPricer(c.logger), c.bus, c.logger)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderUoWFactory(), c.bus, c.logger)
}

func (c *CompositionRoot) CreateTakeOrderCommandHandler() commands.TakeOrderCommandHandler {
	return commands.NewTakeOrderCommandHandler(c.orderUoWFactory(), c.bus, c.logger)
}

func (c *CompositionRoot) CreatePurgeStaleVerificationsCommandHandler() commands.PurgeStaleVerificationsCommandHandler {
	return commands.NewPurgeStaleVerificationsCommandHandler(c.userUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoriesQueryHandler() queries.GetCategoriesQueryHandler {
	return queries.NewGetCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoryQueryHandler() queries.GetCategoryQueryHandler {
	return queries.NewGetCategoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserProfileQueryHandler() queries.GetUserProfileQueryHandler {
	return queries.NewGetUserProfileQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound REST adapter over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.Handlers{
			CreateAccount:  c.CreateCreateAccountCommandHandler(),
			Login:          c.CreateLoginCommandHandler(),
			VerifyEmail:    c.CreateVerifyEmailCommandHandler(),
			EditProfile:    c.CreateEditProfileCommandHandler(),
			CreateRest:     c.CreateCreateRestaurantCommandHandler(),
			EditRest:       c.CreateEditRestaurantCommandHandler(),
			DeleteRest:     c.CreateDeleteRestaurantCommandHandler(),
			CreateDish:     c.CreateCreateDishCommandHandler(),
			CreateOrder:    c.CreateCreateOrderCommandHandler(),
			EditOrder:      c.CreateEditOrderCommandHandler(),
			TakeOrder:      c.CreateTakeOrderCommandHandler(),
			GetRestaurants: c.CreateGetRestaurantsQueryHandler(),
			GetCategories:  c.CreateGetCategoriesQueryHandler(),
			GetCategory:    c.CreateGetCategoryQueryHandler(),
			GetOrders:      c.CreateGetOrdersQueryHandler(),
			GetOrder:       c.CreateGetOrderQueryHandler(),
			GetProfile:     c.CreateGetUserProfileQueryHandler(),
		},
		c.signer,
		userrepo.NewGormUserRepository(c.gormDB),
		c.bus,
		c.logger,
	)
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeStaleVerificationsCommandHandler(),
		c.config.PurgeSchedule,
		c.config.PurgeMaxAge,
		c.logger,
	)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
