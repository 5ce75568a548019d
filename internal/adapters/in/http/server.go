// Package http is the inbound REST adapter. It binds requests into commands
// and queries, enforces each route's role requirement before dispatch, and
// streams order notifications over server-sent events.
package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/commands"
	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/queries"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"
	"github.com/ghk0409/ongs-eats-backend/internal/core/ports"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createAccountHandler commands.CreateAccountCommandHandler
	loginHandler         commands.LoginCommandHandler
	verifyEmailHandler   commands.VerifyEmailCommandHandler
	editProfileHandler   commands.EditProfileCommandHandler
	createRestHandler    commands.CreateRestaurantCommandHandler
	editRestHandler      commands.EditRestaurantCommandHandler
	deleteRestHandler    commands.DeleteRestaurantCommandHandler
	createDishHandler    commands.CreateDishCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler
	editOrderHandler     commands.EditOrderCommandHandler
	takeOrderHandler     commands.TakeOrderCommandHandler

	// Query handlers
	getRestaurantsHandler queries.GetRestaurantsQueryHandler
	getCategoriesHandler  queries.GetCategoriesQueryHandler
	getCategoryHandler    queries.GetCategoryQueryHandler
	getOrdersHandler      queries.GetOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	getProfileHandler     queries.GetUserProfileQueryHandler

	signer ports.TokenSigner
	users  ports.UserRepository
	bus    ports.NotificationBus
	logger *slog.Logger
}

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateAccount  commands.CreateAccountCommandHandler
	Login          commands.LoginCommandHandler
	VerifyEmail    commands.VerifyEmailCommandHandler
	EditProfile    commands.EditProfileCommandHandler
	CreateRest     commands.CreateRestaurantCommandHandler
	EditRest       commands.EditRestaurantCommandHandler
	DeleteRest     commands.DeleteRestaurantCommandHandler
	CreateDish     commands.CreateDishCommandHandler
	CreateOrder    commands.CreateOrderCommandHandler
	EditOrder      commands.EditOrderCommandHandler
	TakeOrder      commands.TakeOrderCommandHandler
	GetRestaurants queries.GetRestaurantsQueryHandler
	GetCategories  queries.GetCategoriesQueryHandler
	GetCategory    queries.GetCategoryQueryHandler
	GetOrders      queries.GetOrdersQueryHandler
	GetOrder       queries.GetOrderQueryHandler
	GetProfile     queries.GetUserProfileQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	handlers Handlers,
	signer ports.TokenSigner,
	users ports.UserRepository,
	bus ports.NotificationBus,
	logger *slog.Logger,
) *Server {
	return &Server{
		createAccountHandler:  handlers.CreateAccount,
		loginHandler:          handlers.Login,
		verifyEmailHandler:    handlers.VerifyEmail,
		editProfileHandler:    handlers.EditProfile,
		createRestHandler:     handlers.CreateRest,
		editRestHandler:       handlers.EditRest,
		deleteRestHandler:     handlers.DeleteRest,
		createDishHandler:     handlers.CreateDish,
		createOrderHandler:    handlers.CreateOrder,
		editOrderHandler:      handlers.EditOrder,
		takeOrderHandler:      handlers.TakeOrder,
		getRestaurantsHandler: handlers.GetRestaurants,
		getCategoriesHandler:  handlers.GetCategories,
		getCategoryHandler:    handlers.GetCategory,
		getOrdersHandler:      handlers.GetOrders,
		getOrderHandler:       handlers.GetOrder,
		getProfileHandler:     handlers.GetProfile,
		signer:                signer,
		users:                 users,
		bus:                   bus,
		logger:                logger.With("component", "http_server"),
	}
}

// Register attaches middleware and routes to the echo instance. Every route
// declares its role requirement here; there is no metadata inspection at
// request time.
func (s *Server) Register(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(authenticate(s.signer, s.users))

	api := e.Group("/api/v1")

	// Accounts
	api.POST("/accounts", guarded(s.createAccountHandler.RequiredRoles(), s.CreateAccount))
	api.POST("/accounts/login", guarded(s.loginHandler.RequiredRoles(), s.Login))
	api.POST("/accounts/verify-email", guarded(s.verifyEmailHandler.RequiredRoles(), s.VerifyEmail))
	api.GET("/accounts/me", guarded(services.Require(services.TagAny), s.GetMyProfile))
	api.PATCH("/accounts/me", guarded(s.editProfileHandler.RequiredRoles(), s.EditProfile))
	api.GET("/users/:id", guarded(services.Require(services.TagAny), s.GetUserProfile))

	// Restaurants
	api.GET("/restaurants", guarded(services.Public(), s.GetRestaurants))
	api.POST("/restaurants", guarded(s.createRestHandler.RequiredRoles(), s.CreateRestaurant))
	api.PATCH("/restaurants/:id", guarded(s.editRestHandler.RequiredRoles(), s.EditRestaurant))
	api.DELETE("/restaurants/:id", guarded(s.deleteRestHandler.RequiredRoles(), s.DeleteRestaurant))
	api.POST("/restaurants/:id/dishes", guarded(s.createDishHandler.RequiredRoles(), s.CreateDish))

	// Categories
	api.GET("/categories", guarded(services.Public(), s.GetCategories))
	api.GET("/categories/:slug", guarded(services.Public(), s.GetCategory))

	// Orders
	api.POST("/orders", guarded(s.createOrderHandler.RequiredRoles(), s.CreateOrder))
	api.GET("/orders", guarded(services.Require(services.TagAny), s.GetOrders))
	api.GET("/orders/:id", guarded(services.Require(services.TagAny), s.GetOrder))
	api.PATCH("/orders/:id", guarded(s.editOrderHandler.RequiredRoles(), s.EditOrder))
	api.POST("/orders/:id/take", guarded(s.takeOrderHandler.RequiredRoles(), s.TakeOrder))

	// Notification streams
	api.GET("/events/pending-orders", guarded(services.Require(services.TagOwner), s.StreamPendingOrders))
	api.GET("/events/cooked-orders", guarded(services.Require(services.TagDelivery), s.StreamCookedOrders))
	api.GET("/events/order-updates", guarded(services.Require(services.TagAny), s.StreamOrderUpdates))
}
