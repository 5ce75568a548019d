package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ghk0409/ongs-eats-backend/cmd"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/orderrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/restaurantrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/postgres/userrepo"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/pubsub"
	"github.com/ghk0409/ongs-eats-backend/internal/adapters/out/rabbitmq"
	"github.com/ghk0409/ongs-eats-backend/internal/core/ports"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	bus := mustCreateBus(configs, logger)
	if closer, ok := bus.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	app := cmd.NewCompositionRoot(configs, gormDB, bus, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:     goDotEnvVariable("JWT_SECRET"),
		JWTTTL:        durationVariable("JWT_TTL", 72*time.Hour),
		MailgunDomain: goDotEnvVariable("MAILGUN_DOMAIN"),
		MailgunAPIKey: goDotEnvVariable("MAILGUN_API_KEY"),
		MailgunFrom:   goDotEnvVariable("MAILGUN_FROM"),
		BusDriver:     goDotEnvVariable("BUS_DRIVER"),
		RabbitMQURL:   goDotEnvVariable("RABBITMQ_URL"),
		PurgeSchedule: goDotEnvVariable("VERIFICATION_PURGE_SCHEDULE"),
		PurgeMaxAge:   durationVariable("VERIFICATION_MAX_AGE", 24*time.Hour),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return parsed
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.VerificationDTO{},
		&restaurantrepo.CategoryDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func mustCreateBus(configs cmd.Config, logger *slog.Logger) ports.NotificationBus {
	switch configs.BusDriver {
	case "", "memory":
		return pubsub.NewMemoryBus(logger)
	case "rabbitmq":
		bus, err := rabbitmq.Connect(configs.RabbitMQURL, logger)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		return bus
	default:
		log.Fatalf("Unknown BUS_DRIVER %q", configs.BusDriver)
		return nil
	}
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	app.CreateHTTPServer().Register(e)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
