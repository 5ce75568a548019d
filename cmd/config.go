package cmd

import "time"

// Config carries every runtime setting of the service. It is assembled from
// the environment in cmd/app and passed down as a value.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration

	MailgunDomain string
	MailgunAPIKey string
	MailgunFrom   string

	// BusDriver selects the notification bus: "memory" for a single
	// instance, "rabbitmq" for a fleet.
	BusDriver   string
	RabbitMQURL string

	PurgeSchedule string
	PurgeMaxAge   time.Duration
}
