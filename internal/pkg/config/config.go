package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, redirect paths, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Rooms    RoomsConfig
	Payments PaymentsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// RoomsConfig points at the external room catalog service.
type RoomsConfig struct {
	BaseURL string        `envconfig:"ROOMS_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"ROOMS_TIMEOUT" default:"10s"`
	RPS     int           `envconfig:"ROOMS_RPS" default:"5"`
}

// PaymentsConfig points at the external checkout provider.
type PaymentsConfig struct {
	BaseURL       string        `envconfig:"PAYMENTS_BASE_URL" required:"true"`
	APIKey        string        `envconfig:"PAYMENTS_API_KEY" required:"true"`
	WebhookSecret string        `envconfig:"PAYMENTS_WEBHOOK_SECRET" required:"true"`
	Timeout       time.Duration `envconfig:"PAYMENTS_TIMEOUT" default:"15s"`
	SuccessURL    string        `envconfig:"PAYMENTS_SUCCESS_URL" default:"http://localhost:3000/bookings/success"`
	CancelURL     string        `envconfig:"PAYMENTS_CANCEL_URL" default:"http://localhost:3000/bookings/cancelled"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Rooms: RoomsConfig{
			BaseURL: "http://localhost:18081",
			Timeout: 2 * time.Second,
			RPS:     5,
		},
		Payments: PaymentsConfig{
			BaseURL:       "http://localhost:18082",
			APIKey:        "sk_test_dummy",
			WebhookSecret: "whsec_test",
			Timeout:       2 * time.Second,
			SuccessURL:    "http://localhost:3000/bookings/success",
			CancelURL:     "http://localhost:3000/bookings/cancelled",
		},
	}
}
