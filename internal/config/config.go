package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all process configuration, parsed from environment
// variables. A .env file in the working directory is loaded first when
// present.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Either DATABASE_URL or the discrete DB_* variables must be set.
	DatabaseURL string `env:"DATABASE_URL"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBName      string `env:"DB_NAME"`

	ResendAPIKey string `env:"RESEND_API_KEY,required"`
	SenderEmail  string `env:"SENDER_EMAIL,required"`

	MailServiceAPIKey string `env:"MAIL_SERVICE_API_KEY"`
	JWTSecret         string `env:"JWT_SECRET"`

	// ReminderCooldown is the window after a successful reminder during
	// which repeat sends to the same member are suppressed.
	ReminderCooldownHours int `env:"REMINDER_COOLDOWN_HOURS" envDefault:"48"`

	// SendThrottle is the pause enforced between consecutive outbound
	// sends, to stay inside the provider's rate limit.
	SendThrottle time.Duration `env:"SEND_THROTTLE" envDefault:"1s"`

	// ReportTimezone controls date rendering in reminder reports.
	ReportTimezone string `env:"REPORT_TIMEZONE" envDefault:"America/Santiago"`
}

// Load reads the .env file (if any) and parses the environment into a
// Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// DSN returns the Postgres connection string, preferring DATABASE_URL
// over the discrete DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// ReminderCooldown returns the cooldown window as a duration.
func (c *Config) ReminderCooldown() time.Duration {
	return time.Duration(c.ReminderCooldownHours) * time.Hour
}
