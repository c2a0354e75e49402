package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Config holds all application configuration
type Config struct {
	BotToken    string        `envconfig:"BOT_TOKEN" required:"true"`
	PollTimeout time.Duration `envconfig:"BOT_POLL_TIMEOUT" default:"10s"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	StatsCron   string        `envconfig:"STATS_CRON" default:"0 0 * * *"`
	NotifyRate  float64       `envconfig:"NOTIFY_RATE" default:"25"`

	Database DatabaseConfig `envconfig:"DB"`
	Dispatch DispatchConfig `envconfig:"DISPATCH"`
}

// DatabaseConfig holds database connection settings (DB_* variables)
type DatabaseConfig struct {
	Driver   string        `default:"postgres"`
	Host     string        `default:"localhost"`
	Port     string        `default:"5432"`
	Name     string        `default:"vocabot"`
	User     string        `default:"vocabot"`
	Password string
	SSLMode  string        `default:"disable"`
	Path     string        `default:"vocabot.db"`
	Timeout  time.Duration `default:"5s"`
}

// DispatchConfig holds scheduler settings (DISPATCH_* variables)
type DispatchConfig struct {
	Interval time.Duration `default:"10s"`
	Timezone string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.Dispatch.Interval <= 0 {
		return fmt.Errorf("DISPATCH_INTERVAL must be positive")
	}
	if c.NotifyRate <= 0 {
		return fmt.Errorf("NOTIFY_RATE must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Database.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", c.Database.Path)
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the timezone schedule times are interpreted in
func (c *Config) Location() (*time.Location, error) {
	if c.Dispatch.Timezone == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.Dispatch.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPATCH_TIMEZONE: %w", err)
	}
	return loc, nil
}
