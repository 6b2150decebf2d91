// Package config loads the site configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	App    AppConfig
	Visits VisitsConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	AssetsDir       string        `env:"ASSETS_DIR" envDefault:"./assets"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

type AppConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development" validate:"oneof=development production test"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error"`
	LogHuman    bool   `env:"LOG_HUMAN" envDefault:"false"`
	Version     string `env:"APP_VERSION" envDefault:"dev"`
}

// VisitsConfig controls visit recording. An empty DBPath disables it.
type VisitsConfig struct {
	DBPath          string `env:"VISITS_DB_PATH"`
	RetentionMonths int    `env:"VISITS_RETENTION_MONTHS" envDefault:"12" validate:"gte=1,lte=120"`
	CleanupSchedule string `env:"VISITS_CLEANUP_SCHEDULE" envDefault:"0 0 3 * * *" validate:"required"`
}

func (c Config) Production() bool {
	return c.App.Environment == "production"
}

func (c Config) VisitsEnabled() bool {
	return c.Visits.DBPath != ""
}

var validate = validator.New()

// Load reads an optional .env file, then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
