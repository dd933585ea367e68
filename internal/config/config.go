package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment names accepted in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all configuration for the application.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `validate:"required,hostname_port"`
	// Env selects production or development behavior (asset serving,
	// live reload).
	Env string `validate:"required,oneof=development production"`
	// LogFormat selects the slog handler: "text" or "json".
	LogFormat string `validate:"omitempty,oneof=text json"`
	// StaticDir is the on-disk static asset directory, used in
	// development so edits are served without a rebuild.
	StaticDir string `validate:"required"`
}

// New loads configuration from environment variables, falling back to
// a .env file when one exists.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:      getEnv("APP_ADDR", ":8080"),
		Env:       getEnv("APP_ENV", EnvProduction),
		LogFormat: os.Getenv("LOG_FORMAT"),
		StaticDir: getEnv("STATIC_DIR", "web/static"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
