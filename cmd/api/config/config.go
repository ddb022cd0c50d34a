package config

import (
	"fmt"
	"os"
	"strings"

	"weko_authors_go_backend/internal/database"

	"github.com/rs/zerolog"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	LogLevel       zerolog.Level
	Database       database.Config

	logLevelErr error
}

func NewConfig() *Config {
	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
		err = fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return &Config{
		Port:           getEnv("PORT", "3000"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		LogLevel:       level,
		Database: database.Config{
			Driver:   getEnv("DB_DRIVER", database.DriverPostgres),
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "authors.db"),
		},
		logLevelErr: err,
	}
}

// Validate reports configuration that would make startup fail later.
func (c *Config) Validate() error {
	if c.logLevelErr != nil {
		return c.logLevelErr
	}
	switch c.Database.Driver {
	case database.DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			return fmt.Errorf("DB_HOST and DB_NAME must be set for the %s driver", c.Database.Driver)
		}
	case database.DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH must be set for the %s driver", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
