// Package config parses process configuration from environment variables,
// with documented fallback defaults for local development.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/tansu/autoservice/pkg/database"
)

// Config holds all process configuration.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"autoservice"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// Connection pool bounds.
	PoolMaxOpen         int           `env:"POOL_MAX_OPEN" envDefault:"25"`
	PoolMinIdle         int           `env:"POOL_MIN_IDLE" envDefault:"5"`
	PoolConnMaxLifetime time.Duration `env:"POOL_CONN_MAX_LIFETIME" envDefault:"5m"`
	PoolAcquireTimeout  time.Duration `env:"POOL_ACQUIRE_TIMEOUT" envDefault:"5s"`

	MetricsPort    string `env:"METRICS_PORT" envDefault:"9100"`
	JaegerEndpoint string `env:"JAEGER_ENDPOINT" envDefault:"http://localhost:14268/api/traces"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (Config, error) {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether the process runs in development mode.
func (c Config) IsDevelopment() bool {
	return strings.ToLower(c.AppEnv) == "dev"
}

// DatabaseConfig maps the configuration onto the connection manager's config.
func (c Config) DatabaseConfig() database.Config {
	return database.Config{
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		DBName:          c.DBName,
		SSLMode:         c.DBSSLMode,
		MaxOpenConns:    c.PoolMaxOpen,
		MinIdleConns:    c.PoolMinIdle,
		ConnMaxLifetime: c.PoolConnMaxLifetime,
		AcquireTimeout:  c.PoolAcquireTimeout,
	}
}
