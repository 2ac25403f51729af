package database

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// PoolConfig holds database connection pool configuration
type PoolConfig struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string

	MaxOpenConns    int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultPoolConfig returns sensible defaults for the connection pool
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxOpenConns:    25,
		MinConns:        2,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

// GetPoolConfigFromEnv reads the postgres connection and pool sizing
// variables, falling back to defaults for anything unset or invalid.
func GetPoolConfigFromEnv() PoolConfig {
	config := DefaultPoolConfig()

	config.Host = os.Getenv("POSTGRES_HOST")
	config.User = os.Getenv("POSTGRES_USER")
	config.Password = os.Getenv("POSTGRES_PASSWORD")
	config.DBName = os.Getenv("POSTGRES_DB")
	config.Port = os.Getenv("POSTGRES_PORT")

	if maxOpen := os.Getenv("DB_MAX_OPEN_CONNS"); maxOpen != "" {
		if val, err := strconv.Atoi(maxOpen); err == nil && val > 0 {
			config.MaxOpenConns = int32(val) // #nosec G109
		} else {
			slog.Warn("invalid DB_MAX_OPEN_CONNS value, using default", "value", maxOpen, "default", config.MaxOpenConns)
		}
	}

	if minConns := os.Getenv("DB_MIN_CONNS"); minConns != "" {
		if val, err := strconv.Atoi(minConns); err == nil && val >= 0 {
			config.MinConns = int32(val) // #nosec G109
		} else {
			slog.Warn("invalid DB_MIN_CONNS value, using default", "value", minConns, "default", config.MinConns)
		}
	}

	if maxLifetime := os.Getenv("DB_CONN_MAX_LIFETIME"); maxLifetime != "" {
		if val, err := time.ParseDuration(maxLifetime); err == nil && val > 0 {
			config.ConnMaxLifetime = val
		} else {
			slog.Warn("invalid DB_CONN_MAX_LIFETIME value, using default", "value", maxLifetime, "default", config.ConnMaxLifetime)
		}
	}

	if maxIdleTime := os.Getenv("DB_CONN_MAX_IDLE_TIME"); maxIdleTime != "" {
		if val, err := time.ParseDuration(maxIdleTime); err == nil && val > 0 {
			config.ConnMaxIdleTime = val
		} else {
			slog.Warn("invalid DB_CONN_MAX_IDLE_TIME value, using default", "value", maxIdleTime, "default", config.ConnMaxIdleTime)
		}
	}

	return config
}
