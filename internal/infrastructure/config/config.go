package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Escrow      EscrowConfig   `mapstructure:"escrow"`
	Token       TokenConfig    `mapstructure:"token"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	DBLevel string `mapstructure:"dbLevel"`
	Service string `mapstructure:"service"`
}

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Account lock backends
const (
	AccountLockDatabase = "database"
	AccountLockRedis    = "redis"
)

// EscrowConfig contains escrow ledger settings
type EscrowConfig struct {
	Storage            string        `mapstructure:"storage"`
	LockTimeoutMs      int64         `mapstructure:"lockTimeoutMs"`
	MaxLockDuration    time.Duration `mapstructure:"maxLockDuration"` // e.g. "35040h"
	AllowTimeTravel    bool          `mapstructure:"allowTimeTravel"`
	QueueSize          int           `mapstructure:"queueSize"`
	AccountLockBackend string        `mapstructure:"accountLockBackend"`
}

// LockTimeout returns the account lock timeout as a duration
func (c EscrowConfig) LockTimeout() time.Duration {
	return time.Duration(c.LockTimeoutMs) * time.Millisecond
}

// TokenConfig contains reference token ledger settings
type TokenConfig struct {
	EscrowAccount   string            `mapstructure:"escrowAccount"`
	DefaultAccounts map[string]string `mapstructure:"defaultAccounts"` // account -> base units
}

// RedisConfig contains settings for the redis account lock backend
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"keyPrefix"`
}

// MetricsConfig contains prometheus settings
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Path      string `mapstructure:"path"`
	Namespace string `mapstructure:"namespace"`
}

// IsProduction reports whether the production environment is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// Validate checks the settings the service cannot start without
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Escrow.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.Database == "" {
			return errors.New("database host and name are required for postgres storage")
		}
	default:
		return fmt.Errorf("unsupported escrow storage: %q", c.Escrow.Storage)
	}

	switch c.Escrow.AccountLockBackend {
	case AccountLockDatabase:
	case AccountLockRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis address is required for the redis account lock backend")
		}
	default:
		return fmt.Errorf("unsupported account lock backend: %q", c.Escrow.AccountLockBackend)
	}

	if c.Escrow.LockTimeoutMs <= 0 {
		return errors.New("escrow lock timeout must be positive")
	}
	if c.Escrow.MaxLockDuration <= 0 {
		return errors.New("escrow max lock duration must be positive")
	}
	if c.Escrow.QueueSize <= 0 {
		return fmt.Errorf("escrow queue size must be positive, got: %d", c.Escrow.QueueSize)
	}
	if c.Escrow.AllowTimeTravel && c.IsProduction() {
		return errors.New("time travel cannot be enabled in production")
	}
	if c.Token.EscrowAccount == "" {
		return errors.New("token escrow account is required")
	}
	return nil
}
