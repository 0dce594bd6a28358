package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration for the environment named by BP_ENV
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development
	_ = loadDotEnvFile()
	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads <env>.yaml from the first path that has it and applies BP_ overrides
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("BP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}
	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.dbLevel", "warn")
	v.SetDefault("logger.service", "voting-escrow")

	v.SetDefault("escrow.storage", StoragePostgres)
	v.SetDefault("escrow.lockTimeoutMs", 5000)
	v.SetDefault("escrow.maxLockDuration", "35040h") // four years
	v.SetDefault("escrow.allowTimeTravel", false)
	v.SetDefault("escrow.queueSize", 100)
	v.SetDefault("escrow.accountLockBackend", AccountLockDatabase)

	v.SetDefault("token.escrowAccount", "escrow-vault")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.keyPrefix", "voting-escrow:lock:")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "voting_escrow")
}

// getEnvironment determines the environment from BP_ENV
func getEnvironment() string {
	env := os.Getenv("BP_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes the documented BP_ variables win over file values
func processEnvOverrides(v *viper.Viper) {
	strOverrides := map[string]string{
		"BP_DB_HOST":        "database.host",
		"BP_DB_PORT":        "database.port",
		"BP_DB_USERNAME":    "database.username",
		"BP_DB_PASSWORD":    "database.password",
		"BP_DB_NAME":        "database.database",
		"BP_DB_SSL_MODE":    "database.sslMode",
		"BP_SERVER_HOST":    "server.host",
		"BP_SERVER_PORT":    "server.port",
		"BP_LOGGER_LEVEL":   "logger.level",
		"BP_STORAGE":        "escrow.storage",
		"BP_LOCK_BACKEND":   "escrow.accountLockBackend",
		"BP_REDIS_ADDR":     "redis.addr",
		"BP_REDIS_PASSWORD": "redis.password",
	}
	for env, key := range strOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"BP_DB_MAX_OPEN_CONNS":            "database.maxOpenConns",
		"BP_DB_MAX_IDLE_CONNS":            "database.maxIdleConns",
		"BP_DB_CONN_MAX_LIFETIME_MINUTES": "database.connMaxLifetime",
		"BP_DB_QUERY_TIMEOUT_SECONDS":     "database.queryTimeout",
		"BP_ESCROW_LOCK_TIMEOUT_MS":       "escrow.lockTimeoutMs",
		"BP_ESCROW_QUEUE_SIZE":            "escrow.queueSize",
	}
	for env, key := range intOverrides {
		if value := getEnvInt(env, 0); value > 0 {
			v.Set(key, value)
		}
	}

	if travel := os.Getenv("BP_ALLOW_TIME_TRAVEL"); travel != "" {
		if enabled, err := strconv.ParseBool(travel); err == nil {
			v.Set("escrow.allowTimeTravel", enabled)
		}
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts raw second and minute counts into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second
}
