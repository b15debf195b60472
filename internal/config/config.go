// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when present), loads them into structured Go types, and validates
// that required values are present so the app fails fast on bad config.
//
// Responsibilities:
//   - Provide defaults for every optional setting.
//   - Map env vars into a structured Go config (structs).
//   - Validate required values.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Key idea in this file:
	- Defaults are loaded first from a flat confmap.
	- Env vars with the SHOP_ prefix override them. A double underscore
	  marks nesting so keys may keep single underscores:
	  SHOP_SERVER__READ_TIMEOUT -> server.read_timeout
	- PORT and MONGO_URI are read without a prefix, matching the
	  variables the service has always been deployed with.
*/

// EnvPrefix is the prefix for all namespaced environment variables.
const EnvPrefix = "SHOP_"

// ServiceName identifies this service in logs and APM.
const ServiceName = "shop-api"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
type ServerConfig struct {
	Port               string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout        time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout       time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout        time.Duration `koanf:"idle_timeout" validate:"required"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"required"`
	BodyLimit          string        `koanf:"body_limit" validate:"required"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig contains MongoDB connection parameters.
//
// URI is the only value without a default: there is no sensible
// place to connect to implicitly.
type DatabaseConfig struct {
	URI              string        `koanf:"uri" validate:"required"`
	Name             string        `koanf:"name" validate:"required"`
	Collection       string        `koanf:"collection" validate:"required"`
	AppName          string        `koanf:"app_name"`
	ConnectTimeout   time.Duration `koanf:"connect_timeout" validate:"required"`
	OperationTimeout time.Duration `koanf:"operation_timeout" validate:"required"`
	MaxPoolSize      uint64        `koanf:"max_pool_size"`
}

// defaults returns the flat key/value defaults loaded before env vars.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env": "development",

		"server.port":                 "3000",
		"server.read_timeout":         "15s",
		"server.write_timeout":        "15s",
		"server.idle_timeout":         "60s",
		"server.shutdown_timeout":     "30s",
		"server.body_limit":           "1M",
		"server.cors_allowed_origins": []string{"*"},

		"database.name":              "shop",
		"database.collection":        "products",
		"database.app_name":          ServiceName,
		"database.connect_timeout":   "10s",
		"database.operation_timeout": "10s",

		"observability.logging.level":                         "info",
		"observability.logging.format":                        "json",
		"observability.logging.slow_query_threshold":          "100ms",
		"observability.new_relic.app_log_forwarding_enabled":  true,
		"observability.new_relic.distributed_tracing_enabled": true,
		"observability.new_relic.debug_logging":               false,
	}
}

// unprefixed maps bare env variable names onto koanf keys.
var unprefixed = map[string]string{
	"PORT":      "server.port",
	"MONGO_URI": "database.uri",
}

// LoadConfig loads configuration from defaults and environment variables,
// unmarshals it into Config, validates it and returns the result.
//
// It never exits the process; the caller decides what a failure means.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load config defaults: %w", err)
	}

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		key = strings.ReplaceAll(key, "__", ".")

		// Comma separated values become slices.
		if key == "server.cors_allowed_origins" {
			return key, strings.Split(value, ",")
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load %s env variables: %w", EnvPrefix, err)
	}

	err = k.Load(env.Provider("", ".", func(s string) string {
		// An empty key tells the provider to skip the variable.
		return unprefixed[s]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name is fixed; environment always follows primary.env.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
