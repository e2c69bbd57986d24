// Package config manages environment variables.
//
// It reads variables from the `.env` file and the process environment,
// loads them into structured Go types, and validates that required values
// are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from every environment variable read by LoadConfig.
//
// Nested fields use "." as the delimiter, e.g.
// INVENTORY_SERVER.PORT -> server.port -> Config.Server.Port
const EnvPrefix = "INVENTORY_"

// Config is the root configuration object for the application.
//
// Redis and Integration are optional: an empty Redis address disables the
// background job worker, an empty Resend key disables notification emails.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the sustained number of requests per second allowed per
	// client IP. Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address string `koanf:"address"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// IntegrationConfig holds credentials for third-party services.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	FromEmail    string `koanf:"from_email" validate:"omitempty,email"`
	NotifyEmail  string `koanf:"notify_email" validate:"omitempty,email"`
}

// EmailEnabled reports whether item-change emails can be sent.
func (i IntegrationConfig) EmailEnabled() bool {
	return i.ResendAPIKey != "" && i.NotifyEmail != ""
}

// DSN builds the PostgreSQL connection URL for this database config.
//
// The password is URL-escaped so characters like ':' or '@' don't break it.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.User,
		url.QueryEscape(d.Password),
		net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		d.Name,
		d.SSLMode,
	)
}

// DefaultConfig returns the values used for every key that the environment
// leaves unset. Database credentials have no defaults on purpose.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "local"},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 300,
			ConnMaxIdleTime: 300,
		},
		Integration: IntegrationConfig{
			FromEmail: "onboarding@resend.dev",
		},
		// Pre-populated so a partial INVENTORY_OBSERVABILITY.* override
		// merges into the defaults instead of replacing the whole block.
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it
// over DefaultConfig, validates it and fills in observability defaults.
//
// Behavior summary:
//   - Loads env vars with prefix INVENTORY_
//   - Keys are lowercased with the prefix removed ("." nests)
//   - Validates required config blocks/fields
//   - Sets default observability if missing
//   - Overrides observability service name + environment
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	// Keys absent from the environment keep their default values.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()

	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
