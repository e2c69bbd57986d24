package config

import (
	"fmt"
	"time"
)

// ServiceName identifies this service in logs, traces and APM dashboards.
const ServiceName = "inventory"

// ObservabilityConfig groups all configuration related to telemetry and
// runtime visibility: logging, New Relic and dependency health checks.
type ObservabilityConfig struct {
	// ServiceName and Environment are always overwritten by LoadConfig.
	ServiceName string `koanf:"service_name" validate:"required"`
	Environment string `koanf:"environment" validate:"required"`

	Logging      LoggingConfig      `koanf:"logging" validate:"required"`
	NewRelic     NewRelicConfig     `koanf:"new_relic"`
	HealthChecks HealthChecksConfig `koanf:"health_checks" validate:"required"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required"`

	// Format selects "json" or "console" output.
	Format string `koanf:"format" validate:"required"`

	// SlowQueryThreshold marks statements slower than this as slow.
	// Supply parseable durations such as "100ms".
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
//
// An empty LicenseKey means the agent is not started.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// HealthChecksConfig controls the dependency checks run by GET /status.
type HealthChecksConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval" validate:"min=1s"`
	Timeout  time.Duration `koanf:"timeout" validate:"min=1s"`
	Checks   []string      `koanf:"checks"`
}

// DefaultObservabilityConfig provides the defaults used when the environment
// does not configure observability.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "development",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},
		NewRelic: NewRelicConfig{
			LicenseKey:                "",
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false, // Disabled by default to avoid mixed log formats
		},
		HealthChecks: HealthChecksConfig{
			Enabled:  true,
			Interval: 30 * time.Second,
			Timeout:  5 * time.Second,
			Checks:   []string{"database", "redis"},
		},
	}
}

// Validate applies rules that go beyond struct tags.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	return nil
}

// GetLogLevel returns the effective log level, defaulting by environment
// when none is set.
func (c *ObservabilityConfig) GetLogLevel() string {
	switch c.Environment {
	case "production":
		if c.Logging.Level == "" {
			return "info"
		}
	case "development", "local":
		if c.Logging.Level == "" {
			return "debug"
		}
	}

	return c.Logging.Level
}

// IsProduction reports whether the application is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

// HealthCheckEnabled reports whether the named dependency check should run.
func (c *ObservabilityConfig) HealthCheckEnabled(name string) bool {
	if !c.HealthChecks.Enabled {
		return false
	}

	for _, check := range c.HealthChecks.Checks {
		if check == name {
			return true
		}
	}

	return false
}
