// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses *ZeroLog* for logging and integrates with
// *New Relic* to instrument the codebase, forwarding logs,
// metrics, and traces for debugging.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/config"
)

const timeFormat = "2006-01-02 15:04:05"

// LoggerService owns the optional New Relic application.
//
// A LoggerService with a nil application is valid: every consumer checks
// GetApplication() before instrumenting.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService starts the New Relic agent when a license key is set.
func NewLoggerService(cfg *config.ObservabilityConfig) *LoggerService {
	service := &LoggerService{}

	if cfg.NewRelic.LicenseKey == "" {
		fmt.Fprintln(os.Stderr, "New Relic license key not provided, skipping initialization")
		return service
	}

	configOptions := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(cfg.NewRelic.DistributedTracingEnabled),
	}

	if cfg.NewRelic.DebugLogging {
		configOptions = append(configOptions, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(configOptions...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize New Relic: %v\n", err)
		return service
	}

	service.nrApp = app

	return service
}

// GetApplication returns the New Relic application, or nil when disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}

	return ls.nrApp
}

// Shutdown flushes pending New Relic data.
func (ls *LoggerService) Shutdown() {
	if ls != nil && ls.nrApp != nil {
		ls.nrApp.Shutdown(10 * time.Second)
	}
}

// ParseLevel maps a configured level name onto a zerolog level.
// Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger builds a logger without New Relic forwarding.
func NewLogger(cfg *config.ObservabilityConfig) zerolog.Logger {
	return NewLoggerWithService(cfg, nil)
}

// NewLoggerWithService builds the root application logger.
//
// Production with JSON format writes to stdout (through the New Relic
// zerolog writer when the agent is running); everything else gets the
// human-friendly console writer.
func NewLoggerWithService(cfg *config.ObservabilityConfig, loggerService *LoggerService) zerolog.Logger {
	zerolog.TimeFieldFormat = timeFormat
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var writer io.Writer

	if cfg.IsProduction() && cfg.Logging.Format == "json" {
		writer = os.Stdout

		if app := loggerService.GetApplication(); app != nil && cfg.NewRelic.AppLogForwardingEnabled {
			writer = zerologWriter.New(os.Stdout, app)
		}
	} else {
		writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: timeFormat}
	}

	logger := zerolog.New(writer).
		Level(ParseLevel(cfg.GetLogLevel())).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()

	if !cfg.IsProduction() {
		logger = logger.With().Stack().Logger()
	}

	return logger
}

// WithTraceContext adds New Relic trace.id and span.id to the logger so log
// lines can be correlated with distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	metadata := txn.GetTraceMetadata()

	return logger.With().
		Str("trace.id", metadata.TraceID).
		Str("span.id", metadata.SpanID).
		Logger()
}

// NewPgxLogger builds the console logger that pgx tracelog writes SQL to.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: timeFormat,
		FormatFieldValue: func(i any) string {
			switch v := i.(type) {
			case string:
				if len(v) > 200 {
					return v[:200] + "..."
				}
				return v
			default:
				return fmt.Sprintf("%v", v)
			}
		},
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("component", "database").
		Logger()
}

// GetPgxTraceLogLevel converts a zerolog level to the matching tracelog level.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
