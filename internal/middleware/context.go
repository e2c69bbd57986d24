package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/logger"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/server"
)

// LoggerKey is the echo context key of the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer builds a request-scoped logger carrying request_id,
// method, path, ip and (when New Relic is running) trace.id/span.id.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext stores the request logger in the echo context and in the
// request's context.Context (read back with zerolog.Ctx), so services that
// only see a ctx log with the same fields.
//
// Must run after RequestID and NewRelicMiddleware.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, &contextLogger)

			ctx := contextLogger.WithContext(c.Request().Context())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from the echo context.
//
// If EnhanceContext didn't run, it returns a no-op logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
