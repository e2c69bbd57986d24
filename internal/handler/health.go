package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/middleware"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/server"
)

// HealthHandler serves GET /status.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth pings each enabled dependency and reports 200 when all are
// healthy, 503 otherwise. Redis is only checked when it is configured.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	obs := h.server.Config.Observability
	checks := map[string]any{}
	isHealthy := true

	if obs.HealthCheckEnabled("database") && h.server.DB != nil {
		if !h.check(c.Request().Context(), &logger, checks, "database", h.server.DB.Ping) {
			isHealthy = false
		}
	}

	if obs.HealthCheckEnabled("redis") && h.server.Redis != nil {
		ping := func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		}

		if !h.check(c.Request().Context(), &logger, checks, "redis", ping) {
			isHealthy = false
		}
	}

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthCheckError(map[string]any{
			"check_type":        "overall",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// check runs one ping under the configured timeout and records its result
// in checks.
func (h *HealthHandler) check(
	parent context.Context,
	logger *zerolog.Logger,
	checks map[string]any,
	name string,
	ping func(context.Context) error,
) bool {
	ctx, cancel := context.WithTimeout(parent, h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	checkStart := time.Now()
	err := ping(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		checks[name] = map[string]any{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msgf("%s health check failed", name)

		h.recordHealthCheckError(map[string]any{
			"check_type":       name,
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return false
	}

	checks[name] = map[string]any{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}

	return true
}

func (h *HealthHandler) recordHealthCheckError(attrs map[string]any) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	attrs["operation"] = "health_check"
	app.RecordCustomEvent("HealthCheckError", attrs)
}
