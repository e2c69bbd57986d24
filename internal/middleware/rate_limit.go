package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/errs"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/server"
)

// rateLimitExpiry is how long an idle client's bucket is kept.
const rateLimitExpiry = 3 * time.Minute

type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Enabled reports whether server.rate_limit is set.
func (r *RateLimitMiddleware) Enabled() bool {
	return r.server.Config.Server.RateLimit > 0
}

// Limit returns a per-IP token bucket limiter allowing server.rate_limit
// requests per second (burst of the same size, at least 1). Denied requests
// get a 429.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	limit := r.server.Config.Server.RateLimit

	burst := int(limit)
	if burst < 1 {
		burst = 1
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limit),
		Burst:     burst,
		ExpiresIn: rateLimitExpiry,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.ErrForbidden.WithInternal(err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().Str("identifier", identifier).Msg("rate limit exceeded")

			return errs.NewTooManyRequestsError("Too many requests, slow down")
		},
	})
}

// RecordRateLimitHit sends a RateLimitHit custom event to New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}
