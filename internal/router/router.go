// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and the routes, mapping
// specific paths to their corresponding handlers
package router

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/handler"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/middleware"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/server"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/view"
)

// NewRouter builds the echo instance with the global middleware chain, the
// error handler, the HTML renderer and every route.
//
// Order matters: RequestID and the New Relic transaction must exist before
// ContextEnhancer builds the request logger, which RequestLogger then uses.
func NewRouter(s *server.Server, h *handler.Handlers) (*echo.Echo, error) {
	middlewares := middleware.NewMiddlewares(s)

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler
	router.Renderer = renderer

	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limit())
	}

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerItemRoutes(router, h)

	return router, nil
}
