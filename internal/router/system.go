package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/handler"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/view"
)

func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/stuff")
	})

	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", view.Static())
}
