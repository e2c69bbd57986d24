package router

import (
	"github.com/labstack/echo/v4"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/handler"
)

func registerItemRoutes(r *echo.Echo, h *handler.Handlers) {
	stuff := r.Group("/stuff")

	stuff.GET("", h.Items.List())
	stuff.POST("", h.Items.Create())

	stuff.GET("/item/:id", h.Items.Detail())
	stuff.POST("/item/:id", h.Items.Update())
	stuff.GET("/item/:id/delete", h.Items.Delete())
}
