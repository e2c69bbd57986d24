package handler

import (
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/server"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/service"
)

type Handlers struct {
	Health *HealthHandler // Health serves GET /status.
	Items  *ItemHandler   // Items serves the /stuff pages and forms.
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Items:  NewItemHandler(s, services.Items),
	}
}
