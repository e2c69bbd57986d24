package repository

import (
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Items *ItemRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Items: NewItemRepository(s.DB.Pool),
	}
}
