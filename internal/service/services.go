package service

import (
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/lib/job"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/repository"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/server"
)

type Services struct {
	Items *ItemService
	Job   *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var notifier ItemNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Items: NewItemService(repos.Items, notifier, s.Logger),
		Job:   s.Job,
	}, nil
}
