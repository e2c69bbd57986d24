package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/errs"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/lib/job"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/model"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/repository"
)

// ItemStore is the data access the item service needs.
// *repository.ItemRepository and memstore.Store satisfy it.
type ItemStore interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	GetItem(ctx context.Context, id int64) (*model.Item, error)
	CreateItem(ctx context.Context, name string, quantity int) (int64, error)
	UpdateItem(ctx context.Context, id int64, name string, quantity int, description *string) (int64, error)
	DeleteItem(ctx context.Context, id int64) (int64, error)
}

// ItemNotifier receives an event after every successful write.
type ItemNotifier interface {
	NotifyItemChanged(ctx context.Context, p job.ItemChangedPayload) error
}

var itemNotFoundCode = "ITEM_NOT_FOUND"

type ItemService struct {
	store    ItemStore
	notifier ItemNotifier
	logger   *zerolog.Logger
}

// NewItemService wires the service. notifier may be nil.
func NewItemService(store ItemStore, notifier ItemNotifier, logger *zerolog.Logger) *ItemService {
	return &ItemService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// ListItems returns every row, without descriptions.
func (s *ItemService) ListItems(ctx context.Context) ([]model.Item, error) {
	return s.store.ListItems(ctx)
}

// GetItem returns the item or a 404 naming the id.
func (s *ItemService) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	item, err := s.store.GetItem(ctx, id)
	if errors.Is(err, repository.ErrItemNotFound) {
		return nil, errs.NewNotFoundError(fmt.Sprintf("No item found with id = %d", id), true, &itemNotFoundCode)
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}

// CreateItem inserts a row with a NULL description and returns its id.
func (s *ItemService) CreateItem(ctx context.Context, name string, quantity int) (int64, error) {
	id, err := s.store.CreateItem(ctx, name, quantity)
	if err != nil {
		return 0, err
	}

	loggerFrom(ctx, s.logger).Info().Int64("item_id", id).Msg("item created")

	s.notify(ctx, job.ItemChangedPayload{Action: job.ActionCreated, ItemID: id, Item: name, Quantity: quantity})

	return id, nil
}

// UpdateItem overwrites all three columns with the submitted values.
// Updating a missing id is not an error.
func (s *ItemService) UpdateItem(ctx context.Context, id int64, name string, quantity int, description string) error {
	affected, err := s.store.UpdateItem(ctx, id, name, quantity, &description)
	if err != nil {
		return err
	}

	logger := loggerFrom(ctx, s.logger)
	if affected == 0 {
		logger.Warn().Int64("item_id", id).Msg("update matched no rows")
		return nil
	}

	logger.Info().Int64("item_id", id).Msg("item updated")

	s.notify(ctx, job.ItemChangedPayload{Action: job.ActionUpdated, ItemID: id, Item: name, Quantity: quantity})

	return nil
}

// DeleteItem removes the row. Deleting a missing id is not an error.
func (s *ItemService) DeleteItem(ctx context.Context, id int64) error {
	affected, err := s.store.DeleteItem(ctx, id)
	if err != nil {
		return err
	}

	logger := loggerFrom(ctx, s.logger)
	if affected == 0 {
		logger.Warn().Int64("item_id", id).Msg("delete matched no rows")
		return nil
	}

	logger.Info().Int64("item_id", id).Msg("item deleted")

	s.notify(ctx, job.ItemChangedPayload{Action: job.ActionDeleted, ItemID: id})

	return nil
}

// notify never fails the write it follows.
func (s *ItemService) notify(ctx context.Context, p job.ItemChangedPayload) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.NotifyItemChanged(ctx, p); err != nil {
		loggerFrom(ctx, s.logger).Error().Err(err).
			Str("action", p.Action).
			Int64("item_id", p.ItemID).
			Msg("failed to enqueue item change notification")
	}
}
