// Package memstore is an in-memory stand-in for repository.ItemRepository.
//
// It keeps the same observable contract (generated ids, affected-row counts,
// repository.ErrItemNotFound) so handler and service tests run without
// PostgreSQL.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/model"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/repository"
)

// ErrShouldFail is returned by every call once Fail is set.
var ErrShouldFail = errors.New("memstore: forced failure")

type Store struct {
	mu    sync.Mutex
	rows  map[int64]model.Item
	next  int64
	calls int

	// Fail makes every call return ErrShouldFail.
	Fail bool
}

func New() *Store {
	return &Store{rows: make(map[int64]model.Item), next: 1}
}

// Calls reports how many store calls were made.
func (s *Store) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}

// Len reports the number of stored rows.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.rows)
}

// Preload inserts n items named item-1..item-n directly.
func (s *Store) Preload(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 1; i <= n; i++ {
		s.rows[s.next] = model.Item{ID: s.next, Item: fmt.Sprintf("item-%d", i), Quantity: i}
		s.next++
	}
}

func (s *Store) begin() error {
	s.calls++

	if s.Fail {
		return ErrShouldFail
	}

	return nil
}

func (s *Store) ListItems(_ context.Context) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.begin(); err != nil {
		return nil, err
	}

	items := make([]model.Item, 0, len(s.rows))

	for _, row := range s.rows {
		row.Description = nil
		items = append(items, row)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items, nil
}

func (s *Store) GetItem(_ context.Context, id int64) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.begin(); err != nil {
		return nil, err
	}

	row, ok := s.rows[id]
	if !ok {
		return nil, fmt.Errorf("id %d: %w", id, repository.ErrItemNotFound)
	}

	if row.Description != nil {
		desc := *row.Description
		row.Description = &desc
	}

	return &row, nil
}

func (s *Store) CreateItem(_ context.Context, name string, quantity int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.begin(); err != nil {
		return 0, err
	}

	id := s.next
	s.rows[id] = model.Item{ID: id, Item: name, Quantity: quantity}
	s.next++

	return id, nil
}

func (s *Store) UpdateItem(_ context.Context, id int64, name string, quantity int, description *string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.begin(); err != nil {
		return 0, err
	}

	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}

	var desc *string
	if description != nil {
		d := *description
		desc = &d
	}

	s.rows[id] = model.Item{ID: id, Item: name, Quantity: quantity, Description: desc}

	return 1, nil
}

func (s *Store) DeleteItem(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.begin(); err != nil {
		return 0, err
	}

	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}

	delete(s.rows, id)

	return 1, nil
}
