package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/database"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/model"
)

// ErrItemNotFound is returned by GetItem when no row matches the id.
var ErrItemNotFound = errors.New("item not found")

// The five statements the application issues. Column order matters: rows
// are scanned positionally.
const (
	listItemsSQL  = `SELECT id, item, quantity FROM stuff`
	getItemSQL    = `SELECT id, item, quantity, description FROM stuff WHERE id = $1`
	deleteItemSQL = `DELETE FROM stuff WHERE id = $1`
	createItemSQL = `INSERT INTO stuff (item, quantity) VALUES ($1, $2) RETURNING id`
	updateItemSQL = `UPDATE stuff SET item = $1, quantity = $2, description = $3 WHERE id = $4`
)

// ItemRepository issues exactly one statement per call. Driver errors are
// returned unclassified, with a stack attached and the message unchanged.
type ItemRepository struct {
	db database.Executor
}

func NewItemRepository(db database.Executor) *ItemRepository {
	return &ItemRepository{db: db}
}

// ListItems returns every row with id, item and quantity, in store order.
func (r *ItemRepository) ListItems(ctx context.Context) ([]model.Item, error) {
	rows, err := r.db.Query(ctx, listItemsSQL)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	items := []model.Item{}

	for rows.Next() {
		var item model.Item

		if err := rows.Scan(&item.ID, &item.Item, &item.Quantity); err != nil {
			return nil, errors.WithStack(err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return items, nil
}

// GetItem returns the full row for id, or an error wrapping ErrItemNotFound.
func (r *ItemRepository) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	var item model.Item

	err := r.db.QueryRow(ctx, getItemSQL, id).
		Scan(&item.ID, &item.Item, &item.Quantity, &item.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("id %d: %w", id, ErrItemNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return &item, nil
}

// CreateItem inserts a row (description NULL) and returns the generated id.
func (r *ItemRepository) CreateItem(ctx context.Context, name string, quantity int) (int64, error) {
	var id int64

	if err := r.db.QueryRow(ctx, createItemSQL, name, quantity).Scan(&id); err != nil {
		return 0, errors.WithStack(err)
	}

	return id, nil
}

// UpdateItem overwrites item, quantity and description of row id and
// returns the number of affected rows.
func (r *ItemRepository) UpdateItem(ctx context.Context, id int64, name string, quantity int, description *string) (int64, error) {
	tag, err := r.db.Exec(ctx, updateItemSQL, name, quantity, description, id)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return tag.RowsAffected(), nil
}

// DeleteItem removes row id and returns the number of affected rows.
func (r *ItemRepository) DeleteItem(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteItemSQL, id)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return tag.RowsAffected(), nil
}
