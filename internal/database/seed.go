package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Beginner starts a transaction. *pgxpool.Pool satisfies it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// SampleItem is one row written by Seed.
type SampleItem struct {
	Item        string
	Quantity    int
	Description *string
}

func text(s string) *string {
	return &s
}

// SampleItems is the data set Seed restores.
var SampleItems = []SampleItem{
	{Item: "Widgets", Quantity: 5, Description: text("Small, round and shiny")},
	{Item: "Gadgets", Quantity: 12, Description: text("Spare parts for widgets")},
	{Item: "Sprockets", Quantity: 40},
	{Item: "Gizmos", Quantity: 1, Description: text("Last one, handle with care")},
}

const (
	truncateStuffSQL = `TRUNCATE TABLE stuff RESTART IDENTITY`
	seedItemSQL      = `INSERT INTO stuff (item, quantity, description) VALUES ($1, $2, $3)`
)

// Seed empties the stuff table, resets its id sequence and inserts items,
// all in one transaction. It is run by hand, never from request handling.
func Seed(ctx context.Context, db Beginner, logger *zerolog.Logger, items []SampleItem) error {
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, truncateStuffSQL); err != nil {
			return fmt.Errorf("truncating stuff: %w", err)
		}

		for _, item := range items {
			if _, err := tx.Exec(ctx, seedItemSQL, item.Item, item.Quantity, item.Description); err != nil {
				return fmt.Errorf("inserting %q: %w", item.Item, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Int("items", len(items)).Msg("seeded sample data")

	return nil
}
