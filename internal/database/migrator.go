package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/config"
)

// The binary carries its own migrations.
//
//go:embed migrations/*.sql
var migrations embed.FS

// versionTable stores the applied migration version.
const versionTable = "schema_version"

// Migrate brings the schema up to the latest embedded migration using a
// single direct connection (not the pool).
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}
