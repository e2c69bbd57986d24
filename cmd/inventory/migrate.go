package main

import (
	"github.com/spf13/cobra"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, loggerService, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			return database.Migrate(contextOrBackground(cmd.Context()), log, cfg)
		},
	}
}
