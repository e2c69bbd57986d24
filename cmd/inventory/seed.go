package main

import (
	"github.com/spf13/cobra"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/database"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset the stuff table to the sample inventory",
		Long:  "Applies migrations, then truncates stuff and inserts the sample items in one transaction.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := contextOrBackground(cmd.Context())

			cfg, log, loggerService, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			if err := database.Migrate(ctx, log, cfg); err != nil {
				return err
			}

			db, err := database.New(cfg, log, loggerService)
			if err != nil {
				return err
			}
			defer db.Close()

			return database.Seed(ctx, db.Pool, log, database.SampleItems)
		},
	}
}
