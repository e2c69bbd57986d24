// Command inventory runs the stuff inventory web application.
//
//	inventory serve     migrate, then serve HTTP until SIGINT/SIGTERM
//	inventory migrate   apply embedded schema migrations
//	inventory seed      migrate, then replace the stuff table with sample rows
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "inventory",
		Short:         "Inventory of stuff: list, view, add, edit and delete items",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSeedCommand(),
	)

	return root
}
