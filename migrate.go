package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/config"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/database"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Long:  `Connect to the configured database, apply every pending schema migration and exit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := cfg()

			cmd.Println("Connecting to database...")
			db, err := database.Connect(cmd.Context(), c.DatabaseDriver, c.DatabaseDSN, c.Retry(), nil)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			cmd.Println("Running migrations...")
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("failed to apply database migrations: %w", err)
			}

			cmd.Println("Migrations completed successfully")
			return nil
		},
	}
}
