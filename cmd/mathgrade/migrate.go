package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/mathgrade/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied"); err != nil {
				return fmt.Errorf("failed to write to stdout: %w", err)
			}
			return nil
		},
	}
}
