package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-assistant/internal/infrastructure/database"
)

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.NewPostgresDB(a.cfg, a.logger)
			if err != nil {
				return err
			}
			defer database.CloseDB(db)

			n, err := database.MigrateUp(db)
			if err != nil {
				return fmt.Errorf("migrate up: %w", err)
			}
			a.logger.Info("migrations applied", zap.Int("count", n))
			return nil
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.NewPostgresDB(a.cfg, a.logger)
			if err != nil {
				return err
			}
			defer database.CloseDB(db)

			n, err := database.MigrateDown(db, steps)
			if err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}
			a.logger.Info("migrations rolled back", zap.Int("count", n))
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back (0: all)")

	cmd.AddCommand(up, down)
	return cmd
}
