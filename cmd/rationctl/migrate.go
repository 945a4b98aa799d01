package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rationshop-api/internal/infrastructure/postgres"
	"github.com/jhoicas/rationshop-api/pkg/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Apply the embedded SQL migrations to the PostgreSQL database.
The scripts are idempotent, so running it twice is safe.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		if cfg.DB.Driver == config.DriverMemory {
			return errors.New("migrate needs DB_DRIVER=postgres")
		}
		ctx := cmd.Context()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return fmt.Errorf("connect to PostgreSQL: %w", err)
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
		log.Info().Msg("database schema is up to date")
		return nil
	},
}
