package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/accounts-backend/internal/config"
	"github.com/baharkarakas/accounts-backend/internal/db"
	"github.com/baharkarakas/accounts-backend/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			slog.SetDefault(logger.New(cfg.Env))

			pool, err := db.NewPool(cmd.Context(), cfg.DatabaseURL, cfg.DBMaxConns)
			if err != nil {
				return fmt.Errorf("db connect: %w", err)
			}
			defer pool.Close()
			return db.RunMigrations(cmd.Context(), pool)
		},
	}
}
