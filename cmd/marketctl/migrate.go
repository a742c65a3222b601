package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/app"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
)

func newMigrateCmd(c *cli) *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the ledger tables in PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Database.InMemory() {
				return errors.New("database host is required")
			}

			schemaSQL, err := adapter.NewFileSystem().ReadFile(schemaPath)
			if err != nil {
				return fmt.Errorf("failed to read schema: %w", err)
			}

			db, err := app.OpenDB(c.cfg.Database, c.cfg.Debug)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return fmt.Errorf("failed to get underlying sql.DB: %w", err)
			}
			defer sqlDB.Close()

			// The schema is idempotent, every statement uses IF NOT EXISTS
			if err := db.WithContext(cmd.Context()).Exec(string(schemaSQL)).Error; err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}

			logger.InfoCtx(cmd.Context(), "Applied schema", zap.String("path", schemaPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "db/init_pg_db.sql", "path to the schema file")

	return cmd
}
