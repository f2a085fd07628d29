package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/boxdrop-backend/internal/adapter/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		return migrateUp(cmd.Context(), cfg.Database.DSN, logger)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		return withMigrator(cmd.Context(), cfg.Database.DSN, func(ctx context.Context, p *goose.Provider) error {
			res, err := p.Down(ctx)
			if err != nil {
				return fmt.Errorf("goose down: %w", err)
			}
			logger.InfoContext(ctx, "migration rolled back",
				slog.Int64("version", res.Source.Version),
				slog.String("file", res.Source.Path),
			)
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print applied and pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		return withMigrator(cmd.Context(), cfg.Database.DSN, func(ctx context.Context, p *goose.Provider) error {
			statuses, err := p.Status(ctx)
			if err != nil {
				return fmt.Errorf("goose status: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, s := range statuses {
				applied := "pending"
				if s.State == goose.StateApplied {
					applied = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(out, "%-6d %-40s %s\n", s.Source.Version, s.Source.Path, applied)
			}
			return nil
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}

func migrateUp(ctx context.Context, dsn string, logger *slog.Logger) error {
	db, err := postgres.OpenDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return postgres.MigrateUp(ctx, db, logger)
}

func withMigrator(ctx context.Context, dsn string, fn func(context.Context, *goose.Provider) error) error {
	db, err := postgres.OpenDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := postgres.NewMigrator(db)
	if err != nil {
		return err
	}
	return fn(ctx, provider)
}
