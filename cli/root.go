// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/store"
)

// NewRootCmd builds the polls command tree. Configuration flags are shared by
// every subcommand and resolved once before any of them runs.
func NewRootCmd() *cobra.Command {
	cfg := &cliparse.Config{}

	rootCmd := &cobra.Command{
		Use:   "polls",
		Short: "Polls - publish questions and list the latest ones",
		Long: `Polls serves an index of published questions and a page per question.
Questions can be scheduled for the future; they stay hidden until their
publication date.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := cliparse.Resolve(*cfg)
			if err != nil {
				return err
			}
			*cfg = resolved
			setupLogging(*cfg, cmd.ErrOrStderr())
			return nil
		},
	}

	cliparse.BindFlags(rootCmd.PersistentFlags(), cfg)

	rootCmd.AddCommand(ServeCmd(cfg))
	rootCmd.AddCommand(MigrateCmd(cfg))
	rootCmd.AddCommand(QuestionCmd(cfg))

	return rootCmd
}

// setupLogging installs the default slog logger for cfg
func setupLogging(cfg cliparse.Config, w io.Writer) {
	level, err := cliparse.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// openStore connects to the configured database and makes sure the schema
// exists. The returned *sql.DB must be closed by the caller.
func openStore(ctx context.Context, cfg cliparse.Config) (*store.SQLStore, *sql.DB, error) {
	conn, dialect, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	if err := db.CreateSchema(ctx, conn, dialect); err != nil {
		conn.Close()
		return nil, nil, err
	}

	return store.NewSQLStore(conn, dialect), conn, nil
}

// MigrateCmd creates the database schema
func MigrateCmd(cfg *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, conn, err := openStore(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			slog.Info("Database schema ready", "type", cfg.DatabaseType)
			fmt.Fprintln(cmd.OutOrStdout(), "Database schema ready")
			return nil
		},
	}
}
