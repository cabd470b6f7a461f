// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/router"
	"github.com/danielhkuo/polls/views"
)

const shutdownTimeout = 5 * time.Second

// ServeCmd runs the HTTP server until interrupted
func ServeCmd(cfg *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, *cfg)
		},
	}
}

// newHandler opens the store and builds the routed handler for cfg.
// close releases the database connection.
func newHandler(ctx context.Context, cfg cliparse.Config) (handler http.Handler, closeDB func() error, err error) {
	st, conn, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Database schema ready")

	renderer, err := views.NewTemplateRenderer()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	return router.NewRouter(st, renderer, router.Options{Now: time.Now}), conn.Close, nil
}

func serve(ctx context.Context, cfg cliparse.Config) error {
	handler, closeDB, err := newHandler(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	server := &http.Server{
		Handler:           handler,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		return err
	}
	slog.Info("Server closed")
	return nil
}
