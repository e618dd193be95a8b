package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/headpress"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve post pages",
	Long: `serve renders /posts/{slug}/ pages from WORDPRESS_GRAPHQL_ENDPOINT, or
from the SQLite mirror at DATABASE_PATH when no endpoint is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(v)
		if err != nil {
			return err
		}
		cfg := siteConfig(v)
		app := headpress.New(cfg, headpress.DefaultViews(), headpress.WithLogger(logger))
		defer app.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- app.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.Echo.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("shutdown", zap.Error(err))
			return err
		}
		return <-errCh
	},
}
