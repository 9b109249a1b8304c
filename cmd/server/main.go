// Package main implements the entry point for the Lio API server, which
// keeps each device's daily streak and serves personalized affirmations.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/lioapp/lio-api/internal/app"
	"github.com/lioapp/lio-api/internal/config"
	"github.com/lioapp/lio-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lio-api: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, wires the application and serves HTTP until
// SIGINT or SIGTERM.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server, cfg.Observability)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer sentry.Flush(2 * time.Second)

	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("storage", cfg.Database.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, l)
	if err != nil {
		l.Error("failed to initialize application", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			l.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	return serve(ctx, cfg.Server, newRouter(a), l)
}
