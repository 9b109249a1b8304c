// Command lioctl operates on Lio storage directly: recording interactions,
// inspecting streaks, sampling affirmations and running schema migrations.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/lioapp/lio-api/internal/config"
	"github.com/lioapp/lio-api/internal/platform/logger"
)

// CLI is the lioctl command tree.
type CLI struct {
	JSON bool `help:"Print results as JSON." name:"json"`

	Streak struct {
		Record   StreakRecordCmd   `cmd:"" help:"Record today's interaction."`
		Show     StreakShowCmd     `cmd:"" help:"Show the current streak."`
		Week     StreakWeekCmd     `cmd:"" help:"Show the current week."`
		Calendar StreakCalendarCmd `cmd:"" help:"Show the full calendar."`
	} `cmd:"" help:"Inspect and update streaks."`

	Affirm AffirmCmd `cmd:"" help:"Generate affirmations."`

	Migrate struct {
		Up     MigrateUpCmd     `cmd:"" help:"Apply all pending migrations."`
		Down   MigrateDownCmd   `cmd:"" help:"Roll back the latest migration."`
		Status MigrateStatusCmd `cmd:"" help:"Show migration status."`
	} `cmd:"" help:"Manage the storage schema."`
}

// Context is passed to every command's Run method.
type Context struct {
	context.Context
	Config *config.Config
	Logger *slog.Logger
	Out    io.Writer
	JSON   bool
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("lioctl"),
		kong.Description("Administrative tool for the Lio streak and affirmation store."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	l, err := logger.Setup(cfg.Server, cfg.Observability)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = kctx.Run(&Context{Context: ctx, Config: cfg, Logger: l, Out: os.Stdout, JSON: cli.JSON})
	if err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
