package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lioapp/lio-api/internal/platform/sqlstore"
	"github.com/lioapp/lio-api/internal/platform/storage"
)

var errNoSchema = errors.New("the memory driver has no schema to migrate")

// MigrateUpCmd applies pending migrations.
type MigrateUpCmd struct{}

func (c *MigrateUpCmd) Run(ctx *Context) error {
	return withDB(ctx, func(db *sqlx.DB, driver string) error {
		if err := sqlstore.MigrateUp(db.DB, driver, ctx.Logger); err != nil {
			return err
		}
		return reportVersion(ctx, db, driver)
	})
}

// MigrateDownCmd rolls back the most recent migration.
type MigrateDownCmd struct{}

func (c *MigrateDownCmd) Run(ctx *Context) error {
	return withDB(ctx, func(db *sqlx.DB, driver string) error {
		if err := sqlstore.MigrateDown(db.DB, driver, ctx.Logger); err != nil {
			return err
		}
		return reportVersion(ctx, db, driver)
	})
}

// MigrateStatusCmd prints the state of every migration.
type MigrateStatusCmd struct{}

func (c *MigrateStatusCmd) Run(ctx *Context) error {
	return withDB(ctx, func(db *sqlx.DB, driver string) error {
		if err := sqlstore.MigrationStatus(db.DB, driver); err != nil {
			return err
		}
		return reportVersion(ctx, db, driver)
	})
}

func withDB(ctx *Context, fn func(db *sqlx.DB, driver string) error) error {
	driver := ctx.Config.Database.Driver
	if driver == storage.DriverMemory {
		return errNoSchema
	}

	db, err := sqlstore.Open(driver, ctx.Config.Database.URL, ctx.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			ctx.Logger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	return fn(db, driver)
}

func reportVersion(ctx *Context, db *sqlx.DB, driver string) error {
	version, err := sqlstore.Version(db.DB, driver)
	if err != nil {
		return err
	}
	if ctx.JSON {
		return writeJSON(ctx.Out, map[string]int64{"version": version})
	}
	_, err = fmt.Fprintf(ctx.Out, "schema version %d\n", version)
	return err
}
