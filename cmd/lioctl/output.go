package main

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/lioapp/lio-api/internal/app"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// withApp wires the services for one command and closes storage afterwards.
func withApp(ctx *Context, fn func(a *app.App) error) error {
	a, err := app.New(ctx, ctx.Config, ctx.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			ctx.Logger.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()
	return fn(a)
}
