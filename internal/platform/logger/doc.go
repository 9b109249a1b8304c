// Package logger configures the process-wide log/slog logger (JSON on stdout,
// optionally fanned out to Sentry for errors) and carries request-scoped
// loggers through context.Context.
package logger
