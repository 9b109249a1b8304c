package middleware

import (
	"log/slog"
	"net/http"

	"github.com/lioapp/lio-api/internal/api/shared"
	"github.com/lioapp/lio-api/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that gives every request a trace ID.
// The ID is echoed in the X-Trace-ID response header, and a logger carrying
// it is stored in the request context for handlers and services.
// Apply it early so later handlers see the trace ID.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)
			log.DebugContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
