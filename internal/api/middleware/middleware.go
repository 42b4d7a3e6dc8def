// Package middleware assembles the HTTP middleware used by the JSON API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/dicegame-go/internal/api/apierr"
	"github.com/mcoot/dicegame-go/internal/metrics"
	"github.com/mcoot/dicegame-go/internal/middleware"
)

// Standard returns the middleware applied to every API route, outermost first.
// Request IDs are assigned before anything logs so every entry carries one.
func Standard(logger *slog.Logger, m *metrics.Metrics) []mux.MiddlewareFunc {
	return []mux.MiddlewareFunc{
		middleware.RequestID(),
		Recovery(logger),
		middleware.Logging(logger),
		m.Instrument,
	}
}

// Recovery turns panics into a JSON INTERNAL_ERROR response
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
