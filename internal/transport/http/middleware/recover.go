package middleware

import (
	"log/slog"
	"net/http"

	"railops/internal/transport/http/api"
)

// Recoverer converts a handler panic into a generic 500 envelope. A fault
// in one request must never take the process, and the store's remaining
// entries, down with it.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("handler panic", "path", r.URL.Path, "panic", rec, "requestId", GetRequestID(r.Context()))
				api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", GetRequestID(r.Context()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
