package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"railops/internal/platform/metrics"
)

// Metrics records request counts and latency against the chi route pattern
// so path parameters do not explode label cardinality.
func Metrics(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			route := r.URL.Path
			if ctx := chi.RouteContext(r.Context()); ctx != nil {
				if pattern := ctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			collector.Record(r.Method, route, recorder.status, time.Since(start))
		})
	}
}
