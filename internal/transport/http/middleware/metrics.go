package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Recorder receives one observation per request.
type Recorder interface {
	Record(route string, status int, duration time.Duration)
}

// Metrics records requests under their chi route pattern so path parameters do not fan out.
func Metrics(recorder Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := record(w)
			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			recorder.Record(r.Method+" "+route, rec.status, time.Since(start))
		})
	}
}
