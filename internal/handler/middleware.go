package handler

import (
	"net/http"
	"time"

	"github.com/seuusuario/servebox/internal/settings"
)

// limitConcurrency admits at most as many in-flight requests as the
// configured thread count; the rest queue on the semaphore.
func (h *Handler) limitConcurrency(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.sem <- struct{}{}
		defer func() { <-h.sem }()
		next.ServeHTTP(w, r)
	})
}

// watchLatency flags requests that blow the --max-latency budget. The budget
// is observational: the request still completes.
func (h *Handler) watchLatency(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if h.maxLatency == settings.Unbounded {
			return
		}
		if elapsed := time.Since(start); elapsed > h.maxLatency {
			h.app.Logger.Warn("request over latency budget",
				"method", r.Method, "path", r.URL.Path,
				"elapsed", elapsed, "budget", h.maxLatency)
		}
	})
}

// noCache defeats client caching while in hit-refresh mode, so every hit
// observes the current state of the server.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
