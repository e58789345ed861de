package handler

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/seuusuario/servebox/internal/app"
)

type Handler struct {
	app        *app.App
	maxLatency time.Duration
	sem        chan struct{}
}

// New builds the HTTP surface. threads caps how many requests are handled at
// once; maxLatency is the budget above which a request gets flagged in the
// logs (settings.Unbounded disables the check).
func New(a *app.App, threads int, maxLatency time.Duration) *Handler {
	if threads < 1 {
		threads = 1
	}
	return &Handler{
		app:        a,
		maxLatency: maxLatency,
		sem:        make(chan struct{}, threads),
	}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				h.app.Logger.Error("panic recovered", "panic", fmt.Sprint(rec), "stack", string(debug.Stack()))
				h.operationError(w, "unexpected error; check the logs", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
