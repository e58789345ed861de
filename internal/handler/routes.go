package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(h.recoverer)
	r.Use(h.limitConcurrency)
	r.Use(h.watchLatency)
	if h.app.Settings.HitRefresh() {
		r.Use(noCache)
	}

	r.Get("/health", h.Health)
	r.Get("/status", h.Status)
	r.Get("/config", h.Config)

	return r
}
