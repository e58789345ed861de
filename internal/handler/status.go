package handler

import (
	"net/http"
	"os"
	"time"

	"github.com/seuusuario/servebox/internal/settings"
	"github.com/seuusuario/servebox/internal/system"
)

// GET /status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	snap, err := system.Gather(r.Context())
	if err != nil {
		h.operationError(w, "could not gather system snapshot", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"pid":    os.Getpid(),
		"uptime": time.Since(h.app.Started).Round(time.Second).String(),
		"system": snap,
	})
}

// GET /config
func (h *Handler) Config(w http.ResponseWriter, _ *http.Request) {
	st := h.app.Settings

	threads, err := st.Threads()
	if err != nil {
		h.operationError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	lifetime, err := st.Lifetime()
	if err != nil {
		h.operationError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	latency, err := st.MaxLatency()
	if err != nil {
		h.operationError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"daemon":      st.IsDaemon(),
		"hit_refresh": st.HitRefresh(),
		"threads":     threads,
		"lifetime":    durationView(lifetime),
		"max_latency": durationView(latency),
	})
}

func durationView(d time.Duration) string {
	if d == settings.Unbounded {
		return "unbounded"
	}
	return d.String()
}
