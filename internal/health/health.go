// Package health exposes liveness and readiness probes.
package health

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// SessionCounter reports live sessions for /readyz.
type SessionCounter interface {
	Len() int
}

// RegisterRoutes adds /healthz only.
func RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/healthz", healthz).Methods(http.MethodGet, http.MethodHead)
}

// RegisterRoutesWithSessions adds /healthz and /readyz.
func RegisterRoutesWithSessions(r *mux.Router, s SessionCounter) {
	RegisterRoutes(r)
	r.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ready", "sessions": s.Len()})
	}).Methods(http.MethodGet, http.MethodHead)
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
