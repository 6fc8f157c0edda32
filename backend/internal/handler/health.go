package handler

import (
	"net/http"

	"github.com/oremod/oremod/shared/logger"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Ping(); err != nil {
		logger.Log.Error("health check failed", "error", err)
		http.Error(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
