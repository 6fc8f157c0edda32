package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/oremod/oremod/backend/internal/service"
	"github.com/oremod/oremod/shared/config"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping() error
}

type Handler struct {
	thread *service.Thread
	facet  *service.Facet
	health HealthChecker
	cfg    *config.Config
}

func New(thread *service.Thread, facet *service.Facet, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{thread, facet, health, cfg}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Print(err.Error())
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
}
