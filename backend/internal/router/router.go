package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oremod/oremod/backend/internal/handler"
	"github.com/oremod/oremod/shared/config"
	mw "github.com/oremod/oremod/shared/middleware"
	"github.com/oremod/oremod/shared/middleware/metrics"
)

// New creates and configures the service router with all the routes.
func New(h *handler.Handler, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.RequestId)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	// CORS for the moderation frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-Id"},
	}))

	r.Get("/healthz", h.Health)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/thread/{thread}", h.GetThread)
		r.Get("/threads", h.GetThreads)
		r.Post("/threads", h.GetThreadsBatch)
		r.Get("/versions/facets", h.GetVersionFacets)
	})

	// wildcard OPTIONS handler to avoid 404s for preflight requests
	r.MethodFunc("OPTIONS", "/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
