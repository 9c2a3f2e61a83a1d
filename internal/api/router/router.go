package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/clinicwave/agenda-ops/internal/http/handlers"
	httpmiddleware "github.com/clinicwave/agenda-ops/internal/http/middleware"
	"github.com/clinicwave/agenda-ops/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger          *logging.Logger
	AgendaHandler   *handlers.AgendaHandler
	CampaignHandler *handlers.CampaignHandler
	MetricsHandler  http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/agenda", cfg.AgendaHandler.GetAgenda)
		api.Route("/campaign", func(c chi.Router) {
			c.Post("/runs", cfg.CampaignHandler.StartRun)
			c.Get("/runs/current", cfg.CampaignHandler.CurrentRun)
		})
	})

	return r
}
