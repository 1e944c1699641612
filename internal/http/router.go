package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/venue-tv-service/internal/http/handlers"
	"github.com/preston-bernstein/venue-tv-service/internal/http/middleware"
	"github.com/preston-bernstein/venue-tv-service/internal/metrics"
)

// NewRouter registers HTTP routes on a chi router. admin may be nil.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(logger, recorder))
	r.Use(chimiddleware.Recoverer)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Get("/games", h.Games)
	r.Get("/games/{id}", h.GameByID)
	r.Get("/teams", h.Teams)
	r.Get("/markets", h.Markets)
	r.Get("/leagues", h.Leagues)

	r.Route("/displays", func(r chi.Router) {
		r.Get("/", h.Displays)
		r.Get("/{id}", h.DisplayByID)
		r.Post("/{id}/lock", h.LockDisplay)
		r.Delete("/{id}/lock", h.UnlockDisplay)
		r.Post("/{id}/assign", h.AssignDisplay)
	})
	r.Get("/locks", h.Locks)

	r.Get("/preferences", h.Preferences)
	r.Put("/preferences", h.UpdatePreferences)
	r.Get("/recommendations", h.Recommendations)
	r.Get("/reports", h.Report)

	if admin != nil {
		r.Post("/admin/cycle", admin.RunCycle)
	}
	return r
}
