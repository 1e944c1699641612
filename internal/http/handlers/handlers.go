package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/app/assignments"
	appdisplays "github.com/preston-bernstein/venue-tv-service/internal/app/displays"
	appgames "github.com/preston-bernstein/venue-tv-service/internal/app/games"
	appprefs "github.com/preston-bernstein/venue-tv-service/internal/app/preferences"
	appteams "github.com/preston-bernstein/venue-tv-service/internal/app/teams"
	"github.com/preston-bernstein/venue-tv-service/internal/logging"
	"github.com/preston-bernstein/venue-tv-service/internal/poller"
	"github.com/preston-bernstein/venue-tv-service/internal/reports"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps wires a Handler. Reports, Status and Store may be nil.
type Deps struct {
	Games       *appgames.Service
	Teams       *appteams.Service
	Displays    *appdisplays.Service
	Preferences *appprefs.Service
	Assignments *assignments.Service
	Reports     reports.Store
	Status      func() poller.Status
	Store       Pinger
	Logger      *slog.Logger
	Now         func() time.Time
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	games       *appgames.Service
	teams       *appteams.Service
	displays    *appdisplays.Service
	prefs       *appprefs.Service
	assignments *assignments.Service
	reports     reports.Store
	statusFn    func() poller.Status
	store       Pinger
	logger      *slog.Logger
	now         func() time.Time
}

// NewHandler constructs a Handler with defaults.
func NewHandler(deps Deps) *Handler {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Handler{
		games:       deps.Games,
		teams:       deps.Teams,
		displays:    deps.Displays,
		prefs:       deps.Preferences,
		assignments: deps.Assignments,
		reports:     deps.Reports,
		statusFn:    deps.Status,
		store:       deps.Store,
		logger:      deps.Logger,
		now:         deps.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			logging.Warn(h.logger, "store ping failed", "err", err)
			writeError(w, r, http.StatusServiceUnavailable, "store unavailable", h.logger)
			return
		}
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// NotFound is the JSON 404 for unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed is the JSON 405 for known routes.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
