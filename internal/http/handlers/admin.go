package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/venue-tv-service/internal/http/requestutil"
	"github.com/preston-bernstein/venue-tv-service/internal/logging"
	"github.com/preston-bernstein/venue-tv-service/internal/reports"
)

// CycleRunner runs an auto-assign cycle on demand.
type CycleRunner interface {
	RunCycle(ctx context.Context) (reports.Cycle, error)
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	cycler CycleRunner
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token disables it.
func NewAdminHandler(cycler CycleRunner, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		cycler: cycler,
		token:  token,
		logger: logger,
	}
}

// RunCycle triggers an auto-assign cycle immediately.
// Guarded by ADMIN_TOKEN; returns 401 if missing or invalid.
func (h *AdminHandler) RunCycle(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	if h.cycler == nil {
		writeError(w, r, http.StatusServiceUnavailable, "cycle runner not configured", logger)
		return
	}

	cycle, err := h.cycler.RunCycle(r.Context())
	if err != nil {
		logging.Error(logger, "admin cycle failed", err)
		writeError(w, r, http.StatusInternalServerError, "cycle failed", logger)
		return
	}
	logging.Info(logger, "admin cycle complete",
		logging.FieldCycleID, cycle.ID,
		logging.FieldCount, len(cycle.Decisions),
	)
	writeJSON(w, http.StatusOK, cycle, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
