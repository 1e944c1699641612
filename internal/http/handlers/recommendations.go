package handlers

import (
	"net/http"

	"github.com/preston-bernstein/venue-tv-service/internal/logging"
)

// Recommendations proposes an event for each unlocked display.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	props, err := h.assignments.Recommendations(r.Context())
	if err != nil {
		logging.Error(logger, "recommendations failed", err)
		writeError(w, r, http.StatusInternalServerError, "failed to build recommendations", logger)
		return
	}
	writeJSON(w, http.StatusOK, props, logger)
}
