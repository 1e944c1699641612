package handlers

import (
	"errors"
	"net/http"

	domainprefs "github.com/preston-bernstein/venue-tv-service/internal/domain/preferences"
	"github.com/preston-bernstein/venue-tv-service/internal/logging"
)

// Preferences returns the effective venue preferences.
func (h *Handler) Preferences(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	prefs, err := h.prefs.Get(r.Context())
	if err != nil {
		logging.Error(logger, "load preferences failed", err)
		writeError(w, r, http.StatusInternalServerError, "failed to load preferences", logger)
		return
	}
	writeJSON(w, http.StatusOK, prefs, logger)
}

// UpdatePreferences replaces the venue preferences.
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req domainprefs.VenuePreferences
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return
	}

	saved, err := h.prefs.Update(r.Context(), req)
	if errors.Is(err, domainprefs.ErrInvalidLeague) {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}
	if err != nil {
		logging.Error(logger, "save preferences failed", err)
		writeError(w, r, http.StatusInternalServerError, "failed to save preferences", logger)
		return
	}
	logging.Info(logger, "preferences updated", "version", saved.Version)
	writeJSON(w, http.StatusOK, saved, logger)
}
