package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	appdisplays "github.com/preston-bernstein/venue-tv-service/internal/app/displays"
	"github.com/preston-bernstein/venue-tv-service/internal/logging"
	"github.com/preston-bernstein/venue-tv-service/internal/store"
)

type lockRequest struct {
	DurationMinutes *int `json:"durationMinutes"`
}

type assignRequest struct {
	GameID string `json:"gameId"`
}

// Displays lists all displays.
func (h *Handler) Displays(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	list, err := h.displays.List(r.Context())
	if err != nil {
		logging.Error(logger, "list displays failed", err)
		writeError(w, r, http.StatusInternalServerError, "failed to list displays", logger)
		return
	}
	writeJSON(w, http.StatusOK, list, logger)
}

// DisplayByID returns one display.
func (h *Handler) DisplayByID(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	d, err := h.displays.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDisplayError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, d, logger)
}

// LockDisplay applies a manual lock; durationMinutes 0 clears it.
func (h *Handler) LockDisplay(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req lockRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return
	}
	if req.DurationMinutes == nil {
		writeError(w, r, http.StatusBadRequest, "durationMinutes required", logger)
		return
	}

	id := chi.URLParam(r, "id")
	d, err := h.displays.Lock(r.Context(), id, *req.DurationMinutes)
	if err != nil {
		h.writeDisplayError(w, r, err, logger)
		return
	}
	logging.Info(logger, "display lock updated",
		logging.FieldDisplayID, id,
		"duration_minutes", *req.DurationMinutes,
	)
	writeJSON(w, http.StatusOK, d, logger)
}

// UnlockDisplay clears the manual lock.
func (h *Handler) UnlockDisplay(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	id := chi.URLParam(r, "id")
	d, err := h.displays.Unlock(r.Context(), id)
	if err != nil {
		h.writeDisplayError(w, r, err, logger)
		return
	}
	logging.Info(logger, "display unlocked", logging.FieldDisplayID, id)
	writeJSON(w, http.StatusOK, d, logger)
}

// AssignDisplay applies an operator-chosen game to a display.
func (h *Handler) AssignDisplay(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req assignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return
	}
	req.GameID = strings.TrimSpace(req.GameID)
	if req.GameID == "" {
		writeError(w, r, http.StatusBadRequest, "gameId required", logger)
		return
	}

	id := chi.URLParam(r, "id")
	d, err := h.displays.Assign(r.Context(), id, req.GameID)
	if err != nil {
		h.writeDisplayError(w, r, err, logger)
		return
	}
	logging.Info(logger, "display assigned",
		logging.FieldDisplayID, id,
		logging.FieldEventID, req.GameID,
	)
	writeJSON(w, http.StatusOK, d, logger)
}

// Locks lists active manual locks.
func (h *Handler) Locks(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	locks, err := h.displays.ActiveLocks(r.Context())
	if err != nil {
		logging.Error(logger, "list locks failed", err)
		writeError(w, r, http.StatusInternalServerError, "failed to list locks", logger)
		return
	}
	writeJSON(w, http.StatusOK, locks, logger)
}

func (h *Handler) writeDisplayError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "display not found", logger)
	case errors.Is(err, appdisplays.ErrUnknownGame):
		writeError(w, r, http.StatusNotFound, "game not found", logger)
	case errors.Is(err, appdisplays.ErrInvalidDuration):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	default:
		logging.Error(logger, "display operation failed", err)
		writeError(w, r, http.StatusInternalServerError, "display operation failed", logger)
	}
}
