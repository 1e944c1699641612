package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	domaingames "github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/relevance"
	"github.com/preston-bernstein/venue-tv-service/internal/logging"
	"github.com/preston-bernstein/venue-tv-service/internal/store"
	"github.com/preston-bernstein/venue-tv-service/internal/timeutil"
)

type gamesResponse struct {
	Date      string             `json:"date"`
	DisplayID string             `json:"displayId,omitempty"`
	Games     []relevance.Scored `json:"games"`
}

// Games returns every current game scored and ranked. ?displayId= scores
// from that display's point of view; ?league= filters the result.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	displayID := r.URL.Query().Get("displayId")
	league := domaingames.League(r.URL.Query().Get("league")).Normalize()
	if league != "" && !league.IsKnown() {
		writeError(w, r, http.StatusBadRequest, "unknown league", logger)
		return
	}

	ranked, err := h.assignments.RankedGames(r.Context(), displayID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "display not found", logger)
		return
	}
	if err != nil {
		logging.Error(logger, "rank games failed", err)
		writeError(w, r, http.StatusInternalServerError, "failed to rank games", logger)
		return
	}

	if league != "" {
		filtered := make([]relevance.Scored, 0, len(ranked))
		for _, sc := range ranked {
			if sc.Game.League.Normalize() == league {
				filtered = append(filtered, sc)
			}
		}
		ranked = filtered
	}

	logging.Info(logger, "served ranked games", logging.FieldCount, len(ranked), logging.FieldDisplayID, displayID)
	writeJSON(w, http.StatusOK, gamesResponse{
		Date:      timeutil.FormatDate(h.now().UTC()),
		DisplayID: displayID,
		Games:     ranked,
	}, logger)
}

// GameByID returns a specific game if present.
func (h *Handler) GameByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	game, ok := h.games.GameByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, game, h.logger)
}
