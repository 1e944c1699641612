package handlers

import (
	"net/http"

	domaingames "github.com/preston-bernstein/venue-tv-service/internal/domain/games"
)

// Teams lists catalog teams, optionally filtered by ?league=.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	league := domaingames.League(r.URL.Query().Get("league")).Normalize()
	if league != "" && !league.IsKnown() {
		writeError(w, r, http.StatusBadRequest, "unknown league", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.teams.Teams(string(league)), h.logger)
}

// Markets lists the media markets venues can favor.
func (h *Handler) Markets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.teams.Markets(), h.logger)
}

// Leagues lists the league catalog.
func (h *Handler) Leagues(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.teams.Leagues(), h.logger)
}
