package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/preston-bernstein/venue-tv-service/internal/logging"
	"github.com/preston-bernstein/venue-tv-service/internal/reports"
	"github.com/preston-bernstein/venue-tv-service/internal/timeutil"
)

// Report returns the latest cycle report for ?date= (default today, UTC).
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if h.reports == nil {
		writeError(w, r, http.StatusServiceUnavailable, "reports disabled", logger)
		return
	}
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = timeutil.FormatDate(h.now().UTC())
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", logger)
		return
	}

	cycle, err := h.reports.LoadCycle(date)
	if errors.Is(err, reports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "report not found", logger)
		return
	}
	if err != nil {
		logging.Error(logger, "load report failed", err, logging.FieldDate, date)
		writeError(w, r, http.StatusInternalServerError, "failed to load report", logger)
		return
	}
	writeJSON(w, http.StatusOK, cycle, logger)
}
