package httpadapter

import (
	"net/http"
	"time"
)

// handleStatsOverview returns the dashboard figures. The optional `at`
// query parameter (RFC3339) evaluates them at another instant; it defaults
// to now. Invalid timestamps result in HTTP 400.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	at, ok := h.instant(w, r)
	if !ok {
		return
	}
	ov, err := h.admin.Overview(r.Context(), at)
	if err != nil {
		h.writeError(w, r, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, ov)
}

// handleSchedule lists campaign durations and remaining time, evaluated
// like handleStatsOverview.
func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	at, ok := h.instant(w, r)
	if !ok {
		return
	}
	entries, err := h.admin.Schedule(r.Context(), at)
	if err != nil {
		h.writeError(w, r, "schedule", err)
		return
	}
	h.writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) instant(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	s := r.URL.Query().Get("at")
	if s == "" {
		return h.now(), true
	}
	at, err := time.Parse(time.RFC3339, s)
	if err != nil {
		http.Error(w, "invalid 'at' timestamp", http.StatusBadRequest)
		return time.Time{}, false
	}
	return at, true
}
