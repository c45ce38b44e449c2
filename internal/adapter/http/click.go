package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"docsuite-ads/internal/core/domain"
	"docsuite-ads/internal/core/port"
)

// handleAdClick counts a click on the {id} campaign and redirects the user
// to its link. The optional placement query parameter records which slot
// the click came from. Unknown placements result in HTTP 400. Unknown
// campaigns and internal errors are logged and answered with 404 to avoid
// leaking information.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing campaign id", http.StatusBadRequest)
		return
	}
	placement := domain.Placement(r.URL.Query().Get("placement"))
	link, err := h.ads.RegisterClick(r.Context(), id, placement)
	if errors.Is(err, port.ErrUnknownPlacement) {
		http.Error(w, "unknown placement", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("click error", slog.Any("error", err), slog.String("campaign_id", id))
		http.NotFound(w, r)
		return
	}
	adClicks.WithLabelValues(string(placement)).Inc()
	http.Redirect(w, r, link, http.StatusFound)
}
