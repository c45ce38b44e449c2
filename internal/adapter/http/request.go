package httpadapter

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"docsuite-ads/internal/core/domain"
	"docsuite-ads/internal/core/port"
)

// handleAdRequest returns the serving decision for the {placement} slot as
// JSON. An AdSense-exclusive slot without candidates answers 204 No
// Content so the client collapses it. Unknown placements produce 400.
func (h *Handler) handleAdRequest(w http.ResponseWriter, r *http.Request) {
	resp, ok := h.serve(w, r)
	if !ok {
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	if resp.Outcome == domain.OutcomeNone {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleAdFragment renders the decision as an HTML fragment ready to be
// inserted into the slot. A collapsed slot is an empty 200 response.
func (h *Handler) handleAdFragment(w http.ResponseWriter, r *http.Request) {
	resp, ok := h.serve(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, resp); err != nil {
		h.logger.Error("render ad error", slog.Any("error", err), slog.String("placement", string(resp.Placement)))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request) (*port.AdResponse, bool) {
	placement := domain.Placement(chi.URLParam(r, "placement"))
	resp, err := h.ads.ServeAd(r.Context(), placement)
	if err != nil {
		h.writeError(w, r, "serve ad", err)
		return nil, false
	}
	adsServed.WithLabelValues(string(resp.Placement), string(resp.Outcome)).Inc()
	return resp, true
}
