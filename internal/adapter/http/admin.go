package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"docsuite-ads/internal/core/domain"
	"docsuite-ads/internal/core/port"
)

type savedResp struct {
	Success bool `json:"success"`
}

func (h *Handler) handleListAdvertisers(w http.ResponseWriter, r *http.Request) {
	advertisers, err := h.admin.Advertisers(r.Context())
	if err != nil {
		h.writeError(w, r, "list advertisers", err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNilSlice(advertisers))
}

// handleSaveAdvertisers replaces the advertiser document with the body.
func (h *Handler) handleSaveAdvertisers(w http.ResponseWriter, r *http.Request) {
	var advertisers []domain.Advertiser
	if !h.decode(w, r, &advertisers, false) {
		return
	}
	if err := h.admin.SaveAdvertisers(r.Context(), advertisers); err != nil {
		h.writeError(w, r, "save advertisers", err)
		return
	}
	h.audit(r, "save advertisers", slog.Int("advertisers", len(advertisers)))
	h.writeJSON(w, http.StatusOK, savedResp{Success: true})
}

func (h *Handler) handlePublicAdvertisers(w http.ResponseWriter, r *http.Request) {
	advertisers, err := h.admin.PublicAdvertisers(r.Context())
	if err != nil {
		h.writeError(w, r, "public advertisers", err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNilSlice(advertisers))
}

// handleDeleteAdvertiser removes the {id} advertiser. With ?cascade=true
// its campaigns are removed too; otherwise an advertiser with campaigns
// answers 409.
func (h *Handler) handleDeleteAdvertiser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var cascade bool
	if v := r.URL.Query().Get("cascade"); v != "" {
		var err error
		if cascade, err = strconv.ParseBool(v); err != nil {
			http.Error(w, "invalid 'cascade' flag", http.StatusBadRequest)
			return
		}
	}
	if err := h.admin.DeleteAdvertiser(r.Context(), id, cascade); err != nil {
		h.writeError(w, r, "delete advertiser", err)
		return
	}
	h.audit(r, "delete advertiser", slog.String("advertiser_id", id), slog.Bool("cascade", cascade))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.admin.Campaigns(r.Context())
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNilSlice(campaigns))
}

// handleSaveCampaigns replaces the campaign document. One invalid campaign
// rejects the whole body with 400.
func (h *Handler) handleSaveCampaigns(w http.ResponseWriter, r *http.Request) {
	var campaigns []domain.Campaign
	if !h.decode(w, r, &campaigns, false) {
		return
	}
	if err := h.admin.SaveCampaigns(r.Context(), campaigns); err != nil {
		h.writeError(w, r, "save campaigns", err)
		return
	}
	h.audit(r, "save campaigns", slog.Int("campaigns", len(campaigns)))
	h.writeJSON(w, http.StatusOK, savedResp{Success: true})
}

// handleCampaignWizard books a campaign and returns it with 201.
func (h *Handler) handleCampaignWizard(w http.ResponseWriter, r *http.Request) {
	var req port.CampaignWizardReq
	if !h.decode(w, r, &req, true) {
		return
	}
	campaign, err := h.admin.CreateCampaign(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	h.audit(r, "create campaign", slog.String("campaign_id", campaign.ID))
	h.writeJSON(w, http.StatusCreated, campaign)
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.admin.Settings(r.Context())
	if err != nil {
		h.writeError(w, r, "get settings", err)
		return
	}
	h.writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.Settings
	if !h.decode(w, r, &settings, false) {
		return
	}
	if err := h.admin.SaveSettings(r.Context(), settings); err != nil {
		h.writeError(w, r, "save settings", err)
		return
	}
	h.audit(r, "save settings")
	h.writeJSON(w, http.StatusOK, savedResp{Success: true})
}

func (h *Handler) handleImages(w http.ResponseWriter, r *http.Request) {
	assets, err := h.admin.Images(r.Context())
	if err != nil {
		h.writeError(w, r, "scan images", err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNilSlice(assets))
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
