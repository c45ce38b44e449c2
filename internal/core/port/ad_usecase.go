package port

import (
	"context"
	"time"

	"docsuite-ads/internal/core/domain"
)

// AdUseCase defines the serving operations. This interface represents the
// primary port into the ad-selection core.
type AdUseCase interface {
	// ServeAd picks the campaign for placement. It never fails because of
	// store problems; those degrade to an empty slot. ErrUnknownPlacement
	// is returned for placements that cannot be requested.
	ServeAd(ctx context.Context, placement domain.Placement) (*AdResponse, error)

	// RegisterClick counts a click on campaignID served in placement and
	// returns the landing link for redirection.
	RegisterClick(ctx context.Context, campaignID string, placement domain.Placement) (string, error)
}

// AdResponse is the serving decision for one slot. Ad is nil unless
// Outcome is OutcomeCreative.
type AdResponse struct {
	Placement  domain.Placement   `json:"placement"`
	Outcome    domain.Outcome     `json:"outcome"`
	Exclusive  bool               `json:"adsenseExclusive"`
	Candidates int                `json:"candidates"`
	Ad         *domain.ResolvedAd `json:"ad,omitempty"`
	ClickURL   string             `json:"clickUrl,omitempty"`
}

// AdminUseCase defines the operator write path and dashboard reads.
type AdminUseCase interface {
	Advertisers(ctx context.Context) ([]domain.Advertiser, error)
	SaveAdvertisers(ctx context.Context, advertisers []domain.Advertiser) error
	// DeleteAdvertiser removes an advertiser. Without cascade it fails with
	// ErrAdvertiserInUse while campaigns still reference it; with cascade
	// those campaigns are removed as well.
	DeleteAdvertiser(ctx context.Context, id string, cascade bool) error
	// PublicAdvertisers returns the advertiser document with contact
	// details replaced, for publishing alongside the site.
	PublicAdvertisers(ctx context.Context) ([]domain.Advertiser, error)

	Campaigns(ctx context.Context) ([]domain.Campaign, error)
	// SaveCampaigns validates every campaign and replaces the document.
	// Nothing is written when one of them is invalid.
	SaveCampaigns(ctx context.Context, campaigns []domain.Campaign) error
	// CreateCampaign books a campaign, creating the advertiser first when
	// requested. Placement and end date are derived from the tier.
	CreateCampaign(ctx context.Context, req CampaignWizardReq) (*domain.Campaign, error)
	// Schedule lists campaign durations and remaining time.
	Schedule(ctx context.Context, now time.Time) ([]ScheduleEntry, error)

	// Settings returns the stored settings, or every page placement
	// enabled when nothing was saved yet.
	Settings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error

	Images(ctx context.Context) ([]Asset, error)
	Overview(ctx context.Context, now time.Time) (*Overview, error)
}

// CampaignWizardReq is the input of the booking wizard. Exactly one of
// AdvertiserID and NewAdvertiser is used; NewAdvertiser wins when set.
type CampaignWizardReq struct {
	AdvertiserID  string            `json:"advertiserId"`
	NewAdvertiser *NewAdvertiserReq `json:"newAdvertiser,omitempty"`
	// Tier applies when booking for an existing advertiser.
	Tier         domain.Tier      `json:"tier" validate:"omitempty,oneof=bronze silver-left silver-right gold platinum unassigned"`
	Placement    domain.Placement `json:"placement"`
	Status       domain.Status    `json:"status" validate:"omitempty,oneof=draft scheduled active expired"`
	StartDate    string           `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string           `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Link         string           `json:"link" validate:"omitempty,url"`
	CustomWeight int              `json:"customWeight" validate:"gte=0"`

	ImageURL             string  `json:"imageUrl"`
	MobileImageURL       string  `json:"mobileImageUrl"`
	FooterImageURL       string  `json:"footerImageUrl"`
	FooterMobileImageURL string  `json:"footerMobileImageUrl"`
	Script               *string `json:"script"`
	MobileScript         string  `json:"mobileScript"`
	FooterScript         string  `json:"footerScript"`
	FooterMobileScript   string  `json:"footerMobileScript"`
}

// NewAdvertiserReq describes an advertiser created by the wizard.
type NewAdvertiserReq struct {
	CompanyName string      `json:"companyName" validate:"required"`
	ContactName string      `json:"contactName"`
	Email       string      `json:"email" validate:"required,email"`
	Tier        domain.Tier `json:"tier" validate:"required,oneof=bronze silver-left silver-right gold platinum unassigned"`
	Notes       string      `json:"notes"`
	Website     string      `json:"website" validate:"omitempty,url"`
}

// ScheduleEntry is one row of the campaign schedule view.
type ScheduleEntry struct {
	CampaignID   string           `json:"campaignId"`
	Company      string           `json:"company"`
	Placement    domain.Placement `json:"placement"`
	Status       domain.Status    `json:"status"`
	DurationDays int              `json:"durationDays"`
	TimeLeft     string           `json:"timeLeft"`
	Urgent       bool             `json:"urgent"`
}

// Overview is the dashboard summary.
type Overview struct {
	TotalAdvertisers int     `json:"totalAdvertisers"`
	ActiveCampaigns  int     `json:"activeCampaigns"`
	ExpiringSoon     int     `json:"expiringSoon"`
	RevenueEstimate  int     `json:"revenueEstimate"`
	Alerts           []Alert `json:"alerts"`
}

// Alert flags an active campaign ending within a day.
type Alert struct {
	CampaignID string           `json:"campaignId"`
	Company    string           `json:"company"`
	Placement  domain.Placement `json:"placement"`
	Hours      int              `json:"hours"`
}
