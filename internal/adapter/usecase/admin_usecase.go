package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"docsuite-ads/internal/core/domain"
	"docsuite-ads/internal/core/port"
)

const (
	expiringWindow = 72 * time.Hour
	alertWindow    = 24 * time.Hour
)

// AdminUseCase implements port.AdminUseCase on top of a CampaignStore and
// the local asset catalog.
type AdminUseCase struct {
	store   port.CampaignStore
	catalog port.AssetCatalog
	logger  *slog.Logger
}

// NewAdminUseCase creates the operator use case.
func NewAdminUseCase(store port.CampaignStore, catalog port.AssetCatalog, logger *slog.Logger) *AdminUseCase {
	return &AdminUseCase{store: store, catalog: catalog, logger: logger}
}

func (u *AdminUseCase) Advertisers(ctx context.Context) ([]domain.Advertiser, error) {
	return u.store.Advertisers(ctx)
}

// SaveAdvertisers replaces the advertiser document. Every advertiser needs
// an id, unique within the document, and a known tier when one is set.
func (u *AdminUseCase) SaveAdvertisers(ctx context.Context, advertisers []domain.Advertiser) error {
	seen := make(map[string]struct{}, len(advertisers))
	for _, a := range advertisers {
		if a.ID == "" {
			return &domain.ValidationError{Msg: "Advertiser id is required"}
		}
		if _, dup := seen[a.ID]; dup {
			return &domain.ValidationError{Msg: "Duplicate advertiser id: " + a.ID}
		}
		seen[a.ID] = struct{}{}
		if a.Tier != "" && !a.Tier.Valid() {
			return &domain.ValidationError{Msg: "Unknown tier: " + string(a.Tier)}
		}
	}
	return u.store.SaveAdvertisers(ctx, nonNil(advertisers))
}

// DeleteAdvertiser removes an advertiser. Campaigns still pointing at it
// block the delete unless cascade is set, in which case they are removed
// after the advertiser document has been written.
func (u *AdminUseCase) DeleteAdvertiser(ctx context.Context, id string, cascade bool) error {
	advertisers, err := u.store.Advertisers(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.Advertiser, 0, len(advertisers))
	for _, a := range advertisers {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(advertisers) {
		return port.ErrAdvertiserNotFound
	}

	campaigns, err := u.store.Campaigns(ctx)
	if err != nil {
		return err
	}
	remaining := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c.AdvertiserID != id {
			remaining = append(remaining, c)
		}
	}
	removed := len(campaigns) - len(remaining)
	if removed > 0 && !cascade {
		return fmt.Errorf("%w: %d campaigns", port.ErrAdvertiserInUse, removed)
	}

	// a failed campaign write may leave orphans but never drops campaigns
	if err = u.store.SaveAdvertisers(ctx, kept); err != nil {
		return err
	}
	if removed > 0 {
		if err = u.store.SaveCampaigns(ctx, remaining); err != nil {
			return err
		}
		u.logger.InfoContext(ctx, "removed campaigns of deleted advertiser",
			slog.String("advertiser_id", id), slog.Int("campaigns", removed))
	}
	return nil
}

func (u *AdminUseCase) PublicAdvertisers(ctx context.Context) ([]domain.Advertiser, error) {
	advertisers, err := u.store.Advertisers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Advertiser, len(advertisers))
	for i, a := range advertisers {
		out[i] = a.Anonymized(i)
	}
	return out, nil
}

func (u *AdminUseCase) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.store.Campaigns(ctx)
}

func (u *AdminUseCase) SaveCampaigns(ctx context.Context, campaigns []domain.Campaign) error {
	for _, c := range campaigns {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("campaign %s: %w", c.ID, err)
		}
	}
	return u.store.SaveCampaigns(ctx, nonNil(campaigns))
}

// CreateCampaign runs the booking wizard: it resolves the advertiser and
// tier, derives placement and end date, checks the assets and appends the
// campaign. A new advertiser is only stored once the campaign is valid.
func (u *AdminUseCase) CreateCampaign(ctx context.Context, req port.CampaignWizardReq) (*domain.Campaign, error) {
	advertisers, err := u.store.Advertisers(ctx)
	if err != nil {
		return nil, err
	}

	var (
		advertiserID string
		tier         = req.Tier
		created      *domain.Advertiser
	)
	switch {
	case req.NewAdvertiser != nil:
		na := req.NewAdvertiser
		if na.CompanyName == "" || na.Email == "" {
			return nil, &domain.ValidationError{Msg: "Company name and email are required"}
		}
		created = &domain.Advertiser{
			ID:          uuid.NewString(),
			CompanyName: na.CompanyName,
			ContactName: na.ContactName,
			Email:       na.Email,
			Tier:        na.Tier,
			Notes:       na.Notes,
			Website:     na.Website,
		}
		advertiserID = created.ID
		tier = na.Tier
	case req.AdvertiserID != "":
		a, ok := domain.FindAdvertiser(advertisers, req.AdvertiserID)
		if !ok {
			return nil, port.ErrAdvertiserNotFound
		}
		advertiserID = a.ID
		if tier == "" {
			tier = a.Tier
		}
	default:
		return nil, &domain.ValidationError{Msg: "Advertiser is required"}
	}
	if tier == "" {
		tier = domain.TierBronze
	}

	placement := domain.TierDefaults(tier).Placement
	if tier == domain.TierUnassigned || placement == "" {
		placement = req.Placement
		if placement == "" {
			placement = domain.PlacementHeader
		}
	}

	endDate := req.EndDate
	if tier != domain.TierUnassigned || endDate == "" {
		if req.StartDate == "" {
			return nil, &domain.ValidationError{Msg: "Dates are required"}
		}
		if endDate, err = domain.ComputeEndDate(req.StartDate, tier); err != nil {
			return nil, &domain.ValidationError{Msg: "Invalid start date: " + req.StartDate}
		}
	}

	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}

	campaign := domain.Campaign{
		ID:           uuid.NewString(),
		AdvertiserID: advertiserID,
		Placement:    placement,
		Status:       status,
		StartDate:    req.StartDate,
		EndDate:      endDate,
		Tier:         tier,
		Creative:     wizardCreative(req),
		Link:         req.Link,
		CustomWeight: req.CustomWeight,
	}
	if err = campaign.Validate(); err != nil {
		return nil, err
	}
	if err = campaign.ValidateAssets(); err != nil {
		return nil, err
	}

	// both documents must decode before anything is written
	campaigns, err := u.store.Campaigns(ctx)
	if err != nil {
		return nil, err
	}
	if created != nil {
		if err = u.store.SaveAdvertisers(ctx, append(advertisers, *created)); err != nil {
			return nil, err
		}
	}
	if err = u.store.SaveCampaigns(ctx, append(campaigns, campaign)); err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "campaign booked",
		slog.String("campaign_id", campaign.ID),
		slog.String("advertiser_id", advertiserID),
		slog.String("tier", string(tier)),
		slog.String("placement", string(placement)))
	return &campaign, nil
}

func wizardCreative(req port.CampaignWizardReq) domain.Creative {
	if req.Script != nil {
		return domain.ScriptCreative{
			Script:             *req.Script,
			MobileScript:       req.MobileScript,
			FooterScript:       req.FooterScript,
			FooterMobileScript: req.FooterMobileScript,
		}
	}
	return domain.ImageCreative{
		ImageURL:             req.ImageURL,
		MobileImageURL:       req.MobileImageURL,
		FooterImageURL:       req.FooterImageURL,
		FooterMobileImageURL: req.FooterMobileImageURL,
	}
}

// Schedule lists every campaign with its booked duration and the time
// left until the end of its end day.
func (u *AdminUseCase) Schedule(ctx context.Context, now time.Time) ([]port.ScheduleEntry, error) {
	campaigns, err := u.store.Campaigns(ctx)
	if err != nil {
		return nil, err
	}
	advertisers, err := u.store.Advertisers(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]port.ScheduleEntry, 0, len(campaigns))
	for _, c := range campaigns {
		days, err := domain.CampaignDuration(c.StartDate, c.EndDate)
		if err != nil {
			days = 0
		}
		left, ok := domain.UntilEndDate(c.EndDate, now)
		entries = append(entries, port.ScheduleEntry{
			CampaignID:   c.ID,
			Company:      companyName(advertisers, c.AdvertiserID),
			Placement:    c.Placement,
			Status:       c.Status,
			DurationDays: days,
			TimeLeft:     domain.FormatTimeLeft(c.EndDate, now),
			Urgent:       ok && left > 0 && left < alertWindow,
		})
	}
	return entries, nil
}

func (u *AdminUseCase) Settings(ctx context.Context) (domain.Settings, error) {
	s, err := u.store.Settings(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	if s.IsZero() {
		return domain.DefaultSettings(), nil
	}
	return s, nil
}

func (u *AdminUseCase) SaveSettings(ctx context.Context, settings domain.Settings) error {
	for p := range settings.Placements {
		if !p.Valid() {
			return &domain.ValidationError{Msg: "Unknown placement: " + string(p)}
		}
	}
	for p := range settings.AdSense {
		if !p.Valid() {
			return &domain.ValidationError{Msg: "Unknown placement: " + string(p)}
		}
	}
	if settings.Placements == nil {
		settings.Placements = map[domain.Placement]bool{}
	}
	return u.store.SaveSettings(ctx, settings)
}

func (u *AdminUseCase) Images(ctx context.Context) ([]port.Asset, error) {
	return u.catalog.Scan(ctx)
}

// Overview computes the dashboard figures. Expiry windows are measured to
// the start of the end date.
func (u *AdminUseCase) Overview(ctx context.Context, now time.Time) (*port.Overview, error) {
	advertisers, err := u.store.Advertisers(ctx)
	if err != nil {
		return nil, err
	}
	campaigns, err := u.store.Campaigns(ctx)
	if err != nil {
		return nil, err
	}

	ov := &port.Overview{TotalAdvertisers: len(advertisers), Alerts: []port.Alert{}}
	for _, c := range campaigns {
		if c.Status != domain.StatusActive {
			continue
		}
		ov.ActiveCampaigns++

		if left, ok := domain.UntilEndDate(c.EndDate, now); ok && left > 0 {
			if left < expiringWindow {
				ov.ExpiringSoon++
			}
			if left < alertWindow {
				ov.Alerts = append(ov.Alerts, port.Alert{
					CampaignID: c.ID,
					Company:    companyName(advertisers, c.AdvertiserID),
					Placement:  c.Placement,
					Hours:      int(left / time.Hour),
				})
			}
		}

		if c.CreativeOrDefault().Mode() == domain.ModeImage && c.Tier != domain.TierUnassigned {
			ov.RevenueEstimate += domain.TierPrice(revenueTier(c, advertisers))
		}
	}
	return ov, nil
}

// revenueTier resolves campaign tier, then advertiser tier, then bronze.
func revenueTier(c domain.Campaign, advertisers []domain.Advertiser) domain.Tier {
	if c.Tier != "" {
		return c.Tier
	}
	if a, ok := domain.FindAdvertiser(advertisers, c.AdvertiserID); ok && a.Tier != "" {
		return a.Tier
	}
	return domain.TierBronze
}

func companyName(advertisers []domain.Advertiser, id string) string {
	if a, ok := domain.FindAdvertiser(advertisers, id); ok {
		return a.CompanyName
	}
	return "Unknown"
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
