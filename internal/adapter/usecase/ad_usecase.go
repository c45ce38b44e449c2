package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"docsuite-ads/internal/core/domain"
	"docsuite-ads/internal/core/port"
	"docsuite-ads/internal/core/rotation"
)

// AdUseCase provides the serving path: it loads the store documents,
// resolves candidates for a placement and samples one of them by weight.
// It implements port.AdUseCase.
type AdUseCase struct {
	store  port.CampaignStore
	logger *slog.Logger

	rng rotation.Rand
	now func() time.Time
}

// Option customises an AdUseCase.
type Option func(*AdUseCase)

// WithRand replaces the random source used for weighted selection.
func WithRand(rng rotation.Rand) Option {
	return func(u *AdUseCase) { u.rng = rng }
}

// WithClock replaces the clock used to flag campaigns past their end date.
func WithClock(now func() time.Time) Option {
	return func(u *AdUseCase) { u.now = now }
}

// NewAdUseCase creates a serving use case backed by store.
func NewAdUseCase(store port.CampaignStore, logger *slog.Logger, opts ...Option) *AdUseCase {
	u := &AdUseCase{
		store:  store,
		logger: logger,
		rng:    rotation.DefaultRand,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ServeAd decides what the slot shows. Store failures are logged and
// treated as empty documents, so the caller sees a placeholder (or an
// empty AdSense-exclusive slot) instead of an error.
func (u *AdUseCase) ServeAd(ctx context.Context, placement domain.Placement) (*port.AdResponse, error) {
	if !placement.Servable() {
		return nil, fmt.Errorf("%w: %q", port.ErrUnknownPlacement, placement)
	}

	campaigns, err := u.store.Campaigns(ctx)
	if err != nil {
		u.logger.WarnContext(ctx, "campaigns unavailable, serving without ads", "err", err)
		campaigns = nil
	}
	advertisers, err := u.store.Advertisers(ctx)
	if err != nil {
		u.logger.WarnContext(ctx, "advertisers unavailable", "err", err)
		advertisers = nil
	}
	settings, err := u.store.Settings(ctx)
	if err != nil {
		u.logger.WarnContext(ctx, "settings unavailable, using defaults", "err", err)
		settings = domain.Settings{}
	}
	if settings.IsZero() {
		settings = domain.DefaultSettings()
	}

	exclusive := settings.AdSenseExclusive(placement)
	resolved := rotation.Resolve(placement, campaigns, advertisers, settings, u.now())
	candidates := rotation.Partition(resolved, placement, settings)
	ad, ok := rotation.PickOne(candidates, u.rng)

	resp := &port.AdResponse{
		Placement:  placement,
		Outcome:    rotation.Decide(ok, exclusive),
		Exclusive:  exclusive,
		Candidates: len(candidates),
	}
	if ok {
		resp.Ad = &ad
		resp.ClickURL = clickURL(ad.ID, placement)
	}
	return resp, nil
}

// RegisterClick counts a click and returns the campaign link. Campaigns
// without a link redirect to the site root.
func (u *AdUseCase) RegisterClick(ctx context.Context, campaignID string, placement domain.Placement) (string, error) {
	if campaignID == "" {
		return "", errors.New("empty campaign id")
	}
	if placement != "" && !placement.Valid() {
		return "", fmt.Errorf("%w: %q", port.ErrUnknownPlacement, placement)
	}
	campaign, err := u.store.RecordClick(ctx, domain.Click{
		ID:         uuid.NewString(),
		CampaignID: campaignID,
		Placement:  placement,
		CreatedAt:  u.now().UTC(),
	})
	if err != nil {
		return "", err
	}
	if campaign.Link == "" {
		return "/", nil
	}
	return campaign.Link, nil
}

func clickURL(campaignID string, placement domain.Placement) string {
	return fmt.Sprintf("/api/v1/ad/click/%s?placement=%s",
		url.PathEscape(campaignID), url.QueryEscape(string(placement)))
}
