package port

import (
	"context"
	"errors"

	"docsuite-ads/internal/core/domain"
)

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrAdvertiserNotFound = errors.New("advertiser not found")
	ErrAdvertiserInUse    = errors.New("advertiser has campaigns")
	ErrUnknownPlacement   = errors.New("unknown placement")
	ErrUnauthorized       = errors.New("unauthorized")
	// ErrMalformedDocument is returned by store reads when a stored
	// document cannot be decoded. Writers must not proceed on it.
	ErrMalformedDocument = errors.New("malformed store document")
)

// CampaignStore holds the advertiser, campaign and settings documents. It
// is an outbound port. Documents are replaced as a whole; there are no
// partial updates. Concurrent writers are last-write-wins.
//
// Readers on the serving path treat errors as "no ads". Missing documents
// are reported as empty values; documents that cannot be decoded yield
// ErrMalformedDocument so that no write is ever based on a partial read.
type CampaignStore interface {
	// Advertisers returns the advertiser document.
	Advertisers(ctx context.Context) ([]domain.Advertiser, error)
	// Campaigns returns the campaign document.
	Campaigns(ctx context.Context) ([]domain.Campaign, error)
	// Settings returns the settings document. A zero Settings means none
	// were saved yet.
	Settings(ctx context.Context) (domain.Settings, error)

	// SaveAdvertisers replaces the advertiser document.
	SaveAdvertisers(ctx context.Context, advertisers []domain.Advertiser) error
	// SaveCampaigns replaces the campaign document.
	SaveCampaigns(ctx context.Context, campaigns []domain.Campaign) error
	// SaveSettings replaces the settings document.
	SaveSettings(ctx context.Context, settings domain.Settings) error

	// RecordClick increments the click counter of the campaign and keeps
	// the click event where the backend supports it. It returns
	// ErrCampaignNotFound for unknown campaigns.
	RecordClick(ctx context.Context, click domain.Click) (domain.Campaign, error)
}

// AssetCatalog lists creative files available to the admin asset picker.
type AssetCatalog interface {
	Scan(ctx context.Context) ([]Asset, error)
}

// Asset is one file in the local image catalog.
type Asset struct {
	Placement string `json:"placement"`
	Filename  string `json:"filename"`
	Path      string `json:"path"`
}
