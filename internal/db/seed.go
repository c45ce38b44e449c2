package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"docsuite-ads/internal/core/domain"
	"docsuite-ads/internal/core/port"
)

// Fixture is the YAML layout of a seed file.
type Fixture struct {
	Advertisers []FixtureAdvertiser `yaml:"advertisers"`
	Campaigns   []FixtureCampaign   `yaml:"campaigns"`
	Settings    *FixtureSettings    `yaml:"settings"`
}

type FixtureAdvertiser struct {
	ID           string `yaml:"id"`
	CompanyName  string `yaml:"company_name"`
	ContactName  string `yaml:"contact_name"`
	Email        string `yaml:"email"`
	Tier         string `yaml:"tier"`
	Notes        string `yaml:"notes"`
	Website      string `yaml:"website"`
	CustomWeight int    `yaml:"custom_weight"`
}

// FixtureCampaign selects script mode when Script is set, mirroring the
// store documents.
type FixtureCampaign struct {
	ID           string `yaml:"id"`
	AdvertiserID string `yaml:"advertiser_id"`
	Placement    string `yaml:"placement"`
	Status       string `yaml:"status"`
	StartDate    string `yaml:"start_date"`
	EndDate      string `yaml:"end_date"`
	Tier         string `yaml:"tier"`
	Link         string `yaml:"link"`
	CustomWeight int    `yaml:"custom_weight"`

	ImageURL             string  `yaml:"image_url"`
	MobileImageURL       string  `yaml:"mobile_image_url"`
	FooterImageURL       string  `yaml:"footer_image_url"`
	FooterMobileImageURL string  `yaml:"footer_mobile_image_url"`
	Script               *string `yaml:"script"`
	MobileScript         string  `yaml:"mobile_script"`
	FooterScript         string  `yaml:"footer_script"`
	FooterMobileScript   string  `yaml:"footer_mobile_script"`
}

type FixtureSettings struct {
	Placements map[string]bool `yaml:"placements"`
	AdSense    map[string]bool `yaml:"adsense"`
}

// LoadFixture reads and converts a seed file. Campaigns are validated the
// same way the admin write path validates them.
func LoadFixture(path string) ([]domain.Advertiser, []domain.Campaign, *domain.Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}
	var fx Fixture
	if err = yaml.Unmarshal(raw, &fx); err != nil {
		return nil, nil, nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	advertisers := make([]domain.Advertiser, 0, len(fx.Advertisers))
	for _, a := range fx.Advertisers {
		advertisers = append(advertisers, domain.Advertiser{
			ID:           a.ID,
			CompanyName:  a.CompanyName,
			ContactName:  a.ContactName,
			Email:        a.Email,
			Tier:         domain.Tier(a.Tier),
			Notes:        a.Notes,
			Website:      a.Website,
			CustomWeight: a.CustomWeight,
		})
	}

	campaigns := make([]domain.Campaign, 0, len(fx.Campaigns))
	for _, c := range fx.Campaigns {
		camp := domain.Campaign{
			ID:           c.ID,
			AdvertiserID: c.AdvertiserID,
			Placement:    domain.Placement(c.Placement),
			Status:       domain.Status(c.Status),
			StartDate:    c.StartDate,
			EndDate:      c.EndDate,
			Tier:         domain.Tier(c.Tier),
			Link:         c.Link,
			CustomWeight: c.CustomWeight,
		}
		if c.Script != nil {
			camp.Creative = domain.ScriptCreative{
				Script:             *c.Script,
				MobileScript:       c.MobileScript,
				FooterScript:       c.FooterScript,
				FooterMobileScript: c.FooterMobileScript,
			}
		} else {
			camp.Creative = domain.ImageCreative{
				ImageURL:             c.ImageURL,
				MobileImageURL:       c.MobileImageURL,
				FooterImageURL:       c.FooterImageURL,
				FooterMobileImageURL: c.FooterMobileImageURL,
			}
		}
		if err = camp.Validate(); err != nil {
			return nil, nil, nil, fmt.Errorf("seed campaign %q: %w", c.ID, err)
		}
		campaigns = append(campaigns, camp)
	}

	var settings *domain.Settings
	if fx.Settings != nil {
		settings = &domain.Settings{
			Placements: make(map[domain.Placement]bool, len(fx.Settings.Placements)),
			AdSense:    make(map[domain.Placement]bool, len(fx.Settings.AdSense)),
		}
		for k, v := range fx.Settings.Placements {
			settings.Placements[domain.Placement(k)] = v
		}
		for k, v := range fx.Settings.AdSense {
			settings.AdSense[domain.Placement(k)] = v
		}
	}
	return advertisers, campaigns, settings, nil
}

// Seed loads the fixture at path into an empty store. A store that already
// has advertisers or campaigns is left alone, as are saved settings.
func Seed(ctx context.Context, store port.CampaignStore, path string, logger *slog.Logger) error {
	advertisers, campaigns, settings, err := LoadFixture(path)
	if err != nil {
		return err
	}

	existingAdv, err := store.Advertisers(ctx)
	if err != nil {
		return err
	}
	existingCamp, err := store.Campaigns(ctx)
	if err != nil {
		return err
	}
	if len(existingAdv) > 0 || len(existingCamp) > 0 {
		logger.Info("store not empty, skipping seed", slog.Int("advertisers", len(existingAdv)), slog.Int("campaigns", len(existingCamp)))
		return nil
	}

	if err = store.SaveAdvertisers(ctx, advertisers); err != nil {
		return err
	}
	if err = store.SaveCampaigns(ctx, campaigns); err != nil {
		return err
	}
	if settings != nil {
		current, err := store.Settings(ctx)
		if err != nil {
			return err
		}
		if current.IsZero() {
			if err = store.SaveSettings(ctx, *settings); err != nil {
				return err
			}
		}
	}
	logger.Info("store seeded", slog.String("file", path), slog.Int("advertisers", len(advertisers)), slog.Int("campaigns", len(campaigns)))
	return nil
}
