package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docsuite-ads/internal/core/domain"
	"docsuite-ads/internal/core/port"
	"docsuite-ads/internal/core/port/mocks"
)

func strPtr(s string) *string { return &s }

func newAdmin(t *testing.T) (*AdminUseCase, *mocks.MockCampaignStore, *mocks.MockAssetCatalog) {
	store := mocks.NewMockCampaignStore(t)
	catalog := mocks.NewMockAssetCatalog(t)
	return NewAdminUseCase(store, catalog, discardLogger()), store, catalog
}

func TestCreateCampaignWithNewAdvertiser(t *testing.T) {
	svc, store, _ := newAdmin(t)

	var saved []domain.Campaign
	var savedAdvertisers []domain.Advertiser
	store.EXPECT().Advertisers(mock.Anything).Return([]domain.Advertiser{}, nil)
	store.EXPECT().SaveAdvertisers(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a []domain.Advertiser) { savedAdvertisers = a }).
		Return(nil)
	store.EXPECT().Campaigns(mock.Anything).Return(nil, nil)
	store.EXPECT().SaveCampaigns(mock.Anything, mock.Anything).
		Run(func(_ context.Context, c []domain.Campaign) { saved = c }).
		Return(nil)

	c, err := svc.CreateCampaign(context.Background(), port.CampaignWizardReq{
		NewAdvertiser:  &port.NewAdvertiserReq{CompanyName: "Acme", Email: "ads@acme.test", Tier: domain.TierGold},
		StartDate:      "2025-01-01",
		ImageURL:       "/ads/header/acme.png",
		MobileImageURL: "/ads/header/acme-m.png",
		Link:           "https://acme.test",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PlacementHeader, c.Placement)
	assert.Equal(t, "2025-01-15", c.EndDate)
	assert.Equal(t, domain.StatusActive, c.Status)
	assert.Equal(t, domain.TierGold, c.Tier)
	assert.Zero(t, c.Clicks)
	assert.NotEmpty(t, c.ID)

	require.Len(t, savedAdvertisers, 1)
	assert.Equal(t, savedAdvertisers[0].ID, c.AdvertiserID)
	require.Len(t, saved, 1)
	assert.Equal(t, c.ID, saved[0].ID)
}

func TestCreateCampaignUnassignedKeepsChoices(t *testing.T) {
	svc, store, _ := newAdmin(t)
	store.EXPECT().Advertisers(mock.Anything).Return([]domain.Advertiser{{ID: "a1", Tier: domain.TierUnassigned}}, nil)
	store.EXPECT().Campaigns(mock.Anything).Return([]domain.Campaign{}, nil)
	store.EXPECT().SaveCampaigns(mock.Anything, mock.Anything).Return(nil)

	c, err := svc.CreateCampaign(context.Background(), port.CampaignWizardReq{
		AdvertiserID: "a1",
		Placement:    domain.PlacementSidebarRight,
		StartDate:    "2025-01-01",
		EndDate:      "2025-02-01",
		Script:       strPtr("<div>partner</div>"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PlacementSidebarRight, c.Placement)
	assert.Equal(t, "2025-02-01", c.EndDate)
	assert.Equal(t, domain.ModeScript, c.Creative.Mode())
}

func TestCreateCampaignUnassignedDefaults(t *testing.T) {
	svc, store, _ := newAdmin(t)
	store.EXPECT().Advertisers(mock.Anything).Return([]domain.Advertiser{{ID: "a1"}}, nil)
	store.EXPECT().Campaigns(mock.Anything).Return(nil, nil)
	store.EXPECT().SaveCampaigns(mock.Anything, mock.Anything).Return(nil)

	c, err := svc.CreateCampaign(context.Background(), port.CampaignWizardReq{
		AdvertiserID: "a1",
		Tier:         domain.TierUnassigned,
		StartDate:    "2025-01-01",
		Script:       strPtr("<div>partner</div>"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PlacementHeader, c.Placement)
	assert.Equal(t, "2026-01-01", c.EndDate)
}

func TestCreateCampaignValidation(t *testing.T) {
	tests := []struct {
		name string
		req  port.CampaignWizardReq
		msg  string
	}{
		{
			name: "missing advertiser",
			req:  port.CampaignWizardReq{StartDate: "2025-01-01"},
			msg:  "Advertiser is required",
		},
		{
			name: "missing dates",
			req:  port.CampaignWizardReq{AdvertiserID: "a1", Tier: domain.TierBronze},
			msg:  "Dates are required",
		},
		{
			name: "combo image assets",
			req: port.CampaignWizardReq{
				AdvertiserID: "a1", Tier: domain.TierPlatinum, StartDate: "2025-01-01",
				ImageURL: "/ads/h.png", Link: "https://x.test",
			},
			msg: "Missing required assets: Mobile Image, Footer Desktop Image, Footer Mobile Image",
		},
		{
			name: "combo script needs footer",
			req: port.CampaignWizardReq{
				AdvertiserID: "a1", Tier: domain.TierPlatinum, StartDate: "2025-01-01",
				Script: strPtr("<div>x</div>"),
			},
			msg: "Missing required assets: Footer Script (Desktop)",
		},
		{
			name: "unassigned end before start",
			req: port.CampaignWizardReq{
				AdvertiserID: "a1", Tier: domain.TierUnassigned, StartDate: "2025-02-01", EndDate: "2025-01-01",
				Script: strPtr("<div>x</div>"),
			},
			msg: "Start date must be before end date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, _ := newAdmin(t)
			store.EXPECT().Advertisers(mock.Anything).Return([]domain.Advertiser{{ID: "a1"}}, nil)

			_, err := svc.CreateCampaign(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestCreateCampaignUnknownAdvertiser(t *testing.T) {
	svc, store, _ := newAdmin(t)
	store.EXPECT().Advertisers(mock.Anything).Return(nil, nil)

	_, err := svc.CreateCampaign(context.Background(), port.CampaignWizardReq{AdvertiserID: "ghost", StartDate: "2025-01-01"})
	assert.ErrorIs(t, err, port.ErrAdvertiserNotFound)
}

func TestCreateCampaignRefusesUnreadableStore(t *testing.T) {
	svc, store, _ := newAdmin(t)
	store.EXPECT().Advertisers(mock.Anything).Return([]domain.Advertiser{}, nil)
	store.EXPECT().Campaigns(mock.Anything).
		Return(nil, fmt.Errorf("campaigns.json: %w", port.ErrMalformedDocument))

	_, err := svc.CreateCampaign(context.Background(), port.CampaignWizardReq{
		NewAdvertiser:  &port.NewAdvertiserReq{CompanyName: "Acme", Email: "ads@acme.test", Tier: domain.TierGold},
		StartDate:      "2025-01-01",
		ImageURL:       "/ads/header/acme.png",
		MobileImageURL: "/ads/header/acme-m.png",
		Link:           "https://acme.test",
	})
	assert.ErrorIs(t, err, port.ErrMalformedDocument)
}

func TestSaveCampaignsRejectsWholeDocument(t *testing.T) {
	svc, _, _ := newAdmin(t)
	good := domain.Campaign{ID: "ok", Placement: domain.PlacementHeader, StartDate: "2025-01-01", EndDate: "2025-01-08"}
	bad := domain.Campaign{ID: "bad", Placement: domain.PlacementHeader, StartDate: "2025-01-09", EndDate: "2025-01-08"}

	err := svc.SaveCampaigns(context.Background(), []domain.Campaign{good, bad})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Contains(t, err.Error(), "bad")
}

func TestSaveAdvertisersValidation(t *testing.T) {
	svc, store, _ := newAdmin(t)

	err := svc.SaveAdvertisers(context.Background(), []domain.Advertiser{{ID: "a"}, {ID: "a"}})
	assert.True(t, domain.IsValidationError(err))

	err = svc.SaveAdvertisers(context.Background(), []domain.Advertiser{{ID: "a", Tier: "diamond"}})
	assert.True(t, domain.IsValidationError(err))

	store.EXPECT().SaveAdvertisers(mock.Anything, []domain.Advertiser{}).Return(nil)
	assert.NoError(t, svc.SaveAdvertisers(context.Background(), nil))
}

func TestDeleteAdvertiser(t *testing.T) {
	advertisers := []domain.Advertiser{{ID: "a1"}, {ID: "a2"}}
	campaigns := []domain.Campaign{{ID: "c1", AdvertiserID: "a1"}, {ID: "c2", AdvertiserID: "a2"}}

	t.Run("in use", func(t *testing.T) {
		svc, store, _ := newAdmin(t)
		store.EXPECT().Advertisers(mock.Anything).Return(advertisers, nil)
		store.EXPECT().Campaigns(mock.Anything).Return(campaigns, nil)

		err := svc.DeleteAdvertiser(context.Background(), "a1", false)
		assert.ErrorIs(t, err, port.ErrAdvertiserInUse)
	})

	t.Run("cascade", func(t *testing.T) {
		svc, store, _ := newAdmin(t)
		store.EXPECT().Advertisers(mock.Anything).Return(advertisers, nil)
		store.EXPECT().Campaigns(mock.Anything).Return(campaigns, nil)
		store.EXPECT().SaveCampaigns(mock.Anything, []domain.Campaign{{ID: "c2", AdvertiserID: "a2"}}).Return(nil)
		store.EXPECT().SaveAdvertisers(mock.Anything, []domain.Advertiser{{ID: "a2"}}).Return(nil)

		require.NoError(t, svc.DeleteAdvertiser(context.Background(), "a1", true))
	})

	t.Run("not found", func(t *testing.T) {
		svc, store, _ := newAdmin(t)
		store.EXPECT().Advertisers(mock.Anything).Return(advertisers, nil)

		err := svc.DeleteAdvertiser(context.Background(), "zz", true)
		assert.ErrorIs(t, err, port.ErrAdvertiserNotFound)
	})

	t.Run("unreadable campaigns", func(t *testing.T) {
		svc, store, _ := newAdmin(t)
		store.EXPECT().Advertisers(mock.Anything).Return(advertisers, nil)
		store.EXPECT().Campaigns(mock.Anything).
			Return(nil, fmt.Errorf("campaigns.json: %w", port.ErrMalformedDocument))

		err := svc.DeleteAdvertiser(context.Background(), "a1", true)
		assert.ErrorIs(t, err, port.ErrMalformedDocument)
	})

	t.Run("cascade keeps campaigns when advertiser write fails", func(t *testing.T) {
		svc, store, _ := newAdmin(t)
		writeErr := errors.New("disk full")
		store.EXPECT().Advertisers(mock.Anything).Return(advertisers, nil)
		store.EXPECT().Campaigns(mock.Anything).Return(campaigns, nil)
		store.EXPECT().SaveAdvertisers(mock.Anything, []domain.Advertiser{{ID: "a2"}}).Return(writeErr).Once()

		err := svc.DeleteAdvertiser(context.Background(), "a1", true)
		assert.ErrorIs(t, err, writeErr)
		store.AssertNotCalled(t, "SaveCampaigns", mock.Anything, mock.Anything)
	})
}

func TestPublicAdvertisers(t *testing.T) {
	svc, store, _ := newAdmin(t)
	store.EXPECT().Advertisers(mock.Anything).Return([]domain.Advertiser{
		{ID: "a1", CompanyName: "Secret Corp", Email: "ceo@secret.test", Tier: domain.TierGold, CustomWeight: 9},
	}, nil)

	out, err := svc.PublicAdvertisers(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Advertiser 1", out[0].CompanyName)
	assert.Equal(t, "advertiser1@example.com", out[0].Email)
	assert.Equal(t, "a1", out[0].ID)
	assert.Equal(t, 9, out[0].CustomWeight)
}

func TestSettingsDefaults(t *testing.T) {
	svc, store, _ := newAdmin(t)
	store.EXPECT().Settings(mock.Anything).Return(domain.Settings{}, nil)

	s, err := svc.Settings(context.Background())
	require.NoError(t, err)
	for _, p := range domain.PagePlacements {
		assert.True(t, s.Enabled(p))
		assert.True(t, s.Placements[p])
	}
}

func TestSaveSettingsRejectsUnknownPlacement(t *testing.T) {
	svc, _, _ := newAdmin(t)
	err := svc.SaveSettings(context.Background(), domain.Settings{Placements: map[domain.Placement]bool{"popup": true}})
	assert.True(t, domain.IsValidationError(err))
}

func TestImagesDelegatesToCatalog(t *testing.T) {
	svc, _, catalog := newAdmin(t)
	assets := []port.Asset{{Placement: "header", Filename: "a.png", Path: "/ads/header/a.png"}}
	catalog.EXPECT().Scan(mock.Anything).Return(assets, nil)

	out, err := svc.Images(context.Background())
	require.NoError(t, err)
	assert.Equal(t, assets, out)
}

func TestScheduleAndOverview(t *testing.T) {
	now := time.Date(2025, 1, 10, 6, 0, 0, 0, time.UTC)
	advertisers := []domain.Advertiser{
		{ID: "a1", CompanyName: "Acme", Tier: domain.TierGold},
		{ID: "a2", CompanyName: "Beta", Tier: domain.TierSilverLeft},
	}
	campaigns := []domain.Campaign{
		// ends at midnight in 18h: urgent and alerted
		{ID: "c1", AdvertiserID: "a1", Placement: domain.PlacementHeader, Status: domain.StatusActive,
			StartDate: "2025-01-01", EndDate: "2025-01-11", Tier: domain.TierGold, Creative: domain.ImageCreative{}},
		// 66h left: expiring soon only; tier falls back to the advertiser
		{ID: "c2", AdvertiserID: "a2", Placement: domain.PlacementSidebarLeft, Status: domain.StatusActive,
			StartDate: "2025-01-01", EndDate: "2025-01-13", Creative: domain.ImageCreative{}},
		// script campaigns earn nothing
		{ID: "c3", AdvertiserID: "ghost", Placement: domain.PlacementFooter, Status: domain.StatusActive,
			StartDate: "2025-01-01", EndDate: "2025-03-01", Tier: domain.TierBronze, Creative: domain.ScriptCreative{Script: "x"}},
		{ID: "c4", AdvertiserID: "a1", Placement: domain.PlacementFooter, Status: domain.StatusDraft,
			StartDate: "2025-01-01", EndDate: "2025-01-08", Tier: domain.TierBronze},
	}

	svc, store, _ := newAdmin(t)
	store.EXPECT().Advertisers(mock.Anything).Return(advertisers, nil)
	store.EXPECT().Campaigns(mock.Anything).Return(campaigns, nil)

	ov, err := svc.Overview(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, ov.TotalAdvertisers)
	assert.Equal(t, 3, ov.ActiveCampaigns)
	assert.Equal(t, 2, ov.ExpiringSoon)
	assert.Equal(t, 49+29, ov.RevenueEstimate)
	require.Len(t, ov.Alerts, 1)
	assert.Equal(t, port.Alert{CampaignID: "c1", Company: "Acme", Placement: domain.PlacementHeader, Hours: 18}, ov.Alerts[0])

	schedule, err := svc.Schedule(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, schedule, 4)
	assert.Equal(t, 10, schedule[0].DurationDays)
	assert.True(t, schedule[0].Urgent)
	assert.Equal(t, "1d 17h", schedule[0].TimeLeft)
	assert.False(t, schedule[1].Urgent)
	assert.Equal(t, "Unknown", schedule[2].Company)
	assert.Equal(t, "Expired", schedule[3].TimeLeft)
}
