package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsuite-ads/internal/core/domain"
)

var now = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func ids(ads []domain.ResolvedAd) []string {
	out := make([]string, 0, len(ads))
	for _, a := range ads {
		out = append(out, a.ID)
	}
	return out
}

func TestResolveFiltersByStatusAndPlacement(t *testing.T) {
	draft := imageCampaign("draft", domain.PlacementHeader, domain.TierGold)
	draft.Status = domain.StatusDraft
	expired := imageCampaign("expired", domain.PlacementHeader, domain.TierGold)
	expired.Status = domain.StatusExpired
	scheduled := imageCampaign("scheduled", domain.PlacementHeader, domain.TierGold)
	scheduled.Status = domain.StatusScheduled

	campaigns := []domain.Campaign{
		imageCampaign("h1", domain.PlacementHeader, domain.TierGold),
		draft,
		expired,
		scheduled,
		imageCampaign("f1", domain.PlacementFooter, domain.TierBronze),
		imageCampaign("combo", domain.PlacementCombo, domain.TierPlatinum),
		imageCampaign("sl", domain.PlacementSidebarLeft, domain.TierSilverLeft),
		imageCampaign("sr", domain.PlacementSidebarRight, domain.TierSilverRight),
	}
	settings := domain.DefaultSettings()

	assert.Equal(t, []string{"h1", "combo"}, ids(Resolve(domain.PlacementHeader, campaigns, nil, settings, now)))
	assert.Equal(t, []string{"f1", "combo"}, ids(Resolve(domain.PlacementFooter, campaigns, nil, settings, now)))
	assert.Equal(t, []string{"sl"}, ids(Resolve(domain.PlacementSidebarLeft, campaigns, nil, settings, now)))
	assert.Equal(t, []string{"sr"}, ids(Resolve(domain.PlacementSidebarRight, campaigns, nil, settings, now)))
	assert.Empty(t, Resolve(domain.PlacementInterstitial, campaigns, nil, settings, now))

	for _, ad := range Resolve(domain.PlacementHeader, campaigns, nil, settings, now) {
		assert.True(t, ad.Active)
		assert.Equal(t, domain.PlacementHeader, ad.Placement)
	}
}

func TestResolveDisabledPlacement(t *testing.T) {
	campaigns := []domain.Campaign{
		imageCampaign("h1", domain.PlacementHeader, domain.TierGold),
		imageCampaign("combo", domain.PlacementCombo, domain.TierPlatinum),
	}
	settings := domain.Settings{Placements: map[domain.Placement]bool{domain.PlacementHeader: false}}

	ads := Resolve(domain.PlacementHeader, campaigns, nil, settings, now)
	require.NotNil(t, ads)
	assert.Empty(t, ads)

	// other slots are unaffected
	assert.Equal(t, []string{"combo"}, ids(Resolve(domain.PlacementFooter, campaigns, nil, settings, now)))
}

func TestResolveWeights(t *testing.T) {
	a := imageCampaign("a", domain.PlacementHeader, domain.TierGold)
	b := imageCampaign("b", domain.PlacementHeader, domain.TierBronze)
	b.CustomWeight = 20
	legacy := imageCampaign("legacy", domain.PlacementHeader, "")
	byAdvertiser := imageCampaign("adv", domain.PlacementHeader, domain.TierGold)
	negative := imageCampaign("neg", domain.PlacementHeader, domain.TierPlatinum)
	negative.CustomWeight = -3

	advertisers := []domain.Advertiser{
		{ID: "adv-adv", CustomWeight: 12},
		// the advertiser is platinum now but the campaign was booked as bronze
		{ID: "adv-legacy", Tier: domain.TierPlatinum},
		{ID: "adv-b", CustomWeight: 99},
	}

	ads := Resolve(domain.PlacementHeader, []domain.Campaign{a, b, legacy, byAdvertiser, negative}, advertisers, domain.DefaultSettings(), now)
	require.Len(t, ads, 5)

	weights := map[string]int{}
	tiers := map[string]domain.Tier{}
	for _, ad := range ads {
		weights[ad.ID] = ad.Weight
		tiers[ad.ID] = ad.Tier
	}
	assert.Equal(t, 7, weights["a"])
	assert.Equal(t, 20, weights["b"], "campaign override beats advertiser override")
	assert.Equal(t, 5, weights["legacy"])
	assert.Equal(t, domain.TierBronze, tiers["legacy"])
	assert.Equal(t, 12, weights["adv"])
	assert.Equal(t, 10, weights["neg"], "non-positive override falls through to the tier")
}

func TestResolveComboAssets(t *testing.T) {
	combo := imageCampaign("combo", domain.PlacementCombo, domain.TierPlatinum)
	combo.Creative = domain.ImageCreative{
		ImageURL:             "/ads/header.png",
		MobileImageURL:       "/ads/header-m.png",
		FooterImageURL:       "/ads/footer.png",
		FooterMobileImageURL: "/ads/footer-m.png",
	}
	settings := domain.DefaultSettings()

	header := Resolve(domain.PlacementHeader, []domain.Campaign{combo}, nil, settings, now)
	footer := Resolve(domain.PlacementFooter, []domain.Campaign{combo}, nil, settings, now)
	require.Len(t, header, 1)
	require.Len(t, footer, 1)

	assert.Equal(t, domain.ImageCreative{ImageURL: "/ads/header.png", MobileImageURL: "/ads/header-m.png"}, header[0].Creative)
	assert.Equal(t, domain.ImageCreative{ImageURL: "/ads/footer.png", MobileImageURL: "/ads/footer-m.png"}, footer[0].Creative)
}

func TestResolveComboFooterFallbacks(t *testing.T) {
	images := imageCampaign("img", domain.PlacementCombo, domain.TierPlatinum)
	images.Creative = domain.ImageCreative{ImageURL: "/ads/header.png", MobileImageURL: "/ads/header-m.png"}
	scripts := scriptCampaign("js", domain.PlacementCombo, "<div>header</div>")
	scripts.Creative = domain.ScriptCreative{Script: "<div>header</div>", MobileScript: "<div>m</div>"}

	footer := Resolve(domain.PlacementFooter, []domain.Campaign{images, scripts}, nil, domain.DefaultSettings(), now)
	require.Len(t, footer, 2)

	// images fall back to the header assets, scripts do not
	assert.Equal(t, domain.ImageCreative{ImageURL: "/ads/header.png", MobileImageURL: "/ads/header-m.png"}, footer[0].Creative)
	assert.Equal(t, domain.ScriptCreative{}, footer[1].Creative)
}

// An active campaign keeps serving after its end date until the status is
// changed. This is intended behaviour.
func TestResolveServesActiveCampaignPastEndDate(t *testing.T) {
	stale := imageCampaign("stale", domain.PlacementHeader, domain.TierGold)
	stale.StartDate, stale.EndDate = "2023-01-01", "2023-01-08"

	ads := Resolve(domain.PlacementHeader, []domain.Campaign{stale}, nil, domain.DefaultSettings(), now)
	require.Len(t, ads, 1)
	assert.True(t, ads[0].PastEndDate)

	current := Resolve(domain.PlacementHeader, []domain.Campaign{imageCampaign("c", domain.PlacementHeader, domain.TierGold)}, nil, domain.DefaultSettings(), now)
	require.Len(t, current, 1)
	assert.False(t, current[0].PastEndDate)
}

func TestResolveNilCreative(t *testing.T) {
	c := imageCampaign("bare", domain.PlacementFooter, domain.TierBronze)
	c.Creative = nil

	ads := Resolve(domain.PlacementFooter, []domain.Campaign{c}, nil, domain.DefaultSettings(), now)
	require.Len(t, ads, 1)
	assert.Equal(t, domain.ImageCreative{}, ads[0].Creative)
}
