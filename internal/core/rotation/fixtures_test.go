package rotation

import "docsuite-ads/internal/core/domain"

func imageCampaign(id string, placement domain.Placement, tier domain.Tier) domain.Campaign {
	return domain.Campaign{
		ID:           id,
		AdvertiserID: "adv-" + id,
		Placement:    placement,
		Status:       domain.StatusActive,
		StartDate:    "2024-01-01",
		EndDate:      "2024-01-31",
		Tier:         tier,
		Creative:     domain.ImageCreative{ImageURL: "/ads/" + id + ".png", MobileImageURL: "/ads/" + id + "-m.png"},
		Link:         "https://example.com/" + id,
	}
}

func scriptCampaign(id string, placement domain.Placement, script string) domain.Campaign {
	c := imageCampaign(id, placement, domain.TierBronze)
	c.Creative = domain.ScriptCreative{Script: script}
	return c
}

const adSenseTag = `<script async src="https://pagead2.googlesyndication.com/pagead/js/adsbygoogle.js?client=ca-pub-1"></script>
<ins class="adsbygoogle" style="display:block" data-ad-client="ca-pub-1" data-ad-slot="42"></ins>
<script>(adsbygoogle = window.adsbygoogle || []).push({});</script>`
