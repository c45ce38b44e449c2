// Package rotation decides which campaign fills a placement. Resolve turns
// the store documents into weighted candidates, Partition applies the
// AdSense exclusivity rule and PickOne samples one candidate by weight.
package rotation

import (
	"time"

	"docsuite-ads/internal/core/domain"
)

// Resolve returns every campaign eligible for placement, prepared for that
// slot. The order follows the campaign list.
//
// Eligibility is the stored status only: an active campaign whose end date
// has passed keeps serving until an operator marks it expired. now is used
// to flag such campaigns, never to drop them.
func Resolve(
	placement domain.Placement,
	campaigns []domain.Campaign,
	advertisers []domain.Advertiser,
	settings domain.Settings,
	now time.Time,
) []domain.ResolvedAd {
	if !settings.Enabled(placement) {
		return []domain.ResolvedAd{}
	}

	today := now.Format(domain.DateLayout)
	ads := make([]domain.ResolvedAd, 0, len(campaigns))
	for _, c := range campaigns {
		if !matches(c, placement) {
			continue
		}
		tier := c.EffectiveTier()
		ads = append(ads, domain.ResolvedAd{
			ID:           c.ID,
			AdvertiserID: c.AdvertiserID,
			Placement:    placement,
			Creative:     creativeFor(c, placement),
			Link:         c.Link,
			AltText:      "Advertisement provided by " + c.AdvertiserID,
			Weight:       effectiveWeight(c, advertisers, tier),
			Tier:         tier,
			Active:       true,
			StartDate:    c.StartDate,
			EndDate:      c.EndDate,
			// both sides are YYYY-MM-DD, so string order is date order
			PastEndDate: c.EndDate != "" && c.EndDate < today,
		})
	}
	return ads
}

func matches(c domain.Campaign, placement domain.Placement) bool {
	if c.Status != domain.StatusActive {
		return false
	}
	if c.Placement == placement {
		return true
	}
	return placement.AcceptsCombo() && c.IsCombo()
}

// effectiveWeight applies the override chain: campaign, advertiser, tier.
func effectiveWeight(c domain.Campaign, advertisers []domain.Advertiser, tier domain.Tier) int {
	if c.CustomWeight > 0 {
		return c.CustomWeight
	}
	if a, ok := domain.FindAdvertiser(advertisers, c.AdvertiserID); ok && a.CustomWeight > 0 {
		return a.CustomWeight
	}
	return domain.TierDefaults(tier).Weight
}

func creativeFor(c domain.Campaign, placement domain.Placement) domain.Creative {
	cr := c.CreativeOrDefault()
	if c.IsCombo() && placement == domain.PlacementFooter {
		return cr.ForFooter()
	}
	return cr.Primary()
}
