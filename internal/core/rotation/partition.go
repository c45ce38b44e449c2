package rotation

import "docsuite-ads/internal/core/domain"

// Partition keeps the AdSense ads when placement is AdSense-exclusive and
// the non-AdSense ads otherwise. The two groups never rotate together.
func Partition(ads []domain.ResolvedAd, placement domain.Placement, settings domain.Settings) []domain.ResolvedAd {
	exclusive := settings.AdSenseExclusive(placement)
	out := make([]domain.ResolvedAd, 0, len(ads))
	for _, ad := range ads {
		if ad.IsAdSense() == exclusive {
			out = append(out, ad)
		}
	}
	return out
}
