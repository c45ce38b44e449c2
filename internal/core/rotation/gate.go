package rotation

import "docsuite-ads/internal/core/domain"

// Decide maps the selector result to what the slot shows.
func Decide(selected, adSenseExclusive bool) domain.Outcome {
	switch {
	case selected:
		return domain.OutcomeCreative
	case adSenseExclusive:
		return domain.OutcomeNone
	default:
		return domain.OutcomePlaceholder
	}
}
