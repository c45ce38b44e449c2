package domain

// Outcome is what an ad slot shows after selection.
type Outcome string

const (
	// OutcomeCreative renders the selected campaign.
	OutcomeCreative Outcome = "creative"
	// OutcomePlaceholder renders the self-promotion block.
	OutcomePlaceholder Outcome = "placeholder"
	// OutcomeNone collapses the slot. AdSense-exclusive slots must not
	// show a fallback of any kind.
	OutcomeNone Outcome = "none"
)
