package domain

// Settings is the process-wide ad configuration. It is loaded per request
// and passed explicitly; there is no package-level copy.
type Settings struct {
	// Placements disables a slot when set to false. Missing entries are
	// enabled.
	Placements map[Placement]bool `json:"placements"`
	// AdSense marks a slot AdSense-exclusive when set to true.
	AdSense map[Placement]bool `json:"adsense,omitempty"`
}

// DefaultSettings enables every page placement and makes none exclusive.
func DefaultSettings() Settings {
	s := Settings{Placements: make(map[Placement]bool, len(PagePlacements))}
	for _, p := range PagePlacements {
		s.Placements[p] = true
	}
	return s
}

// IsZero reports whether nothing has been configured yet.
func (s Settings) IsZero() bool {
	return len(s.Placements) == 0 && len(s.AdSense) == 0
}

// Enabled reports whether p serves ads at all.
func (s Settings) Enabled(p Placement) bool {
	enabled, ok := s.Placements[p]
	return !ok || enabled
}

// AdSenseExclusive reports whether p may only serve AdSense creatives.
func (s Settings) AdSenseExclusive(p Placement) bool {
	return s.AdSense[p]
}
