package domain

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the calendar date format used for campaign start and end
// dates in the store.
const DateLayout = "2006-01-02"

// Tier is a subscription class. It determines the default duration, weight
// and placement of a campaign.
type Tier string

const (
	TierBronze      Tier = "bronze"
	TierSilverLeft  Tier = "silver-left"
	TierSilverRight Tier = "silver-right"
	TierGold        Tier = "gold"
	TierPlatinum    Tier = "platinum"
	TierUnassigned  Tier = "unassigned"
)

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	_, ok := tierTable[t]
	return ok
}

// TierPolicy holds the defaults derived from a tier. An empty Placement
// means the placement is chosen by the operator.
type TierPolicy struct {
	Weight       int
	Placement    Placement
	DurationDays int
}

var tierTable = map[Tier]TierPolicy{
	TierBronze:      {Weight: 5, Placement: PlacementFooter, DurationDays: 7},
	TierSilverLeft:  {Weight: 6, Placement: PlacementSidebarLeft, DurationDays: 14},
	TierSilverRight: {Weight: 6, Placement: PlacementSidebarRight, DurationDays: 14},
	TierGold:        {Weight: 7, Placement: PlacementHeader, DurationDays: 14},
	TierPlatinum:    {Weight: 10, Placement: PlacementCombo, DurationDays: 30},
	TierUnassigned:  {Weight: 10, DurationDays: 365},
}

// unknownTier applies to tiers missing from the table: bronze weight, one
// week, no automatic placement.
var unknownTier = TierPolicy{Weight: 5, DurationDays: 7}

// TierDefaults returns the defaults of t. It has no side effects.
func TierDefaults(t Tier) TierPolicy {
	if p, ok := tierTable[t]; ok {
		return p
	}
	return unknownTier
}

// ComputeEndDate adds the tier duration to start in whole calendar days.
// The result is a date, not an instant; see TimeLeft for how remaining
// time is measured against it.
func ComputeEndDate(start string, t Tier) (string, error) {
	d, err := time.Parse(DateLayout, start)
	if err != nil {
		return "", fmt.Errorf("invalid start date %q: %w", start, err)
	}
	return d.AddDate(0, 0, TierDefaults(t).DurationDays).Format(DateLayout), nil
}

// TimeLeft returns the time remaining until the end of the end day
// (23:59:59.999 in now's location). The stored end date is start+duration,
// so this is up to a day more generous than the stored date suggests.
// ok is false when the date cannot be parsed.
func TimeLeft(end string, now time.Time) (left time.Duration, ok bool) {
	d, err := time.ParseInLocation(DateLayout, end, now.Location())
	if err != nil {
		return 0, false
	}
	endOfDay := d.Add(24*time.Hour - time.Millisecond)
	return endOfDay.Sub(now), true
}

// FormatTimeLeft renders TimeLeft as "{days}d {hours}h", or "Expired" once
// the end of the end day has passed.
func FormatTimeLeft(end string, now time.Time) string {
	left, ok := TimeLeft(end, now)
	if !ok || left <= 0 {
		return "Expired"
	}
	days := int(left / (24 * time.Hour))
	hours := int((left % (24 * time.Hour)) / time.Hour)
	return fmt.Sprintf("%dd %dh", days, hours)
}

// UntilEndDate measures from now to midnight at the start of the end date.
// The dashboard alerts use this raw cutoff rather than the end-of-day one.
func UntilEndDate(end string, now time.Time) (time.Duration, bool) {
	d, err := time.ParseInLocation(DateLayout, end, now.Location())
	if err != nil {
		return 0, false
	}
	return d.Sub(now), true
}

// CampaignDuration returns the number of days between start and end,
// rounded up.
func CampaignDuration(start, end string) (int, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	return int(math.Ceil(e.Sub(s).Hours() / 24)), nil
}

// TierPrice is the list price used for the dashboard revenue estimate.
func TierPrice(t Tier) int {
	switch t {
	case TierBronze:
		return 9
	case TierSilverLeft, TierSilverRight:
		return 29
	case TierGold:
		return 49
	case TierPlatinum:
		return 99
	default:
		return 0
	}
}
