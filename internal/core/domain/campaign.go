package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Status is the lifecycle state of a campaign. It is set by the operator
// and is not reconciled with the campaign dates.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
)

// Campaign is one advertising booking.
type Campaign struct {
	ID           string
	AdvertiserID string
	Placement    Placement
	Status       Status
	StartDate    string // YYYY-MM-DD, inclusive
	EndDate      string // YYYY-MM-DD, inclusive
	// Tier is captured when the campaign is created and does not follow
	// later changes of the advertiser's tier. Empty for legacy records.
	Tier         Tier
	Creative     Creative
	Link         string
	Clicks       int64
	CustomWeight int
}

// campaignDoc is the flat shape campaigns have in the store documents. A
// non-null script key selects script mode.
type campaignDoc struct {
	ID                   string    `json:"id"`
	AdvertiserID         string    `json:"advertiserId"`
	Placement            Placement `json:"placement"`
	Status               Status    `json:"status"`
	StartDate            string    `json:"startDate"`
	EndDate              string    `json:"endDate"`
	Tier                 Tier      `json:"tier,omitempty"`
	ImageURL             string    `json:"imageUrl,omitempty"`
	MobileImageURL       string    `json:"mobileImageUrl,omitempty"`
	FooterImageURL       string    `json:"footerImageUrl,omitempty"`
	FooterMobileImageURL string    `json:"footerMobileImageUrl,omitempty"`
	Script               *string   `json:"script,omitempty"`
	MobileScript         string    `json:"mobileScript,omitempty"`
	FooterScript         string    `json:"footerScript,omitempty"`
	FooterMobileScript   string    `json:"footerMobileScript,omitempty"`
	Link                 string    `json:"link"`
	Clicks               int64     `json:"clicks"`
	CustomWeight         int       `json:"customWeight,omitempty"`
}

func (c Campaign) MarshalJSON() ([]byte, error) {
	doc := campaignDoc{
		ID:           c.ID,
		AdvertiserID: c.AdvertiserID,
		Placement:    c.Placement,
		Status:       c.Status,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		Tier:         c.Tier,
		Link:         c.Link,
		Clicks:       c.Clicks,
		CustomWeight: c.CustomWeight,
	}
	switch cr := c.Creative.(type) {
	case ScriptCreative:
		script := cr.Script
		doc.Script = &script
		doc.MobileScript = cr.MobileScript
		doc.FooterScript = cr.FooterScript
		doc.FooterMobileScript = cr.FooterMobileScript
	case ImageCreative:
		doc.ImageURL = cr.ImageURL
		doc.MobileImageURL = cr.MobileImageURL
		doc.FooterImageURL = cr.FooterImageURL
		doc.FooterMobileImageURL = cr.FooterMobileImageURL
	}
	return json.Marshal(doc)
}

func (c *Campaign) UnmarshalJSON(data []byte) error {
	var doc campaignDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*c = Campaign{
		ID:           doc.ID,
		AdvertiserID: doc.AdvertiserID,
		Placement:    doc.Placement,
		Status:       doc.Status,
		StartDate:    doc.StartDate,
		EndDate:      doc.EndDate,
		Tier:         doc.Tier,
		Link:         doc.Link,
		Clicks:       doc.Clicks,
		CustomWeight: doc.CustomWeight,
	}
	if doc.Script != nil {
		c.Creative = ScriptCreative{
			Script:             *doc.Script,
			MobileScript:       doc.MobileScript,
			FooterScript:       doc.FooterScript,
			FooterMobileScript: doc.FooterMobileScript,
		}
	} else {
		c.Creative = ImageCreative{
			ImageURL:             doc.ImageURL,
			MobileImageURL:       doc.MobileImageURL,
			FooterImageURL:       doc.FooterImageURL,
			FooterMobileImageURL: doc.FooterMobileImageURL,
		}
	}
	return nil
}

// EffectiveTier is the tier used for serving: the one captured on the
// campaign, or bronze. The advertiser's current tier is never consulted.
func (c Campaign) EffectiveTier() Tier {
	if c.Tier == "" {
		return TierBronze
	}
	return c.Tier
}

// IsCombo reports whether the campaign books both header and footer.
func (c Campaign) IsCombo() bool {
	return c.Placement == PlacementCombo
}

// CreativeOrDefault never returns nil; campaigns without a payload are
// treated as empty image creatives.
func (c Campaign) CreativeOrDefault() Creative {
	if c.Creative == nil {
		return ImageCreative{}
	}
	return c.Creative
}

// ValidationError is returned for campaign and advertiser data the admin
// write path rejects.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks the invariants every stored campaign must hold:
// placement, dates and their order, and a desktop script for script mode.
func (c Campaign) Validate() error {
	if c.Placement == "" {
		return &ValidationError{Msg: "Placement is required"}
	}
	if !c.Placement.Valid() {
		return &ValidationError{Msg: "Unknown placement: " + string(c.Placement)}
	}
	if c.StartDate == "" || c.EndDate == "" {
		return &ValidationError{Msg: "Dates are required"}
	}
	start, err := time.Parse(DateLayout, c.StartDate)
	if err != nil {
		return &ValidationError{Msg: "Invalid start date: " + c.StartDate}
	}
	end, err := time.Parse(DateLayout, c.EndDate)
	if err != nil {
		return &ValidationError{Msg: "Invalid end date: " + c.EndDate}
	}
	if start.After(end) {
		return &ValidationError{Msg: "Start date must be before end date"}
	}
	if c.Tier != "" && !c.Tier.Valid() {
		return &ValidationError{Msg: "Unknown tier: " + string(c.Tier)}
	}
	return nil
}

// ValidateAssets checks the creative fields required when a campaign is
// booked. Combo bookings need their footer assets too.
func (c Campaign) ValidateAssets() error {
	var missing []string
	switch cr := c.CreativeOrDefault().(type) {
	case ScriptCreative:
		if cr.Script == "" {
			missing = append(missing, "Ad Script (Desktop)")
		}
		if c.IsCombo() && cr.FooterScript == "" {
			missing = append(missing, "Footer Script (Desktop)")
		}
	case ImageCreative:
		if cr.ImageURL == "" {
			missing = append(missing, "Desktop Image")
		}
		if c.Link == "" {
			missing = append(missing, "Link")
		}
		if c.IsCombo() || c.Placement == PlacementHeader || c.Placement == PlacementFooter {
			if cr.MobileImageURL == "" {
				missing = append(missing, "Mobile Image")
			}
		}
		if c.IsCombo() {
			if cr.FooterImageURL == "" {
				missing = append(missing, "Footer Desktop Image")
			}
			if cr.FooterMobileImageURL == "" {
				missing = append(missing, "Footer Mobile Image")
			}
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Msg: "Missing required assets: " + strings.Join(missing, ", ")}
	}
	return nil
}
