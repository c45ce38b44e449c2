package domain

import "encoding/json"

// ResolvedAd is a campaign prepared for one placement: its creative is the
// asset pair for that slot and its weight is final. It is rebuilt on every
// serving decision and never stored.
type ResolvedAd struct {
	ID           string
	AdvertiserID string
	Placement    Placement
	Creative     Creative
	Link         string
	AltText      string
	Weight       int
	Tier         Tier
	Active       bool
	StartDate    string
	EndDate      string
	// PastEndDate is set when the end date lies before the serving day.
	// Such campaigns are still served while their status stays active.
	PastEndDate bool
}

// SelectionWeight implements rotation.Weighted.
func (a ResolvedAd) SelectionWeight() int { return a.Weight }

// Script returns the desktop script in script mode and "" otherwise.
func (a ResolvedAd) Script() string {
	if sc, ok := a.Creative.(ScriptCreative); ok {
		return sc.Script
	}
	return ""
}

// IsAdSense reports whether the ad carries an AdSense tag.
func (a ResolvedAd) IsAdSense() bool {
	s := a.Script()
	return s != "" && IsAdSenseScript(s)
}

type resolvedAdDoc struct {
	ID             string `json:"id"`
	Mode           string `json:"mode"`
	ImageURL       string `json:"imageUrl,omitempty"`
	MobileImageURL string `json:"mobileImageUrl,omitempty"`
	Script         string `json:"script,omitempty"`
	MobileScript   string `json:"mobileScript,omitempty"`
	LinkURL        string `json:"linkUrl"`
	AltText        string `json:"altText"`
	Active         bool   `json:"active"`
	StartDate      string `json:"startDate,omitempty"`
	EndDate        string `json:"endDate,omitempty"`
	Weight         int    `json:"weight"`
	Tier           Tier   `json:"tier"`
}

func (a ResolvedAd) MarshalJSON() ([]byte, error) {
	doc := resolvedAdDoc{
		ID:        a.ID,
		LinkURL:   a.Link,
		AltText:   a.AltText,
		Active:    a.Active,
		StartDate: a.StartDate,
		EndDate:   a.EndDate,
		Weight:    a.Weight,
		Tier:      a.Tier,
	}
	switch cr := a.Creative.(type) {
	case ScriptCreative:
		doc.Mode = string(ModeScript)
		doc.Script = cr.Script
		doc.MobileScript = cr.MobileScript
	case ImageCreative:
		doc.Mode = string(ModeImage)
		doc.ImageURL = cr.ImageURL
		doc.MobileImageURL = cr.MobileImageURL
	}
	return json.Marshal(doc)
}
