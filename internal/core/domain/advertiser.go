package domain

import "fmt"

// Advertiser is a paying client.
type Advertiser struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Tier        Tier   `json:"tier"`
	Notes       string `json:"notes"`
	Website     string `json:"website"`
	// CustomWeight overrides the tier weight for every campaign of the
	// advertiser that has no override of its own.
	CustomWeight int `json:"customWeight,omitempty"`
}

// Anonymized returns a copy with contact details replaced by placeholders,
// numbered from 1 by position. Ids, tiers and weights are kept so the
// published documents still resolve.
func (a Advertiser) Anonymized(index int) Advertiser {
	n := index + 1
	a.CompanyName = fmt.Sprintf("Advertiser %d", n)
	a.ContactName = fmt.Sprintf("Contact %d", n)
	a.Email = fmt.Sprintf("advertiser%d@example.com", n)
	a.Notes = "Private notes hidden for public deployment."
	a.Website = "https://example.com"
	return a
}

// FindAdvertiser returns the advertiser with the given id.
func FindAdvertiser(advertisers []Advertiser, id string) (Advertiser, bool) {
	for _, a := range advertisers {
		if a.ID == id {
			return a, true
		}
	}
	return Advertiser{}, false
}
