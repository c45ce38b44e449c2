package domain

import (
	"time"
)

// Click is a record of a click on a served creative.
type Click struct {
	ID         string
	CampaignID string
	Placement  Placement
	Link       string
	CreatedAt  time.Time
}
