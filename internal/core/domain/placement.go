package domain

// Placement names a slot on the page where one ad may appear. The combo
// placement is a booking type rather than a slot: it occupies both the
// header and the footer.
type Placement string

const (
	PlacementHeader       Placement = "header"
	PlacementFooter       Placement = "footer"
	PlacementSidebarLeft  Placement = "sidebar-left"
	PlacementSidebarRight Placement = "sidebar-right"
	PlacementCombo        Placement = "header-footer-combo"
	PlacementInterstitial Placement = "interstitial"
)

// PagePlacements lists the slots an ad can be requested for.
var PagePlacements = []Placement{
	PlacementHeader,
	PlacementFooter,
	PlacementSidebarLeft,
	PlacementSidebarRight,
	PlacementInterstitial,
}

// Valid reports whether p is a known placement, including the combo
// booking type.
func (p Placement) Valid() bool {
	switch p {
	case PlacementHeader, PlacementFooter, PlacementSidebarLeft,
		PlacementSidebarRight, PlacementCombo, PlacementInterstitial:
		return true
	}
	return false
}

// Servable reports whether ads can be requested for p. Combo is only a
// booking type and never requested directly.
func (p Placement) Servable() bool {
	return p.Valid() && p != PlacementCombo
}

// IsSidebar reports whether p is one of the skyscraper slots.
func (p Placement) IsSidebar() bool {
	return p == PlacementSidebarLeft || p == PlacementSidebarRight
}

// AcceptsCombo reports whether combo bookings are served in p.
func (p Placement) AcceptsCombo() bool {
	return p == PlacementHeader || p == PlacementFooter
}
