package model

// PathCard is the card-shaped entry inside an externally planned path. Only
// identity and availability matter here; Available is a pointer because the
// planner may omit the flag, and omission means "still available".
type PathCard struct {
	ID        string
	Name      string
	Bank      string
	Available *bool
}

// Unavailable reports whether the card has been explicitly marked gone.
func (c PathCard) Unavailable() bool {
	return c.Available != nil && !*c.Available
}

// MultiCardPath is one candidate multi-step acquisition plan. The zeroth
// path in a list is the currently recommended plan.
type MultiCardPath struct {
	Cards []PathCard
}

// UnavailableCardInfo identifies a discontinued card found inside a path.
type UnavailableCardInfo struct {
	CardID              string
	CardName            string
	CardBank            string
	IsInRecommendedPath bool
	PathIndex           int
}
