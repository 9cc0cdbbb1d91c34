package model

import "time"

// Card record statuses. Upstream imports may carry other terminal states;
// only StatusActive has engine-visible meaning.
const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

// CardRecord is one user's historical relationship with a catalog card.
// Dates are ISO strings ("2006-01-02") because history rows are often
// imported from scraped or user-entered data; the eligibility calculator
// treats anything unparsable as absent.
type CardRecord struct {
	ID               string
	UserID           string
	Bank             string
	CardID           string
	ApplicationDate  string
	CancellationDate string
	Status           string
	CreatedAt        time.Time
}
