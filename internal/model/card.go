package model

import "time"

// CardProduct is a reward card catalog entry, independent of any user's
// ownership. Nullable catalog fields are pointers; absent values resolve to
// documented defaults inside the scoring model.
type CardProduct struct {
	ID                     string
	Bank                   string
	Name                   string
	AnnualFee              *float64
	WelcomeBonusPoints     *int
	BonusSpendRequirement  *float64
	BonusSpendWindowMonths *int
	IsActive               bool
	Notes                  string
	ApplicationLink        string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Bonus returns the welcome bonus points, defaulting to 0 when absent.
func (c CardProduct) Bonus() int {
	if c.WelcomeBonusPoints == nil {
		return 0
	}
	return *c.WelcomeBonusPoints
}
