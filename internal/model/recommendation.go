package model

import "time"

// BankEligibility is the computed per-issuer cooling-off state. Derived on
// every call; never persisted.
type BankEligibility struct {
	Bank             string
	LastRelevantDate time.Time
	EligibleAt       time.Time
	Eligible         bool
}

// Recommendation pairs a catalog card with its score and a human-readable
// justification. EligibleAt is nil when the issuer has no binding
// cooling-off constraint.
type Recommendation struct {
	Card        CardProduct
	Score       float64
	Reason      string
	EligibleAt  *time.Time
	EligibleNow bool
}
