// Package scoring assigns a desirability score to a single card offer.
package scoring

import "churn-backend/internal/model"

// Scoring constants. These weights define the relative importance of bonus
// efficiency versus net dollar value and must not be tuned casually: changing
// any of them reorders every ranking downstream.
const (
	// PointValue is the assumed redemption value of one point, in dollars.
	PointValue = 0.01
	// netValueScale normalizes net dollar value onto the same scale as
	// points-per-dollar.
	netValueScale = 100
	// efficiencyWeight multiplies points-per-dollar in the final score.
	efficiencyWeight = 10
)

// Score computes the desirability of a card offer; higher is better. Pure,
// total and deterministic: identical input always yields a bit-identical
// float.
//
// score = (bonus / spendRequirement) * 10 + (bonus * 0.01 - annualFee) / 100
//
// Missing bonus counts as 0. A missing or non-positive spend requirement
// counts as 1, which avoids dividing by zero without handing no-spend
// bonuses an unbounded score. Missing annual fee counts as 0.
func Score(card model.CardProduct) float64 {
	bonus := float64(card.Bonus())

	spend := 1.0
	if card.BonusSpendRequirement != nil && *card.BonusSpendRequirement > 0 {
		spend = *card.BonusSpendRequirement
	}

	fee := 0.0
	if card.AnnualFee != nil {
		fee = *card.AnnualFee
	}

	pointsPerDollar := bonus / spend
	netValue := bonus*PointValue - fee

	return pointsPerDollar*efficiencyWeight + netValue/netValueScale
}
