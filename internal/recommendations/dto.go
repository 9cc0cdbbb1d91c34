package recommendations

import (
	"time"

	"churn-backend/internal/model"
)

// CardPayload is the catalog card embedded in a recommendation.
type CardPayload struct {
	ID                     string   `json:"id"`
	Bank                   string   `json:"bank"`
	Name                   string   `json:"name"`
	AnnualFee              *float64 `json:"annual_fee"`
	WelcomeBonusPoints     *int     `json:"welcome_bonus_points"`
	BonusSpendRequirement  *float64 `json:"bonus_spend_requirement"`
	BonusSpendWindowMonths *int     `json:"bonus_spend_window_months"`
	IsActive               bool     `json:"is_active"`
	ApplicationLink        string   `json:"application_link,omitempty"`
}

// RecommendationPayload is one entry of the ranked list.
type RecommendationPayload struct {
	Card        CardPayload `json:"card"`
	Score       float64     `json:"score"`
	Reason      string      `json:"reason"`
	EligibleAt  *time.Time  `json:"eligible_at"`
	EligibleNow bool        `json:"eligible_now"`
}

// RecommendationsResponse is the full response body, also the cached form.
type RecommendationsResponse struct {
	Recommendations []RecommendationPayload `json:"recommendations"`
}

// EligibilityPayload is one issuer's cooling-off state.
type EligibilityPayload struct {
	Bank             string    `json:"bank"`
	LastRelevantDate time.Time `json:"last_relevant_date"`
	EligibleAt       time.Time `json:"eligible_at"`
	Eligible         bool      `json:"eligible"`
}

func toCardPayload(card model.CardProduct) CardPayload {
	return CardPayload{
		ID:                     card.ID,
		Bank:                   card.Bank,
		Name:                   card.Name,
		AnnualFee:              card.AnnualFee,
		WelcomeBonusPoints:     card.WelcomeBonusPoints,
		BonusSpendRequirement:  card.BonusSpendRequirement,
		BonusSpendWindowMonths: card.BonusSpendWindowMonths,
		IsActive:               card.IsActive,
		ApplicationLink:        card.ApplicationLink,
	}
}

func toRecommendationsResponse(recs []model.Recommendation) RecommendationsResponse {
	out := make([]RecommendationPayload, 0, len(recs))
	for _, rec := range recs {
		out = append(out, RecommendationPayload{
			Card:        toCardPayload(rec.Card),
			Score:       rec.Score,
			Reason:      rec.Reason,
			EligibleAt:  rec.EligibleAt,
			EligibleNow: rec.EligibleNow,
		})
	}
	return RecommendationsResponse{Recommendations: out}
}

func toEligibilityPayloads(entries []model.BankEligibility) []EligibilityPayload {
	out := make([]EligibilityPayload, 0, len(entries))
	for _, entry := range entries {
		out = append(out, EligibilityPayload{
			Bank:             entry.Bank,
			LastRelevantDate: entry.LastRelevantDate,
			EligibleAt:       entry.EligibleAt,
			Eligible:         entry.Eligible,
		})
	}
	return out
}
