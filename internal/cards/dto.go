package cards

import (
	"time"

	"churn-backend/internal/model"
)

// CardResponse is the outward-facing representation of a catalog card.
type CardResponse struct {
	ID                     string    `json:"id"`
	Bank                   string    `json:"bank"`
	Name                   string    `json:"name"`
	AnnualFee              *float64  `json:"annual_fee"`
	WelcomeBonusPoints     *int      `json:"welcome_bonus_points"`
	BonusSpendRequirement  *float64  `json:"bonus_spend_requirement"`
	BonusSpendWindowMonths *int      `json:"bonus_spend_window_months"`
	IsActive               bool      `json:"is_active"`
	Notes                  string    `json:"notes,omitempty"`
	ApplicationLink        string    `json:"application_link,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

func toResponse(card model.CardProduct) CardResponse {
	return CardResponse{
		ID:                     card.ID,
		Bank:                   card.Bank,
		Name:                   card.Name,
		AnnualFee:              card.AnnualFee,
		WelcomeBonusPoints:     card.WelcomeBonusPoints,
		BonusSpendRequirement:  card.BonusSpendRequirement,
		BonusSpendWindowMonths: card.BonusSpendWindowMonths,
		IsActive:               card.IsActive,
		Notes:                  card.Notes,
		ApplicationLink:        card.ApplicationLink,
		CreatedAt:              card.CreatedAt,
	}
}

func toResponses(cardList []model.CardProduct) []CardResponse {
	out := make([]CardResponse, 0, len(cardList))
	for _, card := range cardList {
		out = append(out, toResponse(card))
	}
	return out
}
