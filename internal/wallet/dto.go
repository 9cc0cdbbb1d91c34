package wallet

import (
	"time"

	"churn-backend/internal/model"
)

// RecordResponse is the outward-facing representation of a history record.
type RecordResponse struct {
	ID               string    `json:"id"`
	Bank             string    `json:"bank"`
	CardID           string    `json:"card_id"`
	ApplicationDate  string    `json:"application_date,omitempty"`
	CancellationDate string    `json:"cancellation_date,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

func toResponse(rec model.CardRecord) RecordResponse {
	return RecordResponse{
		ID:               rec.ID,
		Bank:             rec.Bank,
		CardID:           rec.CardID,
		ApplicationDate:  rec.ApplicationDate,
		CancellationDate: rec.CancellationDate,
		Status:           rec.Status,
		CreatedAt:        rec.CreatedAt,
	}
}

func toResponses(records []model.CardRecord) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toResponse(rec))
	}
	return out
}
