package cards

import (
	"context"

	"churn-backend/internal/model"
)

// Repo defines persistence operations for the card catalog.
type Repo interface {
	List(ctx context.Context) ([]model.CardProduct, error)
	GetByID(ctx context.Context, cardID string) (model.CardProduct, error)
	Create(ctx context.Context, card model.CardProduct) error
	SetAvailability(ctx context.Context, cardID string, active bool) error
}
