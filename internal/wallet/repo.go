package wallet

import (
	"context"

	"churn-backend/internal/model"
)

// Repo defines persistence operations for user card history.
type Repo interface {
	ListByUser(ctx context.Context, userID string) ([]model.CardRecord, error)
	GetByID(ctx context.Context, userID, recordID string) (model.CardRecord, error)
	Create(ctx context.Context, record model.CardRecord) error
	Cancel(ctx context.Context, userID, recordID, cancellationDate string) error
}
