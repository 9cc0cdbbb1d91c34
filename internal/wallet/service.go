package wallet

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"churn-backend/internal/model"
)

// Service contains business logic for user card history.
type Service struct {
	Repo Repo

	// OnChange, when set, runs after a successful write so dependent
	// caches can drop stale entries for the user.
	OnChange func(ctx context.Context, userID string)
}

func (s *Service) notifyChange(ctx context.Context, userID string) {
	if s.OnChange != nil {
		s.OnChange(ctx, userID)
	}
}

// List returns the user's full card history, oldest first.
func (s *Service) List(ctx context.Context, userID string) ([]model.CardRecord, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Add stores a new history record. Dates are accepted as-is: the eligibility
// calculator treats anything unparsable as absent, so strict validation here
// would only reject imports the engine already tolerates.
func (s *Service) Add(ctx context.Context, record model.CardRecord) (model.CardRecord, error) {
	record.Bank = strings.TrimSpace(record.Bank)
	record.CardID = strings.TrimSpace(record.CardID)
	if record.UserID == "" || record.Bank == "" || record.CardID == "" {
		return model.CardRecord{}, ErrInvalidInput
	}
	if record.Status == "" {
		record.Status = model.StatusActive
	}
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()

	if err := s.Repo.Create(ctx, record); err != nil {
		return model.CardRecord{}, err
	}
	s.notifyChange(ctx, record.UserID)
	return record, nil
}

// Cancel marks a record cancelled as of the given date, defaulting to today.
func (s *Service) Cancel(ctx context.Context, userID, recordID, cancellationDate string) (model.CardRecord, error) {
	if userID == "" || strings.TrimSpace(recordID) == "" {
		return model.CardRecord{}, ErrInvalidInput
	}
	if strings.TrimSpace(cancellationDate) == "" {
		cancellationDate = time.Now().UTC().Format("2006-01-02")
	}
	if err := s.Repo.Cancel(ctx, userID, recordID, cancellationDate); err != nil {
		return model.CardRecord{}, err
	}
	s.notifyChange(ctx, userID)
	return s.Repo.GetByID(ctx, userID, recordID)
}
