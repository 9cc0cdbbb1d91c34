package wallet

import (
	"context"
	"sync"

	"churn-backend/internal/model"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]model.CardRecord // userID -> records, insertion order
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]model.CardRecord),
	}
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]model.CardRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := r.data[userID]
	out := make([]model.CardRecord, len(records))
	copy(out, records)
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, recordID string) (model.CardRecord, error) {
	if err := ctx.Err(); err != nil {
		return model.CardRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.data[userID] {
		if rec.ID == recordID {
			return rec, nil
		}
	}
	return model.CardRecord{}, ErrNotFound
}

func (r *MemoryRepo) Create(ctx context.Context, record model.CardRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[record.UserID] = append(r.data[record.UserID], record)
	return nil
}

func (r *MemoryRepo) Cancel(ctx context.Context, userID, recordID, cancellationDate string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	records := r.data[userID]
	for i := range records {
		if records[i].ID == recordID {
			records[i].CancellationDate = cancellationDate
			records[i].Status = model.StatusCancelled
			r.data[userID] = records
			return nil
		}
	}
	return ErrNotFound
}
