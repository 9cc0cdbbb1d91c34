package cards

import (
	"context"
	"sort"
	"sync"

	"churn-backend/internal/model"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]model.CardProduct
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]model.CardProduct),
	}
}

func (r *MemoryRepo) List(ctx context.Context) ([]model.CardProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.CardProduct, 0, len(r.data))
	for _, card := range r.data {
		out = append(out, card)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bank != out[j].Bank {
			return out[i].Bank < out[j].Bank
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, cardID string) (model.CardProduct, error) {
	if err := ctx.Err(); err != nil {
		return model.CardProduct{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	card, ok := r.data[cardID]
	if !ok {
		return model.CardProduct{}, ErrNotFound
	}
	return card, nil
}

func (r *MemoryRepo) Create(ctx context.Context, card model.CardProduct) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[card.ID] = card
	return nil
}

func (r *MemoryRepo) SetAvailability(ctx context.Context, cardID string, active bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.data[cardID]
	if !ok {
		return ErrNotFound
	}
	card.IsActive = active
	r.data[cardID] = card
	return nil
}
