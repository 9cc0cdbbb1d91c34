package cards

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"churn-backend/internal/model"
)

// Service contains business logic for the card catalog.
type Service struct {
	Repo Repo
}

// List returns the full catalog snapshot.
func (s *Service) List(ctx context.Context) ([]model.CardProduct, error) {
	return s.Repo.List(ctx)
}

// Get returns a single catalog card.
func (s *Service) Get(ctx context.Context, cardID string) (model.CardProduct, error) {
	if strings.TrimSpace(cardID) == "" {
		return model.CardProduct{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, cardID)
}

// Create validates and stores a new catalog card. New cards default to
// available unless the caller says otherwise.
func (s *Service) Create(ctx context.Context, card model.CardProduct) (model.CardProduct, error) {
	card.Bank = strings.TrimSpace(card.Bank)
	card.Name = strings.TrimSpace(card.Name)
	if card.Bank == "" || card.Name == "" {
		return model.CardProduct{}, ErrInvalidInput
	}
	if card.WelcomeBonusPoints != nil && *card.WelcomeBonusPoints < 0 {
		return model.CardProduct{}, ErrInvalidInput
	}
	if card.ID == "" {
		card.ID = uuid.NewString()
	}
	card.CreatedAt = time.Now().UTC()
	card.UpdatedAt = card.CreatedAt

	if err := s.Repo.Create(ctx, card); err != nil {
		return model.CardProduct{}, err
	}
	return card, nil
}

// SetAvailability flips the availability flag; paths referencing a card
// discontinued here start showing up in path validation.
func (s *Service) SetAvailability(ctx context.Context, cardID string, active bool) error {
	if strings.TrimSpace(cardID) == "" {
		return ErrInvalidInput
	}
	return s.Repo.SetAvailability(ctx, cardID, active)
}
