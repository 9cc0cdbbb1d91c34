package recommendations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"churn-backend/internal/cards"
	"churn-backend/internal/engine/eligibility"
	"churn-backend/internal/engine/recommend"
	"churn-backend/internal/model"
	"churn-backend/internal/shared/cache"
	"churn-backend/internal/shared/telemetry"
	"churn-backend/internal/wallet"
)

// Service orchestrates the pure engine: it loads catalog and history
// snapshots, hands them to the ranker, and memoizes the serialized result.
// All business rules live in internal/engine; nothing here reorders or
// filters.
type Service struct {
	Cards        cards.Repo
	Wallet       wallet.Repo
	Cache        cache.Cache
	CacheTTL     time.Duration
	DefaultLimit int

	// Now is the clock used for eligibility; overridable in tests.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Recommend returns the ranked recommendation list for a user. Results are
// cached per user+limit for CacheTTL; the snapshot may be up to that much
// stale, which callers accept by configuring the TTL.
func (s *Service) Recommend(ctx context.Context, userID string, limit int) (RecommendationsResponse, error) {
	if limit <= 0 {
		limit = s.DefaultLimit
	}

	key := fmt.Sprintf("recs:%s:%d", userID, limit)
	if s.Cache != nil {
		if raw, ok := s.Cache.Get(ctx, key); ok {
			var cached RecommendationsResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
			// Corrupt entries are dropped and recomputed.
			_ = s.Cache.Delete(ctx, key)
		}
	}

	catalog, err := s.Cards.List(ctx)
	if err != nil {
		return RecommendationsResponse{}, err
	}
	history, err := s.Wallet.ListByUser(ctx, userID)
	if err != nil {
		return RecommendationsResponse{}, err
	}

	recs := recommend.Rank(catalog, history, limit, s.now())
	resp := toRecommendationsResponse(recs)

	if s.Cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.Cache.Set(ctx, key, string(data), s.CacheTTL); err != nil {
				telemetry.Warn("recommendations.cache_set_failed", map[string]any{
					"user_id": userID,
					"error":   err.Error(),
				})
			}
		}
	}
	return resp, nil
}

// Eligibility returns the per-issuer cooling-off state for a user.
func (s *Service) Eligibility(ctx context.Context, userID string) ([]model.BankEligibility, error) {
	history, err := s.Wallet.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return eligibility.Compute(history, s.now()), nil
}

// Invalidate drops cached recommendation entries for a user after a wallet
// write. Only the common limits are addressed; anything else ages out by TTL.
func (s *Service) Invalidate(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	for _, limit := range []int{s.DefaultLimit, recommend.DefaultLimit} {
		_ = s.Cache.Delete(ctx, fmt.Sprintf("recs:%s:%d", userID, limit))
	}
}
