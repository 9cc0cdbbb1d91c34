// Package recommend filters, scores and orders the card catalog against a
// user's history. Like the rest of the engine it is a pure transformation:
// the caller supplies consistent snapshots and a clock reading.
package recommend

import (
	"sort"
	"time"

	"churn-backend/internal/engine/eligibility"
	"churn-backend/internal/engine/scoring"
	"churn-backend/internal/model"
)

// DefaultLimit is the recommendation list size when the caller does not ask
// for one.
const DefaultLimit = 5

// Rank builds the recommendation list: compute per-issuer eligibility, drop
// cards the user actively holds and cards with no positive welcome bonus,
// score and annotate the rest, then order eligible-now first and by
// descending score within each group.
func Rank(catalog []model.CardProduct, history []model.CardRecord, limit int, now time.Time) []model.Recommendation {
	if limit <= 0 {
		limit = DefaultLimit
	}

	index := eligibility.Index(history, now)
	held := activeCardIDs(history)

	recs := make([]model.Recommendation, 0, len(catalog))
	for _, card := range catalog {
		if held[card.ID] {
			continue
		}
		if card.Bonus() <= 0 {
			continue
		}

		rec := model.Recommendation{
			Card:        card,
			Score:       scoring.Score(card),
			EligibleNow: eligibility.DefaultEligibleWhenUnknown,
		}
		if entry, ok := index[eligibility.Canonicalize(card.Bank)]; ok {
			eligibleAt := entry.EligibleAt
			rec.EligibleAt = &eligibleAt
			rec.EligibleNow = entry.Eligible
		}
		rec.Reason = reason(rec, now)
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].EligibleNow != recs[j].EligibleNow {
			return recs[i].EligibleNow
		}
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

func activeCardIDs(history []model.CardRecord) map[string]bool {
	held := make(map[string]bool)
	for _, rec := range history {
		if rec.Status == model.StatusActive && rec.CardID != "" {
			held[rec.CardID] = true
		}
	}
	return held
}
