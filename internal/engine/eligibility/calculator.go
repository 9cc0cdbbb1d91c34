// Package eligibility derives per-issuer cooling-off state from a user's
// card history. Everything here is a pure function over caller-supplied
// snapshots; nothing is fetched or persisted.
package eligibility

import (
	"sort"
	"strings"
	"time"

	"churn-backend/internal/model"
)

// Cooling-off periods in calendar months. Amex counts any new application
// as the restrictive trigger; other issuers count the cancellation.
const (
	AmexCoolingMonths    = 18
	DefaultCoolingMonths = 12
)

// DefaultEligibleWhenUnknown is the policy applied to issuers with no usable
// history: they are treated as eligible now. Kept as a named constant so the
// fallback is a documented decision rather than an accidental branch.
const DefaultEligibleWhenUnknown = true

// dateLayout is the ISO calendar-date layout history records use.
const dateLayout = "2006-01-02"

// Canonicalize normalizes an issuer name for grouping and lookup. Total over
// all inputs; distinct casings of one issuer must collapse to one key.
func Canonicalize(bank string) string {
	return strings.ToLower(strings.TrimSpace(bank))
}

// IsAmexFamily reports whether the issuer falls under the 18-month
// any-new-card rule.
func IsAmexFamily(bank string) bool {
	b := Canonicalize(bank)
	return strings.Contains(b, "amex") || strings.Contains(b, "american express")
}

// Compute returns one BankEligibility per issuer that has at least one record
// with a usable relevant date, ordered by canonical issuer name so repeated
// calls over the same snapshot are byte-for-byte identical.
func Compute(records []model.CardRecord, now time.Time) []model.BankEligibility {
	latest := make(map[string]time.Time)
	display := make(map[string]string)

	for _, rec := range records {
		key := Canonicalize(rec.Bank)
		if key == "" {
			continue
		}

		raw := rec.CancellationDate
		if IsAmexFamily(rec.Bank) {
			raw = rec.ApplicationDate
		}
		relevant, ok := parseDate(raw)
		if !ok {
			continue
		}

		if existing, seen := latest[key]; !seen || relevant.After(existing) {
			latest[key] = relevant
		}
		if _, seen := display[key]; !seen {
			display[key] = rec.Bank
		}
	}

	keys := make([]string, 0, len(latest))
	for key := range latest {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]model.BankEligibility, 0, len(keys))
	for _, key := range keys {
		relevant := latest[key]
		months := DefaultCoolingMonths
		if IsAmexFamily(key) {
			months = AmexCoolingMonths
		}
		eligibleAt := AddMonths(relevant, months)
		out = append(out, model.BankEligibility{
			Bank:             display[key],
			LastRelevantDate: relevant,
			EligibleAt:       eligibleAt,
			Eligible:         !now.Before(eligibleAt),
		})
	}
	return out
}

// Index computes eligibility and keys it by canonical issuer name.
func Index(records []model.CardRecord, now time.Time) map[string]model.BankEligibility {
	entries := Compute(records, now)
	index := make(map[string]model.BankEligibility, len(entries))
	for _, entry := range entries {
		index[Canonicalize(entry.Bank)] = entry
	}
	return index
}

// AddMonths adds calendar months preserving the day-of-month where possible,
// clamping to the last valid day otherwise (Jan 31 + 1 month lands on the
// last day of February). time.Time.AddDate normalizes overflow into the next
// month instead, which is the wrong behavior for cooling-off dates.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

// parseDate parses an ISO calendar date. Malformed or empty input is treated
// as absent rather than surfaced as an error; a bad date must never produce
// a nonsensical eligible-at.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
