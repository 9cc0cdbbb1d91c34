package recommend

import (
	"fmt"
	"math"
	"time"

	"churn-backend/internal/model"
)

// scoreLabel pairs a strict score threshold with the reason label used when
// the card is eligible now. Evaluated highest-first; the thresholds are
// mutually exclusive by construction. A score landing exactly on a threshold
// takes the lower label (15 is "Good value", 15.01 is "High value").
type scoreLabel struct {
	threshold float64
	label     string
}

var eligibleLabels = []scoreLabel{
	{threshold: 15, label: "High value, eligible now"},
	{threshold: 10, label: "Good value, eligible now"},
}

const eligibleDefaultLabel = "Eligible now"

// daysPerMonth converts a day count into the coarse month figure shown to
// users once the wait is 30 days or longer.
const daysPerMonth = 30

// reason renders the human-readable justification for one recommendation.
// A card that is neither eligible now nor carries a known eligible-at date
// gets an empty reason; the surrounding state already tells the UI there is
// no binding constraint to explain.
func reason(rec model.Recommendation, now time.Time) string {
	if rec.EligibleNow {
		for _, sl := range eligibleLabels {
			if rec.Score > sl.threshold {
				return sl.label
			}
		}
		return eligibleDefaultLabel
	}

	if rec.EligibleAt == nil {
		return ""
	}

	days := daysUntil(now, *rec.EligibleAt)
	if days < daysPerMonth {
		return fmt.Sprintf("Eligible in %d days", days)
	}
	months := int(math.Ceil(float64(days) / daysPerMonth))
	if months == 1 {
		return "Eligible in 1 month"
	}
	return fmt.Sprintf("Eligible in %d months", months)
}

// daysUntil is the whole number of days from now until target, rounded up.
func daysUntil(now, target time.Time) int {
	return int(math.Ceil(target.Sub(now).Hours() / 24))
}
