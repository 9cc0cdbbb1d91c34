package scoring

import (
	"math"
	"testing"

	"churn-backend/internal/model"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestScoreWorkedExample(t *testing.T) {
	// bonus=50000, spend=3000, fee=450:
	// pointsPerDollar = 16.667, netValue = 500-450 = 50, netValueScore = 0.5
	card := model.CardProduct{
		WelcomeBonusPoints:    intPtr(50000),
		BonusSpendRequirement: floatPtr(3000),
		AnnualFee:             floatPtr(450),
	}

	got := Score(card)
	want := 50000.0/3000.0*10 + 0.5
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Score = %v, want %v", got, want)
	}
	if math.Abs(got-167.17) > 0.01 {
		t.Fatalf("Score = %v, expected ~167.17", got)
	}
}

func TestScoreDefaults(t *testing.T) {
	cases := []struct {
		name string
		card model.CardProduct
		want float64
	}{
		{
			name: "all_fields_absent",
			card: model.CardProduct{},
			want: 0,
		},
		{
			name: "missing_spend_defaults_to_one",
			card: model.CardProduct{WelcomeBonusPoints: intPtr(100)},
			want: 100.0/1.0*10 + 1.0/100,
		},
		{
			name: "zero_spend_defaults_to_one",
			card: model.CardProduct{WelcomeBonusPoints: intPtr(100), BonusSpendRequirement: floatPtr(0)},
			want: 100.0/1.0*10 + 1.0/100,
		},
		{
			name: "negative_spend_defaults_to_one",
			card: model.CardProduct{WelcomeBonusPoints: intPtr(100), BonusSpendRequirement: floatPtr(-50)},
			want: 100.0/1.0*10 + 1.0/100,
		},
		{
			name: "fee_without_bonus_goes_negative",
			card: model.CardProduct{AnnualFee: floatPtr(200)},
			want: -2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.card); got != tc.want {
				t.Fatalf("Score = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoreDeterminism(t *testing.T) {
	card := model.CardProduct{
		WelcomeBonusPoints:    intPtr(120000),
		BonusSpendRequirement: floatPtr(7500),
		AnnualFee:             floatPtr(295),
	}
	first := Score(card)
	for i := 0; i < 100; i++ {
		if again := Score(card); again != first {
			t.Fatalf("score not deterministic: %v vs %v", first, again)
		}
	}
}
