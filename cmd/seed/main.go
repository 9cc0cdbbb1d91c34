package main

// Load a starter card catalog:
//   go run ./cmd/seed

import (
	"context"
	"log"
	"os"

	"churn-backend/internal/cards"
	"churn-backend/internal/model"
	"churn-backend/internal/shared/config"
	"churn-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	svc := &cards.Service{Repo: &cards.PGRepo{DB: sqlDB}}
	existing, err := svc.List(ctx)
	if err != nil {
		log.Printf("failed to read catalog: %v", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		log.Printf("catalog already has %d cards; nothing to do", len(existing))
		return
	}

	for _, card := range starterCatalog() {
		created, err := svc.Create(ctx, card)
		if err != nil {
			log.Printf("failed to seed %q: %v", card.Name, err)
			os.Exit(1)
		}
		log.Printf("seeded %s / %s (%s)", created.Bank, created.Name, created.ID)
	}
}

func starterCatalog() []model.CardProduct {
	return []model.CardProduct{
		{
			Bank:                   "American Express",
			Name:                   "Explorer",
			AnnualFee:              floatPtr(395),
			WelcomeBonusPoints:     intPtr(100000),
			BonusSpendRequirement:  floatPtr(4000),
			BonusSpendWindowMonths: intPtr(3),
			IsActive:               true,
		},
		{
			Bank:                   "ANZ",
			Name:                   "Rewards Black",
			AnnualFee:              floatPtr(375),
			WelcomeBonusPoints:     intPtr(130000),
			BonusSpendRequirement:  floatPtr(3000),
			BonusSpendWindowMonths: intPtr(3),
			IsActive:               true,
		},
		{
			Bank:                   "NAB",
			Name:                   "Rewards Signature",
			AnnualFee:              floatPtr(295),
			WelcomeBonusPoints:     intPtr(120000),
			BonusSpendRequirement:  floatPtr(3000),
			BonusSpendWindowMonths: intPtr(2),
			IsActive:               true,
		},
		{
			Bank:               "Westpac",
			Name:               "Altitude Qantas Black",
			AnnualFee:          floatPtr(370),
			WelcomeBonusPoints: intPtr(90000),
			IsActive:           true,
		},
		{
			Bank:     "Citi",
			Name:     "Premier",
			IsActive: false,
			Notes:    "withdrawn from sale",
		},
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
