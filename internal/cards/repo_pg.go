package cards

import (
	"context"
	"database/sql"
	"errors"

	"churn-backend/internal/model"
)

// PGRepo persists the card catalog in Postgres.
type PGRepo struct {
	DB *sql.DB
}

const cardColumns = `
id, bank, name, annual_fee, welcome_bonus_points, bonus_spend_requirement,
bonus_spend_window_months, is_active, notes, application_link, created_at, updated_at`

func (r *PGRepo) List(ctx context.Context) ([]model.CardProduct, error) {
	const query = `
SELECT` + cardColumns + `
FROM card_products
ORDER BY bank, name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.CardProduct, 0, 32)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, card)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, cardID string) (model.CardProduct, error) {
	const query = `
SELECT` + cardColumns + `
FROM card_products
WHERE id = $1
LIMIT 1`
	card, err := scanCard(r.DB.QueryRowContext(ctx, query, cardID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CardProduct{}, ErrNotFound
		}
		return model.CardProduct{}, err
	}
	return card, nil
}

func (r *PGRepo) Create(ctx context.Context, card model.CardProduct) error {
	const query = `
INSERT INTO card_products (id, bank, name, annual_fee, welcome_bonus_points,
  bonus_spend_requirement, bonus_spend_window_months, is_active, notes,
  application_link, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		card.ID,
		card.Bank,
		card.Name,
		nullableFloat(card.AnnualFee),
		nullableInt(card.WelcomeBonusPoints),
		nullableFloat(card.BonusSpendRequirement),
		nullableInt(card.BonusSpendWindowMonths),
		card.IsActive,
		card.Notes,
		card.ApplicationLink,
	)
	return err
}

func (r *PGRepo) SetAvailability(ctx context.Context, cardID string, active bool) error {
	const query = `
UPDATE card_products
SET is_active = $2, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, cardID, active)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (model.CardProduct, error) {
	var card model.CardProduct
	var fee sql.NullFloat64
	var bonus sql.NullInt64
	var spend sql.NullFloat64
	var window sql.NullInt64
	err := row.Scan(
		&card.ID,
		&card.Bank,
		&card.Name,
		&fee,
		&bonus,
		&spend,
		&window,
		&card.IsActive,
		&card.Notes,
		&card.ApplicationLink,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return model.CardProduct{}, err
	}
	if fee.Valid {
		v := fee.Float64
		card.AnnualFee = &v
	}
	if bonus.Valid {
		v := int(bonus.Int64)
		card.WelcomeBonusPoints = &v
	}
	if spend.Valid {
		v := spend.Float64
		card.BonusSpendRequirement = &v
	}
	if window.Valid {
		v := int(window.Int64)
		card.BonusSpendWindowMonths = &v
	}
	return card, nil
}

func nullableFloat(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}
