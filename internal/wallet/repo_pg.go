package wallet

import (
	"context"
	"database/sql"
	"errors"

	"churn-backend/internal/model"
)

// PGRepo persists user card history in Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]model.CardRecord, error) {
	const query = `
SELECT id, user_id, bank, card_id, application_date, cancellation_date, status, created_at
FROM user_cards
WHERE user_id = $1
ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.CardRecord, 0, 16)
	for rows.Next() {
		var rec model.CardRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Bank,
			&rec.CardID,
			&rec.ApplicationDate,
			&rec.CancellationDate,
			&rec.Status,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, userID, recordID string) (model.CardRecord, error) {
	const query = `
SELECT id, user_id, bank, card_id, application_date, cancellation_date, status, created_at
FROM user_cards
WHERE user_id = $1 AND id = $2
LIMIT 1`
	var rec model.CardRecord
	err := r.DB.QueryRowContext(ctx, query, userID, recordID).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Bank,
		&rec.CardID,
		&rec.ApplicationDate,
		&rec.CancellationDate,
		&rec.Status,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CardRecord{}, ErrNotFound
		}
		return model.CardRecord{}, err
	}
	return rec, nil
}

func (r *PGRepo) Create(ctx context.Context, record model.CardRecord) error {
	const query = `
INSERT INTO user_cards (id, user_id, bank, card_id, application_date, cancellation_date, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())`
	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Bank,
		record.CardID,
		record.ApplicationDate,
		record.CancellationDate,
		record.Status,
	)
	return err
}

func (r *PGRepo) Cancel(ctx context.Context, userID, recordID, cancellationDate string) error {
	const query = `
UPDATE user_cards
SET cancellation_date = $3, status = $4
WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, recordID, cancellationDate, model.StatusCancelled)
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
