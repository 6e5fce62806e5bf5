package checkins

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

// PGRepo persists check-ins in Postgres.
type PGRepo struct {
	DB *sql.DB
}

// NewPGRepo constructs a PGRepo.
func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{DB: db}
}

// Upsert inserts or replaces the user's check-in for its date.
func (r *PGRepo) Upsert(ctx context.Context, checkin Checkin) (Checkin, error) {
	row := r.DB.QueryRowContext(ctx, `
INSERT INTO checkins (id, user_id, checkin_date, mood, energy, note, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
ON CONFLICT (user_id, checkin_date)
DO UPDATE SET mood = EXCLUDED.mood, energy = EXCLUDED.energy, note = EXCLUDED.note, updated_at = EXCLUDED.updated_at
RETURNING id, checkin_date, created_at, updated_at`,
		checkin.ID, checkin.UserID, checkin.Date, checkin.Mood, checkin.Energy, checkin.Note, time.Now().UTC())

	var date time.Time
	if err := row.Scan(&checkin.ID, &date, &checkin.CreatedAt, &checkin.UpdatedAt); err != nil {
		return Checkin{}, err
	}
	checkin.Date = date.Format(dateLayout)
	return checkin, nil
}

// GetByDate returns the user's check-in for a date.
func (r *PGRepo) GetByDate(ctx context.Context, userID, date string) (Checkin, error) {
	row := r.DB.QueryRowContext(ctx, `
SELECT id, user_id, checkin_date, mood, energy, note, created_at, updated_at
FROM checkins WHERE user_id = $1 AND checkin_date = $2`, userID, date)
	checkin, err := scanCheckin(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Checkin{}, ErrNotFound
		}
		return Checkin{}, err
	}
	return checkin, nil
}

// ListByUser returns the user's check-ins, newest date first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Checkin, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.DB.QueryContext(ctx, `
SELECT id, user_id, checkin_date, mood, energy, note, created_at, updated_at
FROM checkins WHERE user_id = $1
ORDER BY checkin_date DESC
LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Checkin{}
	for rows.Next() {
		checkin, err := scanCheckin(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, checkin)
	}
	return out, rows.Err()
}

// ReassignUser moves all check-ins from one user to another and reports how
// many moved. Dates the destination already has are left untouched.
func (r *PGRepo) ReassignUser(ctx context.Context, fromUserID, toUserID string) (int, error) {
	res, err := r.DB.ExecContext(ctx, `
UPDATE checkins SET user_id = $2, updated_at = now()
WHERE user_id = $1
  AND NOT EXISTS (
    SELECT 1 FROM checkins dst
    WHERE dst.user_id = $2 AND dst.checkin_date = checkins.checkin_date
  )`, fromUserID, toUserID)
	if err != nil {
		return 0, err
	}
	moved, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(moved), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCheckin(row rowScanner) (Checkin, error) {
	var checkin Checkin
	var date time.Time
	if err := row.Scan(&checkin.ID, &checkin.UserID, &date, &checkin.Mood, &checkin.Energy, &checkin.Note, &checkin.CreatedAt, &checkin.UpdatedAt); err != nil {
		return Checkin{}, err
	}
	checkin.Date = date.Format(dateLayout)
	return checkin, nil
}
