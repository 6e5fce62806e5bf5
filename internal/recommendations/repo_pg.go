package recommendations

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"coherence-backend/internal/insight/recommend"
)

// PGRepo persists recommendations and the completed-set in Postgres.
type PGRepo struct {
	DB *sql.DB
}

// NewPGRepo constructs a PGRepo.
func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{DB: db}
}

// ReplaceForUser swaps the user's recommendation list in one transaction.
func (r *PGRepo) ReplaceForUser(ctx context.Context, userID string, recs []recommend.Recommendation) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recommendations WHERE user_id = $1`, userID); err != nil {
		return err
	}
	now := time.Now().UTC()
	for i, rec := range recs {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO recommendations (id, user_id, text, category, importance, explanation, created_at, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.NewString(), userID, rec.Text, rec.Category, string(rec.Importance), rec.Explanation, now, i); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListByUser returns the user's recommendations in stored order.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]recommend.Recommendation, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT text, COALESCE(category, ''), COALESCE(importance, ''), COALESCE(explanation, '')
FROM recommendations WHERE user_id = $1 ORDER BY position`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []recommend.Recommendation{}
	for rows.Next() {
		var rec recommend.Recommendation
		var importance string
		if err := rows.Scan(&rec.Text, &rec.Category, &importance, &rec.Explanation); err != nil {
			return nil, err
		}
		rec.Importance = recommend.Importance(importance)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Completed returns the user's completed-set keyed by recommendation text.
func (r *PGRepo) Completed(ctx context.Context, userID string) (recommend.Completed, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT rec_text FROM completed_recommendations WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(recommend.Completed)
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		out[text] = struct{}{}
	}
	return out, rows.Err()
}

// MarkCompleted sets or clears one completed-set entry.
func (r *PGRepo) MarkCompleted(ctx context.Context, userID, text string, done bool) error {
	if done {
		_, err := r.DB.ExecContext(ctx, `
INSERT INTO completed_recommendations (user_id, rec_text) VALUES ($1, $2)
ON CONFLICT (user_id, rec_text) DO NOTHING`, userID, text)
		return err
	}
	_, err := r.DB.ExecContext(ctx, `
DELETE FROM completed_recommendations WHERE user_id = $1 AND rec_text = $2`, userID, text)
	return err
}
