package scans

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo persists scans in Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts the scan and its child rows in one transaction.
func (r *PGRepo) Create(ctx context.Context, scan Scan) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `
INSERT INTO scans (id, user_id, coherence_score, created_at)
VALUES ($1, $2, $3, $4)`,
		scan.ID, scan.UserID, scan.CoherenceScore, scan.CreatedAt); err != nil {
		return err
	}

	for i, issue := range scan.Issues {
		var recs any
		if len(issue.Recommendations) > 0 {
			encoded, marshalErr := json.Marshal(issue.Recommendations)
			if marshalErr != nil {
				err = marshalErr
				return err
			}
			recs = encoded
		}
		if _, err = tx.ExecContext(ctx, `
INSERT INTO scan_issues (id, scan_id, name, description, load, recommendations, position)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			issue.ID, scan.ID, issue.Name, issue.Description, issue.Load, recs, i); err != nil {
			return err
		}
	}

	for i, comp := range scan.Components {
		if _, err = tx.ExecContext(ctx, `
INSERT INTO scan_components (id, scan_id, category, name, level, position)
VALUES ($1, $2, $3, $4, $5, $6)`,
			comp.ID, scan.ID, comp.Category, comp.Name, comp.Level, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByID returns a scan with its issues and components.
func (r *PGRepo) GetByID(ctx context.Context, scanID string) (Scan, error) {
	var scan Scan
	err := r.DB.QueryRowContext(ctx, `
SELECT id, user_id, coherence_score, created_at
FROM scans
WHERE id = $1
LIMIT 1`, scanID).Scan(&scan.ID, &scan.UserID, &scan.CoherenceScore, &scan.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Scan{}, ErrNotFound
		}
		return Scan{}, err
	}

	if scan.Issues, err = r.loadIssues(ctx, scan.ID); err != nil {
		return Scan{}, err
	}
	if scan.Components, err = r.loadComponents(ctx, scan.ID); err != nil {
		return Scan{}, err
	}
	return scan, nil
}

// ListByUser returns the user's scans, newest first, children included.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Scan, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.DB.QueryContext(ctx, `
SELECT id, user_id, coherence_score, created_at
FROM scans
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Scan{}
	for rows.Next() {
		var scan Scan
		if err := rows.Scan(&scan.ID, &scan.UserID, &scan.CoherenceScore, &scan.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if out[i].Issues, err = r.loadIssues(ctx, out[i].ID); err != nil {
			return nil, err
		}
		if out[i].Components, err = r.loadComponents(ctx, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// LatestByUser returns the user's most recent scan.
func (r *PGRepo) LatestByUser(ctx context.Context, userID string) (Scan, error) {
	list, err := r.ListByUser(ctx, userID, 1, 0)
	if err != nil {
		return Scan{}, err
	}
	if len(list) == 0 {
		return Scan{}, ErrNotFound
	}
	return list[0], nil
}

// ReassignUser moves all scans from one user to another.
func (r *PGRepo) ReassignUser(ctx context.Context, fromUserID, toUserID string) (int, error) {
	res, err := r.DB.ExecContext(ctx, `
UPDATE scans SET user_id = $1 WHERE user_id = $2`, toUserID, fromUserID)
	if err != nil {
		return 0, err
	}
	moved, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(moved), nil
}

func (r *PGRepo) loadIssues(ctx context.Context, scanID string) ([]Issue, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT id, name, description, load, recommendations
FROM scan_issues
WHERE scan_id = $1
ORDER BY position`, scanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Issue{}
	for rows.Next() {
		var issue Issue
		var recs []byte
		if err := rows.Scan(&issue.ID, &issue.Name, &issue.Description, &issue.Load, &recs); err != nil {
			return nil, err
		}
		if len(recs) > 0 {
			if err := json.Unmarshal(recs, &issue.Recommendations); err != nil {
				return nil, err
			}
		}
		out = append(out, issue)
	}
	return out, rows.Err()
}

func (r *PGRepo) loadComponents(ctx context.Context, scanID string) ([]Component, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT id, category, name, level
FROM scan_components
WHERE scan_id = $1
ORDER BY position`, scanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Component{}
	for rows.Next() {
		var comp Component
		if err := rows.Scan(&comp.ID, &comp.Category, &comp.Name, &comp.Level); err != nil {
			return nil, err
		}
		out = append(out, comp)
	}
	return out, rows.Err()
}
