package account

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"coherence-backend/internal/checkins"
	"coherence-backend/internal/scans"
)

type Service struct {
	ScanRepo    scans.Repo
	CheckinRepo checkins.Repo
}

type ClaimResult struct {
	MigratedScans    int `json:"migratedScans"`
	MigratedCheckins int `json:"migratedCheckins"`
}

func NewService(scanRepo scans.Repo, checkinRepo checkins.Repo) *Service {
	return &Service{ScanRepo: scanRepo, CheckinRepo: checkinRepo}
}

// ClaimGuest moves a guest's scans and check-ins onto the signed-in account.
// Postgres-backed repos are migrated in a single transaction so a partial
// claim cannot be observed.
func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}

	if scanPG, ok := s.ScanRepo.(*scans.PGRepo); ok && scanPG != nil && scanPG.DB != nil {
		if checkinPG, ok := s.CheckinRepo.(*checkins.PGRepo); ok && checkinPG != nil && checkinPG.DB != nil {
			return claimWithTx(ctx, scanPG.DB, guestUserID, authedUserID)
		}
	}

	scanCount, err := s.ScanRepo.ReassignUser(ctx, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	checkinCount, err := s.CheckinRepo.ReassignUser(ctx, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedScans: scanCount, MigratedCheckins: checkinCount}, nil
}

func claimWithTx(ctx context.Context, db *sql.DB, guestUserID, authedUserID string) (ClaimResult, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ClaimResult{}, err
	}
	defer tx.Rollback()

	scanRes, err := tx.ExecContext(ctx, `UPDATE scans SET user_id = $1 WHERE user_id = $2`, authedUserID, guestUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	scanCount, _ := scanRes.RowsAffected()

	// A date the destination account already has keeps its own entry.
	checkinRes, err := tx.ExecContext(ctx, `
UPDATE checkins SET user_id = $1, updated_at = now()
WHERE user_id = $2
  AND NOT EXISTS (
    SELECT 1 FROM checkins dst
    WHERE dst.user_id = $1 AND dst.checkin_date = checkins.checkin_date
  )`, authedUserID, guestUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	checkinCount, _ := checkinRes.RowsAffected()

	if err := tx.Commit(); err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedScans: int(scanCount), MigratedCheckins: int(checkinCount)}, nil
}
