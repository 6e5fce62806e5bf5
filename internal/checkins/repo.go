package checkins

import "context"

// Repo persists check-ins.
type Repo interface {
	Upsert(ctx context.Context, checkin Checkin) (Checkin, error)
	GetByDate(ctx context.Context, userID, date string) (Checkin, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Checkin, error)
	ReassignUser(ctx context.Context, fromUserID, toUserID string) (int, error)
}
