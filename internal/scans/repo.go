package scans

import "context"

// Repo persists scans with their issues and components.
type Repo interface {
	Create(ctx context.Context, scan Scan) error
	GetByID(ctx context.Context, scanID string) (Scan, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Scan, error)
	LatestByUser(ctx context.Context, userID string) (Scan, error)
	ReassignUser(ctx context.Context, fromUserID, toUserID string) (int, error)
}
