package scans

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores scans in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Scan
	byUser map[string][]string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Scan),
		byUser: make(map[string][]string),
	}
}

// Create stores the scan.
func (r *MemoryRepo) Create(ctx context.Context, scan Scan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[scan.ID] = scan
	r.byUser[scan.UserID] = append(r.byUser[scan.UserID], scan.ID)
	return nil
}

// GetByID returns a scan by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, scanID string) (Scan, error) {
	if err := ctx.Err(); err != nil {
		return Scan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	scan, ok := r.byID[scanID]
	if !ok {
		return Scan{}, ErrNotFound
	}
	return scan, nil
}

// ListByUser returns the user's scans, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Scan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byUser[userID]
	out := make([]Scan, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if offset >= len(out) {
		return []Scan{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// LatestByUser returns the user's most recent scan.
func (r *MemoryRepo) LatestByUser(ctx context.Context, userID string) (Scan, error) {
	list, err := r.ListByUser(ctx, userID, 1, 0)
	if err != nil {
		return Scan{}, err
	}
	if len(list) == 0 {
		return Scan{}, ErrNotFound
	}
	return list[0], nil
}

// ReassignUser moves all scans from one user to another and reports how many
// moved.
func (r *MemoryRepo) ReassignUser(ctx context.Context, fromUserID, toUserID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.byUser[fromUserID]
	for _, id := range ids {
		scan := r.byID[id]
		scan.UserID = toUserID
		r.byID[id] = scan
	}
	r.byUser[toUserID] = append(r.byUser[toUserID], ids...)
	delete(r.byUser, fromUserID)
	return len(ids), nil
}
