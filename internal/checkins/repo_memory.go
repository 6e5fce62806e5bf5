package checkins

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores check-ins in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byUser map[string]map[string]Checkin
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUser: make(map[string]map[string]Checkin)}
}

// Upsert inserts or replaces the user's check-in for its date.
func (r *MemoryRepo) Upsert(ctx context.Context, checkin Checkin) (Checkin, error) {
	if err := ctx.Err(); err != nil {
		return Checkin{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	byDate, ok := r.byUser[checkin.UserID]
	if !ok {
		byDate = make(map[string]Checkin)
		r.byUser[checkin.UserID] = byDate
	}
	if existing, ok := byDate[checkin.Date]; ok {
		checkin.ID = existing.ID
		checkin.CreatedAt = existing.CreatedAt
	}
	byDate[checkin.Date] = checkin
	return checkin, nil
}

// GetByDate returns the user's check-in for a date.
func (r *MemoryRepo) GetByDate(ctx context.Context, userID, date string) (Checkin, error) {
	if err := ctx.Err(); err != nil {
		return Checkin{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	checkin, ok := r.byUser[userID][date]
	if !ok {
		return Checkin{}, ErrNotFound
	}
	return checkin, nil
}

// ListByUser returns the user's check-ins, newest date first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Checkin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	byDate := r.byUser[userID]
	out := make([]Checkin, 0, len(byDate))
	for _, checkin := range byDate {
		out = append(out, checkin)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})

	if offset >= len(out) {
		return []Checkin{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// ReassignUser moves all check-ins from one user to another and reports how
// many moved. A date that exists for both users keeps the destination's entry.
func (r *MemoryRepo) ReassignUser(ctx context.Context, fromUserID, toUserID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	from := r.byUser[fromUserID]
	if len(from) == 0 {
		delete(r.byUser, fromUserID)
		return 0, nil
	}
	to, ok := r.byUser[toUserID]
	if !ok {
		to = make(map[string]Checkin)
		r.byUser[toUserID] = to
	}
	moved := 0
	for date, checkin := range from {
		if _, exists := to[date]; exists {
			continue
		}
		checkin.UserID = toUserID
		to[date] = checkin
		moved++
	}
	delete(r.byUser, fromUserID)
	return moved, nil
}
