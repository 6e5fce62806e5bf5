package recommendations

import (
	"context"
	"sync"

	"coherence-backend/internal/insight/recommend"
)

// MemoryRepo stores recommendations in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu        sync.RWMutex
	byUser    map[string][]recommend.Recommendation
	completed map[string]recommend.Completed
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byUser:    make(map[string][]recommend.Recommendation),
		completed: make(map[string]recommend.Completed),
	}
}

// ReplaceForUser swaps the user's recommendation list.
func (r *MemoryRepo) ReplaceForUser(ctx context.Context, userID string, recs []recommend.Recommendation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[userID] = append([]recommend.Recommendation(nil), recs...)
	return nil
}

// ListByUser returns the user's recommendations in stored order.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]recommend.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]recommend.Recommendation(nil), r.byUser[userID]...), nil
}

// Completed returns a copy of the user's completed-set.
func (r *MemoryRepo) Completed(ctx context.Context, userID string) (recommend.Completed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(recommend.Completed, len(r.completed[userID]))
	for k := range r.completed[userID] {
		out[k] = struct{}{}
	}
	return out, nil
}

// MarkCompleted sets or clears one completed-set entry.
func (r *MemoryRepo) MarkCompleted(ctx context.Context, userID, text string, done bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.completed[userID]
	if !ok {
		set = make(recommend.Completed)
		r.completed[userID] = set
	}
	if done {
		set[text] = struct{}{}
	} else {
		delete(set, text)
	}
	return nil
}
