package recommendations

import (
	"context"

	"coherence-backend/internal/insight/recommend"
)

// Repo persists a user's recommendation list and completed-set.
type Repo interface {
	ReplaceForUser(ctx context.Context, userID string, recs []recommend.Recommendation) error
	ListByUser(ctx context.Context, userID string) ([]recommend.Recommendation, error)
	Completed(ctx context.Context, userID string) (recommend.Completed, error)
	MarkCompleted(ctx context.Context, userID, text string, done bool) error
}
