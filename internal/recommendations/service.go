package recommendations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coherence-backend/internal/insight/recommend"
)

// ErrValidation wraps input validation failures.
var ErrValidation = errors.New("validation failed")

// View is a recommendation paired with its completed flag.
type View struct {
	recommend.Recommendation
	Completed bool `json:"completed"`
}

// GroupView is one category's recommendations with completed flags.
type GroupView struct {
	Category        string `json:"category"`
	Recommendations []View `json:"recommendations"`
}

// Overview is the full recommendation projection served to the client.
type Overview struct {
	Ranked []View      `json:"ranked"`
	Groups []GroupView `json:"groups"`
}

// Service coordinates recommendation storage with the ranking and grouping
// projections.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Replace validates and stores the user's recommendation list.
func (s *Service) Replace(ctx context.Context, userID string, recs []recommend.Recommendation) error {
	for i, rec := range recs {
		if strings.TrimSpace(rec.Text) == "" {
			return fmt.Errorf("%w: recommendation %d has no text", ErrValidation, i)
		}
		switch rec.Importance {
		case "", recommend.ImportanceHigh, recommend.ImportanceMedium, recommend.ImportanceLow:
		default:
			return fmt.Errorf("%w: recommendation %d has unknown importance %q", ErrValidation, i, rec.Importance)
		}
	}
	return s.Repo.ReplaceForUser(ctx, userID, recs)
}

// Overview returns the ranked and grouped projections with completed flags.
func (s *Service) Overview(ctx context.Context, userID string) (Overview, error) {
	recs, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return Overview{}, err
	}
	completed, err := s.Repo.Completed(ctx, userID)
	if err != nil {
		return Overview{}, err
	}
	return project(recs, completed), nil
}

// ToggleCompleted flips the completed flag for one recommendation text and
// returns the refreshed projection.
func (s *Service) ToggleCompleted(ctx context.Context, userID, text string) (Overview, error) {
	if strings.TrimSpace(text) == "" {
		return Overview{}, fmt.Errorf("%w: text is required", ErrValidation)
	}
	completed, err := s.Repo.Completed(ctx, userID)
	if err != nil {
		return Overview{}, err
	}
	next := completed.Toggle(text)
	if err := s.Repo.MarkCompleted(ctx, userID, text, next.Has(text)); err != nil {
		return Overview{}, err
	}
	recs, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return Overview{}, err
	}
	return project(recs, next), nil
}

func project(recs []recommend.Recommendation, completed recommend.Completed) Overview {
	ranked := recommend.Rank(recs)
	views := make([]View, 0, len(ranked))
	for _, rec := range ranked {
		views = append(views, View{Recommendation: rec, Completed: completed.Has(rec.Text)})
	}

	groups := recommend.GroupByCategory(recs)
	groupViews := make([]GroupView, 0, len(groups))
	for _, group := range groups {
		items := make([]View, 0, len(group.Recommendations))
		for _, rec := range group.Recommendations {
			items = append(items, View{Recommendation: rec, Completed: completed.Has(rec.Text)})
		}
		groupViews = append(groupViews, GroupView{Category: group.Category, Recommendations: items})
	}
	return Overview{Ranked: views, Groups: groupViews}
}
