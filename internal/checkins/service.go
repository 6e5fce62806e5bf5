package checkins

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrValidation wraps input validation failures.
var ErrValidation = errors.New("validation failed")

// Input is a check-in submission. Date defaults to today when empty.
type Input struct {
	Date   string
	Mood   int
	Energy int
	Note   string
}

// Service coordinates check-in persistence and validation.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Record validates the input and upserts the user's check-in for the date.
func (s *Service) Record(ctx context.Context, userID string, in Input) (Checkin, error) {
	now := time.Now().UTC()
	date := in.Date
	if date == "" {
		date = now.Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return Checkin{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if in.Mood < 1 || in.Mood > 5 {
		return Checkin{}, fmt.Errorf("%w: mood must be between 1 and 5", ErrValidation)
	}
	if in.Energy < 1 || in.Energy > 5 {
		return Checkin{}, fmt.Errorf("%w: energy must be between 1 and 5", ErrValidation)
	}

	return s.Repo.Upsert(ctx, Checkin{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		Mood:      in.Mood,
		Energy:    in.Energy,
		Note:      in.Note,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// History returns the user's check-ins, newest date first.
func (s *Service) History(ctx context.Context, userID string, limit, offset int) ([]Checkin, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Today returns the user's check-in for the current date, if any.
func (s *Service) Today(ctx context.Context, userID string) (Checkin, error) {
	return s.Repo.GetByDate(ctx, userID, time.Now().UTC().Format(dateLayout))
}
