package checkins

import "time"

// Checkin is one daily self-report. A user has at most one per date and a
// repeated submission for the same date overwrites the earlier one.
type Checkin struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Date      string    `json:"date"`
	Mood      int       `json:"mood"`
	Energy    int       `json:"energy"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
