package checkins

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecordUpsertsSameDate(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	first, err := svc.Record(ctx, "user-1", Input{Date: "2026-08-20", Mood: 3, Energy: 2, Note: "trøtt"})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	second, err := svc.Record(ctx, "user-1", Input{Date: "2026-08-20", Mood: 4, Energy: 4})
	if err != nil {
		t.Fatalf("record again: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected upsert to keep id %q, got %q", first.ID, second.ID)
	}

	list, err := svc.History(ctx, "user-1", 0, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 checkin, got %d", len(list))
	}
	if list[0].Mood != 4 || list[0].Energy != 4 {
		t.Fatalf("expected latest values, got %+v", list[0])
	}
}

func TestRecordValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		in   Input
	}{
		{"mood too low", Input{Date: "2026-08-20", Mood: 0, Energy: 3}},
		{"mood too high", Input{Date: "2026-08-20", Mood: 6, Energy: 3}},
		{"energy too low", Input{Date: "2026-08-20", Mood: 3, Energy: 0}},
		{"energy too high", Input{Date: "2026-08-20", Mood: 3, Energy: 6}},
		{"bad date", Input{Date: "20.08.2026", Mood: 3, Energy: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Record(ctx, "user-1", tc.in); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRecordDefaultsToToday(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	checkin, err := svc.Record(ctx, "user-1", Input{Mood: 3, Energy: 3})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	today := time.Now().UTC().Format(dateLayout)
	if checkin.Date != today {
		t.Fatalf("expected date %q, got %q", today, checkin.Date)
	}

	got, err := svc.Today(ctx, "user-1")
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if got.ID != checkin.ID {
		t.Fatalf("expected today's checkin %q, got %q", checkin.ID, got.ID)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	for _, date := range []string{"2026-08-18", "2026-08-20", "2026-08-19"} {
		if _, err := svc.Record(ctx, "user-1", Input{Date: date, Mood: 3, Energy: 3}); err != nil {
			t.Fatalf("record %s: %v", date, err)
		}
	}

	list, err := svc.History(ctx, "user-1", 0, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	want := []string{"2026-08-20", "2026-08-19", "2026-08-18"}
	if len(list) != len(want) {
		t.Fatalf("expected %d checkins, got %d", len(want), len(list))
	}
	for i, date := range want {
		if list[i].Date != date {
			t.Fatalf("position %d: expected %q, got %q", i, date, list[i].Date)
		}
	}
}
