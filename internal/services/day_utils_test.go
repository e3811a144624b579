package services

import (
	"errors"
	"testing"
	"time"
)

func TestParseCalendarDay(t *testing.T) {
	day, err := ParseCalendarDay("2026-03-05")
	if err != nil {
		t.Fatalf("expected valid day, got %v", err)
	}
	if !day.Equal(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected UTC midnight, got %v", day)
	}

	invalid := []string{"", "2026-3-5", "05-03-2026", "2026-03-05T00:00:00Z", "2026-13-40", "not-a-date"}
	for _, raw := range invalid {
		if _, err := ParseCalendarDay(raw); !errors.Is(err, ErrInvalidCalendarDay) {
			t.Fatalf("expected ErrInvalidCalendarDay for %q, got %v", raw, err)
		}
	}
}

func TestDayBoundsAreHalfOpen(t *testing.T) {
	value := time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)
	dayStart, dayEnd := DayBounds(value)

	if !dayStart.Equal(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected day start %v", dayStart)
	}
	if !dayEnd.Equal(time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected day end %v", dayEnd)
	}
}

func TestDayCount(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "same day", from: "2026-03-05", to: "2026-03-05", want: 1},
		{name: "one week", from: "2026-03-01", to: "2026-03-07", want: 7},
		{name: "across months", from: "2026-02-27", to: "2026-03-02", want: 4},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			from, err := ParseCalendarDay(testCase.from)
			if err != nil {
				t.Fatalf("parse from: %v", err)
			}
			to, err := ParseCalendarDay(testCase.to)
			if err != nil {
				t.Fatalf("parse to: %v", err)
			}
			if got := DayCount(from, to); got != testCase.want {
				t.Fatalf("DayCount(%s, %s) = %d, want %d", testCase.from, testCase.to, got, testCase.want)
			}
		})
	}
}

func TestFormatDayLabel(t *testing.T) {
	day := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDayLabel(day); got != "Mar 5, 2026" {
		t.Fatalf("expected label %q, got %q", "Mar 5, 2026", got)
	}
}

func TestTodayStartUTC(t *testing.T) {
	now := time.Date(2026, 3, 5, 23, 59, 59, 0, time.UTC)
	if got := TodayStartUTC(now); !got.Equal(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected start of day, got %v", got)
	}
}
