package services

import (
	"errors"
	"math"
	"regexp"
	"time"
)

const calendarDayLayout = "2006-01-02"

var ErrInvalidCalendarDay = errors.New("invalid calendar day")

var calendarDayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DayStartUTC normalizes any instant to the UTC midnight of its UTC
// calendar day. Every persisted Date field goes through this.
func DayStartUTC(value time.Time) time.Time {
	utc := value.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

// DayBounds returns the half-open [start, next-day-start) window used by
// the store accessors.
func DayBounds(value time.Time) (time.Time, time.Time) {
	start := DayStartUTC(value)
	return start, start.AddDate(0, 0, 1)
}

// DayKey is the canonical YYYY-MM-DD map key for day-keyed grouping.
func DayKey(value time.Time) string {
	return DayStartUTC(value).Format(calendarDayLayout)
}

// ParseCalendarDay accepts strictly YYYY-MM-DD and yields the UTC day start.
func ParseCalendarDay(raw string) (time.Time, error) {
	if !calendarDayPattern.MatchString(raw) {
		return time.Time{}, ErrInvalidCalendarDay
	}
	parsed, err := time.ParseInLocation(calendarDayLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidCalendarDay
	}
	return parsed, nil
}

// FormatDayLabel renders the short human-readable date label, always
// evaluated in UTC so server timezone never shifts the calendar day.
func FormatDayLabel(value time.Time) string {
	return DayStartUTC(value).Format("Jan 2, 2006")
}

func TodayStartUTC(now time.Time) time.Time {
	return DayStartUTC(now)
}

// DayCount is the inclusive number of calendar days between two day starts.
func DayCount(from time.Time, to time.Time) int {
	fromStart := DayStartUTC(from)
	toStart := DayStartUTC(to)
	return int(math.Round(toStart.Sub(fromStart).Hours()/24)) + 1
}
