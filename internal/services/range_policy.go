package services

import (
	"errors"
	"strings"
	"time"
)

// MaxExportRangeDays caps the export window.
const MaxExportRangeDays = 365

var (
	ErrRangeFromInvalid = errors.New("invalid from date")
	ErrRangeToInvalid   = errors.New("invalid to date")
	ErrRangeInverted    = errors.New("from is after to")
	ErrRangeTooLarge    = errors.New("range too large")
)

// ParseDayRange validates a from/to pair of YYYY-MM-DD strings before any
// store access: strict format, from <= to, and at most maxDays inclusive
// days when maxDays is positive.
func ParseDayRange(rawFrom string, rawTo string, maxDays int) (time.Time, time.Time, error) {
	from, err := ParseCalendarDay(strings.TrimSpace(rawFrom))
	if err != nil {
		return time.Time{}, time.Time{}, ErrRangeFromInvalid
	}
	to, err := ParseCalendarDay(strings.TrimSpace(rawTo))
	if err != nil {
		return time.Time{}, time.Time{}, ErrRangeToInvalid
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrRangeInverted
	}
	if maxDays > 0 && DayCount(from, to) > maxDays {
		return time.Time{}, time.Time{}, ErrRangeTooLarge
	}
	return from, to, nil
}
