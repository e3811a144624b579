package api

import (
	"errors"
	"fmt"

	"github.com/tidelog/tidelog/internal/services"
)

func rangeErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrRangeFromInvalid):
		return "from must be YYYY-MM-DD"
	case errors.Is(err, services.ErrRangeToInvalid):
		return "to must be YYYY-MM-DD"
	case errors.Is(err, services.ErrRangeInverted):
		return "from must be on or before to"
	default:
		return "invalid date range"
	}
}

func cappedRangeErrorMessage(err error, maxDays int) string {
	if errors.Is(err, services.ErrRangeTooLarge) {
		return fmt.Sprintf("date range must be %d days or less", maxDays)
	}
	return rangeErrorMessage(err)
}
