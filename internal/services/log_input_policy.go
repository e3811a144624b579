package services

import "fmt"

const (
	maxTimeLength     = 20
	maxFeelingLength  = 500
	maxFreeTextLength = 10000

	minRating = 1
	maxRating = 10
)

// ValidateIncidentInput returns a field-level message, empty when valid.
func ValidateIncidentInput(input IncidentInput) string {
	if message := validateOptionalRating(input.Rating); message != "" {
		return message
	}
	if len(input.Time) > maxTimeLength {
		return fmt.Sprintf("time must be at most %d characters", maxTimeLength)
	}
	if len(input.Symptoms) > maxFreeTextLength {
		return fmt.Sprintf("symptoms must be at most %d characters", maxFreeTextLength)
	}
	if len(input.Notes) > maxFreeTextLength {
		return fmt.Sprintf("notes must be at most %d characters", maxFreeTextLength)
	}
	return ""
}

// ValidateReportInput returns a field-level message, empty when valid.
func ValidateReportInput(input ReportInput) string {
	if message := validateOptionalRating(input.OverallRating); message != "" {
		return message
	}
	feelings := map[string]string{
		"feeling_morning":   input.FeelingMorning,
		"feeling_afternoon": input.FeelingAfternoon,
		"feeling_night":     input.FeelingNight,
	}
	for field, value := range feelings {
		if len(value) > maxFeelingLength {
			return fmt.Sprintf("%s must be at most %d characters", field, maxFeelingLength)
		}
	}
	freeText := map[string]string{
		"diet":          input.Diet,
		"exercise":      input.Exercise,
		"medicine":      input.Medicine,
		"water_intake":  input.WaterIntake,
		"sodium_intake": input.SodiumIntake,
	}
	for field, value := range freeText {
		if len(value) > maxFreeTextLength {
			return fmt.Sprintf("%s must be at most %d characters", field, maxFreeTextLength)
		}
	}
	return ""
}

func validateOptionalRating(rating *int) string {
	if rating == nil {
		return ""
	}
	if *rating < minRating || *rating > maxRating {
		return fmt.Sprintf("rating must be between %d and %d", minRating, maxRating)
	}
	return ""
}
