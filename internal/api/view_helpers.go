package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tidelog/tidelog/internal/models"
	"github.com/tidelog/tidelog/internal/services"
)

func incidentJSON(incident models.Incident) fiber.Map {
	return fiber.Map{
		"id":       incident.ID,
		"date":     services.DayKey(incident.Date),
		"time":     incident.Time,
		"symptoms": incident.Symptoms,
		"notes":    incident.Notes,
		"rating":   incident.Rating,
	}
}

func incidentListJSON(incidents []models.Incident) []fiber.Map {
	payload := make([]fiber.Map, 0, len(incidents))
	for _, incident := range incidents {
		payload = append(payload, incidentJSON(incident))
	}
	return payload
}

func reportJSON(report models.DailyReport) fiber.Map {
	payload := fiber.Map{
		"id":                report.ID,
		"date":              services.DayKey(report.Date),
		"source":            report.Source,
		"diet":              report.Diet,
		"exercise":          report.Exercise,
		"medicine":          report.Medicine,
		"water_intake":      report.WaterIntake,
		"sodium_intake":     report.SodiumIntake,
		"feeling_morning":   report.FeelingMorning,
		"feeling_afternoon": report.FeelingAfternoon,
		"feeling_night":     report.FeelingNight,
		"overall_rating":    report.OverallRating,
	}
	if report.Source == models.ReportSourceCompiled {
		payload["symptoms"] = report.Symptoms
		payload["diet_behavior_notes"] = report.DietBehaviorNotes
		payload["overall_feeling"] = report.OverallFeeling
	}
	return payload
}

func reportListJSON(reports []models.DailyReport) []fiber.Map {
	payload := make([]fiber.Map, 0, len(reports))
	for _, report := range reports {
		payload = append(payload, reportJSON(report))
	}
	return payload
}

func insightsJSON(result services.AnalysisResult) fiber.Map {
	return fiber.Map{
		"summary":         result.Summary,
		"trends":          result.Trends,
		"insights":        result.Insights,
		"suggestions":     result.Suggestions,
		"weeklyHighlight": result.WeeklyHighlight,
	}
}

func userJSON(user *models.User) fiber.Map {
	return fiber.Map{
		"id":                  user.ID,
		"email":               user.Email,
		"name":                user.Name,
		"subscription_status": user.SubscriptionStatus,
	}
}
