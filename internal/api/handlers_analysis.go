package api

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tidelog/tidelog/internal/ai"
	"github.com/tidelog/tidelog/internal/services"
)

const defaultAnalysisDays = 30

var noDataAnalysisResult = services.AnalysisResult{
	Summary:  "No data in this range. Log some days or incidents to get personalized insights.",
	Trends:   []string{},
	Insights: []string{},
	Suggestions: []string{
		"Try logging a few days (diet, exercise, how you feel, incidents) to get personalized insights.",
	},
}

// parseAnalyzeWindow fills missing or malformed bounds with the default
// trailing window ending today (UTC).
func parseAnalyzeWindow(c *fiber.Ctx, now time.Time) (string, string) {
	request := analyzeRequest{}
	_ = c.BodyParser(&request)

	end := services.TodayStartUTC(now)
	fromValue := strings.TrimSpace(request.From)
	toValue := strings.TrimSpace(request.To)

	if _, err := services.ParseCalendarDay(fromValue); err != nil {
		fromValue = services.DayKey(end.AddDate(0, 0, -defaultAnalysisDays))
	}
	if _, err := services.ParseCalendarDay(toValue); err != nil {
		toValue = services.DayKey(end)
	}
	return fromValue, toValue
}

func validateAnalysisResponse(content string) (services.AnalysisResult, error) {
	parsed := map[string]any{}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return services.AnalysisResult{}, err
	}

	result := services.AnalysisResult{
		Summary:     "No summary available.",
		Trends:      stringSliceField(parsed, "trends"),
		Insights:    stringSliceField(parsed, "insights"),
		Suggestions: stringSliceField(parsed, "suggestions"),
	}
	if summary, ok := parsed["summary"].(string); ok {
		result.Summary = summary
	}
	if highlight, ok := parsed["weeklyHighlight"].(string); ok {
		result.WeeklyHighlight = highlight
	}
	return result, nil
}

func stringSliceField(parsed map[string]any, key string) []string {
	values := []string{}
	items, ok := parsed[key].([]any)
	if !ok {
		return values
	}
	for _, item := range items {
		if value, ok := item.(string); ok {
			values = append(values, value)
		}
	}
	return values
}

func (handler *Handler) Analyze(c *fiber.Ctx) error {
	user := currentUser(c)
	if !services.CanUseAIInsights(user) {
		return subscriptionRequired(c, "Active subscription required for AI insights.")
	}

	now := time.Now()
	if err := handler.rateLimiter.Check(user.ID, services.RateLimitAnalyze, now); err != nil {
		return rateLimitExceeded(c)
	}

	fromValue, toValue := parseAnalyzeWindow(c, now)
	from, to, err := services.ParseDayRange(fromValue, toValue, services.MaxAnalysisRangeDays)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, cappedRangeErrorMessage(err, services.MaxAnalysisRangeDays))
	}

	payload, err := handler.analysisService.BuildAnalysisPayload(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to aggregate history")
	}
	if !payload.HasData {
		return c.JSON(insightsJSON(noDataAnalysisResult))
	}

	prompt := ai.BuildHistoryAnalysisPrompt(payload.DataSummary, payload.DateRangeLabel)
	content, err := handler.ai.Complete(c.Context(), prompt, ai.CompleteOptions{
		MaxTokens:    1000,
		JSONResponse: true,
	})
	if err != nil {
		log.Printf("analysis completion failed: %v", err)
		return apiError(c, fiber.StatusServiceUnavailable, "insights are temporarily unavailable")
	}

	result, err := validateAnalysisResponse(content)
	if err != nil {
		log.Printf("analysis response was not valid JSON: %v", err)
		return apiError(c, fiber.StatusServiceUnavailable, "insights are temporarily unavailable")
	}

	if err := handler.insightCache.StoreResult(user.ID, fromValue, toValue, result, now); err != nil {
		log.Printf("insight cache store failed: %v", err)
	}

	return c.JSON(insightsJSON(result))
}

func (handler *Handler) InsightCache(c *fiber.Ctx) error {
	user := currentUser(c)
	if !services.CanUseAIInsights(user) {
		return c.JSON(fiber.Map{"data": nil})
	}

	cached, err := handler.insightCache.LoadCached(user.ID, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cached insights")
	}
	if cached == nil {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{
		"data": insightsJSON(cached.Result),
		"from": cached.From,
		"to":   cached.To,
	})
}

func (handler *Handler) OnOpenMessage(c *fiber.Ctx) error {
	user := currentUser(c)

	if err := handler.rateLimiter.Check(user.ID, services.RateLimitOnOpenMessage, time.Now()); err != nil {
		return rateLimitExceeded(c)
	}

	content, err := handler.ai.Complete(c.Context(), ai.BuildOnOpenMessagePrompt(), ai.CompleteOptions{
		MaxTokens: 150,
	})
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return apiError(c, fiber.StatusServiceUnavailable, "messages are not configured")
		}
		log.Printf("on-open message completion failed: %v", err)
		return apiError(c, fiber.StatusServiceUnavailable, "messages are temporarily unavailable")
	}

	return c.JSON(fiber.Map{"message": strings.TrimSpace(content)})
}
