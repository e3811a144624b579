package services

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/tidelog/tidelog/internal/models"
)

// AnalysisResult is the structured insight payload returned by the
// text-generation collaborator and cached per user.
type AnalysisResult struct {
	Summary         string   `json:"summary"`
	Trends          []string `json:"trends"`
	Insights        []string `json:"insights"`
	Suggestions     []string `json:"suggestions"`
	WeeklyHighlight string   `json:"weeklyHighlight,omitempty"`
}

type CachedInsights struct {
	Result AnalysisResult
	From   string
	To     string
}

type InsightCacheUserStore interface {
	FindByID(userID uint) (models.User, error)
	UpdateByID(userID uint, fields map[string]any) error
}

// InsightCacheService persists the latest analysis per user. A cached entry
// is served only while "today" (UTC) is still the day it was produced;
// anything stale or malformed reads as a miss, never as an error.
type InsightCacheService struct {
	users InsightCacheUserStore
}

func NewInsightCacheService(users InsightCacheUserStore) *InsightCacheService {
	return &InsightCacheService{users: users}
}

func (service *InsightCacheService) StoreResult(userID uint, from string, to string, result AnalysisResult, now time.Time) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return service.users.UpdateByID(userID, map[string]any{
		"last_analysis_at":     now,
		"last_analysis_from":   from,
		"last_analysis_to":     to,
		"last_analysis_result": string(payload),
	})
}

func (service *InsightCacheService) LoadCached(userID uint, now time.Time) (*CachedInsights, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return DecodeCachedInsights(user, now), nil
}

// DecodeCachedInsights applies the calendar-day validity rule to the stored
// row. Returns nil on any miss condition.
func DecodeCachedInsights(user models.User, now time.Time) *CachedInsights {
	if user.LastAnalysisAt == nil ||
		strings.TrimSpace(user.LastAnalysisFrom) == "" ||
		strings.TrimSpace(user.LastAnalysisTo) == "" ||
		strings.TrimSpace(user.LastAnalysisResult) == "" {
		return nil
	}

	todayStart := TodayStartUTC(now)
	tomorrowStart := todayStart.AddDate(0, 0, 1)
	at := *user.LastAnalysisAt
	if at.Before(todayStart) || !at.Before(tomorrowStart) {
		return nil
	}

	result := AnalysisResult{}
	if err := json.Unmarshal([]byte(user.LastAnalysisResult), &result); err != nil {
		return nil
	}
	if result.Trends == nil {
		result.Trends = []string{}
	}
	if result.Insights == nil {
		result.Insights = []string{}
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}

	return &CachedInsights{
		Result: result,
		From:   user.LastAnalysisFrom,
		To:     user.LastAnalysisTo,
	}
}
