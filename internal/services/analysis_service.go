package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tidelog/tidelog/internal/models"
)

const (
	// MaxAnalysisRangeDays caps the analyze window; callers enforce it
	// before the aggregator runs.
	MaxAnalysisRangeDays = 90
	// RecentDaysSample is the size of the most-recent-reports section.
	RecentDaysSample = 7
	// KeywordTopN is how many keywords the frequency section emits.
	KeywordTopN = 15
	// WeeklySectionMinDays gates the weekly and half-period sections.
	WeeklySectionMinDays = 14
)

type AnalysisReportReader interface {
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyReport, error)
}

type AnalysisIncidentReader interface {
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.Incident, error)
}

// AnalysisPayload is the self-contained data summary handed to the
// text-generation collaborator. DataSummary is a pure function of the
// fetched rows; no call leaves the process while it is built.
type AnalysisPayload struct {
	DataSummary    string
	DateRangeLabel string
	HasData        bool
}

type AnalysisService struct {
	reports   AnalysisReportReader
	incidents AnalysisIncidentReader
}

func NewAnalysisService(reports AnalysisReportReader, incidents AnalysisIncidentReader) *AnalysisService {
	return &AnalysisService{
		reports:   reports,
		incidents: incidents,
	}
}

func (service *AnalysisService) BuildAnalysisPayload(userID uint, from time.Time, to time.Time) (AnalysisPayload, error) {
	fromStart, _ := DayBounds(from)
	toStart, toEnd := DayBounds(to)

	label := FormatDayLabel(fromStart) + " to " + FormatDayLabel(toStart)
	dayCount := DayCount(fromStart, toStart)

	reports, err := service.reports.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return AnalysisPayload{}, err
	}
	incidents, err := service.incidents.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return AnalysisPayload{}, err
	}

	if len(reports) == 0 && len(incidents) == 0 {
		return AnalysisPayload{DateRangeLabel: label}, nil
	}

	incidentsByDay := groupIncidentsByDay(incidents)

	lines := make([]string, 0, 32)
	lines = append(lines, fmt.Sprintf("Period: %s (%d days)", label, dayCount))
	lines = appendReportStats(lines, reports)
	lines = appendIncidentStats(lines, incidents, incidentsByDay)
	if dayCount >= WeeklySectionMinDays {
		lines = appendWeeklyBreakdown(lines, fromStart, toStart, reports, incidents)
		lines = appendHalfComparison(lines, fromStart, toStart, reports, incidents)
	}
	lines = appendRecentReports(lines, reports, incidentsByDay)
	lines = appendKeywordFrequencies(lines, incidents)

	return AnalysisPayload{
		DataSummary:    strings.Join(lines, "\n"),
		DateRangeLabel: label,
		HasData:        true,
	}, nil
}

func groupIncidentsByDay(incidents []models.Incident) map[string][]models.Incident {
	byDay := make(map[string][]models.Incident)
	for _, incident := range incidents {
		key := DayKey(incident.Date)
		byDay[key] = append(byDay[key], incident)
	}
	return byDay
}

func appendReportStats(lines []string, reports []models.DailyReport) []string {
	rated := ratedReports(reports)
	ratingCounts := make(map[int]int)
	for _, report := range rated {
		ratingCounts[*report.OverallRating]++
	}

	lines = append(lines, "", "Reports:")
	lines = append(lines, fmt.Sprintf("  Days with a report: %d", len(reports)))
	lines = append(lines, fmt.Sprintf("  Days with a rating: %d", len(rated)))
	if average, ok := averageRating(rated); ok {
		lines = append(lines, fmt.Sprintf("  Average rating (when given): %s/10", average))
	}
	if len(ratingCounts) > 0 {
		lines = append(lines, "  Rating distribution: "+ratingDistribution(ratingCounts))
	}
	lines = append(lines, fmt.Sprintf("  Days with diet logged: %d", countNonEmpty(reports, func(r models.DailyReport) string { return r.Diet })))
	lines = append(lines, fmt.Sprintf("  Days with exercise logged: %d", countNonEmpty(reports, func(r models.DailyReport) string { return r.Exercise })))
	lines = append(lines, fmt.Sprintf("  Days with medicine logged: %d", countNonEmpty(reports, func(r models.DailyReport) string { return r.Medicine })))
	lines = append(lines, fmt.Sprintf("  Days with feelings logged: %d", countWithFeelings(reports)))
	return lines
}

func appendIncidentStats(lines []string, incidents []models.Incident, incidentsByDay map[string][]models.Incident) []string {
	incidentDays := len(incidentsByDay)
	maxInOneDay := 0
	for _, dayIncidents := range incidentsByDay {
		if len(dayIncidents) > maxInOneDay {
			maxInOneDay = len(dayIncidents)
		}
	}
	averagePerDay := 0.0
	if incidentDays > 0 {
		averagePerDay = float64(len(incidents)) / float64(incidentDays)
	}

	lines = append(lines, "", "Incidents:")
	lines = append(lines, fmt.Sprintf("  Total incidents: %d", len(incidents)))
	lines = append(lines, fmt.Sprintf("  Days with at least one incident: %d", incidentDays))
	lines = append(lines, fmt.Sprintf("  Avg incidents per incident-day: %.1f", averagePerDay))
	lines = append(lines, fmt.Sprintf("  Max incidents in one day: %d", maxInOneDay))
	return lines
}

// appendWeeklyBreakdown partitions [from, to] into consecutive 7-day
// windows anchored at from, with the final window truncated to to.
func appendWeeklyBreakdown(lines []string, fromStart time.Time, toStart time.Time, reports []models.DailyReport, incidents []models.Incident) []string {
	lines = append(lines, "", "By week:")
	for cursor := fromStart; !cursor.After(toStart); cursor = cursor.AddDate(0, 0, 7) {
		weekEnd := cursor.AddDate(0, 0, 6)
		if weekEnd.After(toStart) {
			weekEnd = toStart
		}

		weekReports := reportsWithin(reports, cursor, weekEnd)
		weekIncidents := incidentsWithin(incidents, cursor, weekEnd)

		line := fmt.Sprintf("  %s – %s: %d reports, %d incidents",
			FormatDayLabel(cursor), FormatDayLabel(weekEnd), len(weekReports), len(weekIncidents))
		if average, ok := averageRating(ratedReports(weekReports)); ok {
			line += ", avg rating " + average
		}
		lines = append(lines, line)
	}
	return lines
}

// appendHalfComparison splits the range at its temporal midpoint; a report
// exactly on the midpoint belongs to the first half.
func appendHalfComparison(lines []string, fromStart time.Time, toStart time.Time, reports []models.DailyReport, incidents []models.Incident) []string {
	midpoint := fromStart.Add(toStart.Sub(fromStart) / 2)

	firstReports := make([]models.DailyReport, 0, len(reports))
	secondReports := make([]models.DailyReport, 0, len(reports))
	for _, report := range reports {
		if report.Date.After(midpoint) {
			secondReports = append(secondReports, report)
		} else {
			firstReports = append(firstReports, report)
		}
	}

	firstIncidents := 0
	secondIncidents := 0
	for _, incident := range incidents {
		if incident.Date.After(midpoint) {
			secondIncidents++
		} else {
			firstIncidents++
		}
	}

	lines = append(lines, "", "First half vs second half of period:")
	lines = append(lines, halfLine("First half", firstReports, firstIncidents))
	lines = append(lines, halfLine("Second half", secondReports, secondIncidents))
	return lines
}

func halfLine(name string, reports []models.DailyReport, incidentCount int) string {
	line := fmt.Sprintf("  %s: %d reports, %d incidents", name, len(reports), incidentCount)
	if average, ok := averageRating(ratedReports(reports)); ok {
		line += ", avg rating " + average
	}
	return line
}

func appendRecentReports(lines []string, reports []models.DailyReport, incidentsByDay map[string][]models.Incident) []string {
	if len(reports) == 0 {
		return lines
	}

	recent := make([]models.DailyReport, len(reports))
	copy(recent, reports)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > RecentDaysSample {
		recent = recent[:RecentDaysSample]
	}

	lines = append(lines, "", fmt.Sprintf("Last %d days (most recent first):", len(recent)))
	for _, report := range recent {
		parts := []string{FormatDayLabel(report.Date)}
		if report.OverallRating != nil {
			parts = append(parts, fmt.Sprintf("rating %d", *report.OverallRating))
		}
		if strings.TrimSpace(report.Diet) != "" {
			parts = append(parts, "diet yes")
		}
		if strings.TrimSpace(report.Exercise) != "" {
			parts = append(parts, "exercise yes")
		}
		if strings.TrimSpace(report.Medicine) != "" {
			parts = append(parts, "medicine yes")
		}
		parts = append(parts, fmt.Sprintf("%d incident(s)", len(incidentsByDay[DayKey(report.Date)])))
		lines = append(lines, "  "+strings.Join(parts, ", "))
	}
	return lines
}

func appendKeywordFrequencies(lines []string, incidents []models.Incident) []string {
	keywords := TopIncidentKeywords(incidents, KeywordTopN)
	if len(keywords) == 0 {
		return lines
	}

	rendered := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		rendered = append(rendered, fmt.Sprintf("%s:%d", keyword.Word, keyword.Count))
	}
	lines = append(lines, "", "Frequent words in incident symptoms/notes:")
	lines = append(lines, "  "+strings.Join(rendered, ", "))
	return lines
}

func ratedReports(reports []models.DailyReport) []models.DailyReport {
	rated := make([]models.DailyReport, 0, len(reports))
	for _, report := range reports {
		if report.OverallRating != nil {
			rated = append(rated, report)
		}
	}
	return rated
}

func averageRating(rated []models.DailyReport) (string, bool) {
	if len(rated) == 0 {
		return "", false
	}
	sum := 0
	for _, report := range rated {
		sum += *report.OverallRating
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(rated))), true
}

func ratingDistribution(ratingCounts map[int]int) string {
	ratings := make([]int, 0, len(ratingCounts))
	for rating := range ratingCounts {
		ratings = append(ratings, rating)
	}
	sort.Ints(ratings)

	pairs := make([]string, 0, len(ratings))
	for _, rating := range ratings {
		pairs = append(pairs, fmt.Sprintf("%d:%d", rating, ratingCounts[rating]))
	}
	return strings.Join(pairs, ", ")
}

func countNonEmpty(reports []models.DailyReport, field func(models.DailyReport) string) int {
	count := 0
	for _, report := range reports {
		if strings.TrimSpace(field(report)) != "" {
			count++
		}
	}
	return count
}

func countWithFeelings(reports []models.DailyReport) int {
	count := 0
	for _, report := range reports {
		if strings.TrimSpace(report.FeelingMorning) != "" ||
			strings.TrimSpace(report.FeelingAfternoon) != "" ||
			strings.TrimSpace(report.FeelingNight) != "" {
			count++
		}
	}
	return count
}

func reportsWithin(reports []models.DailyReport, start time.Time, end time.Time) []models.DailyReport {
	within := make([]models.DailyReport, 0, len(reports))
	for _, report := range reports {
		if !report.Date.Before(start) && !report.Date.After(end) {
			within = append(within, report)
		}
	}
	return within
}

func incidentsWithin(incidents []models.Incident, start time.Time, end time.Time) []models.Incident {
	within := make([]models.Incident, 0, len(incidents))
	for _, incident := range incidents {
		if !incident.Date.Before(start) && !incident.Date.After(end) {
			within = append(within, incident)
		}
	}
	return within
}
