package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/tidelog/tidelog/internal/models"
)

// compiledFieldSeparator joins per-incident text fragments into the derived
// report fields. The separator is part of the stored format.
const compiledFieldSeparator = " — "

type CompilerReportStore interface {
	FindByUserAndDay(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyReport, bool, error)
	Create(report *models.DailyReport) error
	Save(report *models.DailyReport) error
	DeleteCompiled(userID uint, dayStart time.Time, dayEnd time.Time) error
}

type CompilerIncidentStore interface {
	ListByUserDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Incident, error)
}

// CompileService keeps the derived daily report for a (user, day) in step
// with that day's incidents. A full_log report is authoritative and is
// never read past, let alone rewritten.
type CompileService struct {
	reports   CompilerReportStore
	incidents CompilerIncidentStore
}

func NewCompileService(reports CompilerReportStore, incidents CompilerIncidentStore) *CompileService {
	return &CompileService{
		reports:   reports,
		incidents: incidents,
	}
}

// CompileDayReport re-derives the compiled report for the incident's day.
// All reads happen before any write decision; each write is one atomic
// store operation, so a storage failure leaves no partial state.
func (service *CompileService) CompileDayReport(userID uint, date time.Time) error {
	dayStart, dayEnd := DayBounds(date)

	existing, found, err := service.reports.FindByUserAndDay(userID, dayStart, dayEnd)
	if err != nil {
		return err
	}
	if found && existing.Source == models.ReportSourceFullLog {
		return nil
	}

	incidents, err := service.incidents.ListByUserDay(userID, dayStart, dayEnd)
	if err != nil {
		return err
	}

	if len(incidents) == 0 {
		return service.reports.DeleteCompiled(userID, dayStart, dayEnd)
	}

	symptoms := joinCompiledField(incidents, func(incident models.Incident) string { return incident.Symptoms })
	notes := joinCompiledField(incidents, func(incident models.Incident) string { return incident.Notes })
	feeling := compiledFeelingSummary(len(incidents))

	if found {
		existing.Source = models.ReportSourceCompiled
		existing.Symptoms = symptoms
		existing.DietBehaviorNotes = notes
		existing.OverallFeeling = feeling
		return service.reports.Save(&existing)
	}

	report := models.DailyReport{
		UserID:            userID,
		Date:              dayStart,
		Source:            models.ReportSourceCompiled,
		Symptoms:          symptoms,
		DietBehaviorNotes: notes,
		OverallFeeling:    feeling,
	}
	return service.reports.Create(&report)
}

func joinCompiledField(incidents []models.Incident, field func(models.Incident) string) string {
	fragments := make([]string, 0, len(incidents))
	for _, incident := range incidents {
		fragment := strings.TrimSpace(field(incident))
		if fragment == "" {
			continue
		}
		fragments = append(fragments, fragment)
	}
	return strings.Join(fragments, compiledFieldSeparator)
}

func compiledFeelingSummary(incidentCount int) string {
	if incidentCount == 1 {
		return "Compiled from 1 incident"
	}
	return fmt.Sprintf("Compiled from %d incidents", incidentCount)
}
