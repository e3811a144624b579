package services

import (
	"time"

	"github.com/tidelog/tidelog/internal/models"
)

type ExportReportReader interface {
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyReport, error)
}

type ExportIncidentReader interface {
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.Incident, error)
}

// ExportTable is the renderer-agnostic output: columns fixed once per
// request, one row per day report in range.
type ExportTable struct {
	Columns []ExportColumn
	Rows    []ExportRow
}

type ExportService struct {
	reports   ExportReportReader
	incidents ExportIncidentReader
}

func NewExportService(reports ExportReportReader, incidents ExportIncidentReader) *ExportService {
	return &ExportService{
		reports:   reports,
		incidents: incidents,
	}
}

// BuildExportTable fetches both stores first, sizes the incident slot block
// to the busiest exported day, then joins per day over the canonical
// YYYY-MM-DD key.
func (service *ExportService) BuildExportTable(userID uint, from time.Time, to time.Time) (ExportTable, error) {
	fromStart, _ := DayBounds(from)
	_, toEnd := DayBounds(to)

	reports, err := service.reports.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return ExportTable{}, err
	}
	incidents, err := service.incidents.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return ExportTable{}, err
	}

	incidentsByDay := groupIncidentsByDay(incidents)

	maxIncidents := 0
	for _, report := range reports {
		if count := len(incidentsByDay[DayKey(report.Date)]); count > maxIncidents {
			maxIncidents = count
		}
	}

	rows := make([]ExportRow, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, buildExportRow(report, incidentsByDay[DayKey(report.Date)], maxIncidents))
	}

	return ExportTable{
		Columns: BuildExportColumns(maxIncidents),
		Rows:    rows,
	}, nil
}

func buildExportRow(report models.DailyReport, dayIncidents []models.Incident, maxIncidents int) ExportRow {
	cells := make([]ExportIncidentCell, maxIncidents)
	for index := range cells {
		if index >= len(dayIncidents) {
			break
		}
		incident := dayIncidents[index]
		cells[index] = ExportIncidentCell{
			Filled:   true,
			Time:     incident.Time,
			Symptoms: incident.Symptoms,
			Notes:    incident.Notes,
		}
	}

	return ExportRow{
		Date:             report.Date,
		Diet:             report.Diet,
		Exercise:         report.Exercise,
		Medicine:         report.Medicine,
		FeelingMorning:   report.FeelingMorning,
		FeelingAfternoon: report.FeelingAfternoon,
		FeelingNight:     report.FeelingNight,
		OverallRating:    report.OverallRating,
		Incidents:        cells,
	}
}
