package services

import (
	"errors"
	"time"

	"github.com/tidelog/tidelog/internal/models"
)

var ErrReportNotFound = errors.New("report not found")

type ReportStore interface {
	FindByUserAndDay(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyReport, bool, error)
	FindByUserAndID(userID uint, reportID string) (models.DailyReport, bool, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyReport, error)
	Create(report *models.DailyReport) error
	Save(report *models.DailyReport) error
	Delete(userID uint, reportID string) error
}

type ReportInput struct {
	Date             time.Time
	Diet             string
	Exercise         string
	Medicine         string
	WaterIntake      string
	SodiumIntake     string
	FeelingMorning   string
	FeelingAfternoon string
	FeelingNight     string
	OverallRating    *int
}

type ReportService struct {
	reports  ReportStore
	compiler DayReportCompiler
}

func NewReportService(reports ReportStore, compiler DayReportCompiler) *ReportService {
	return &ReportService{
		reports:  reports,
		compiler: compiler,
	}
}

// UpsertFullLog writes the user-authored report for the day. A full_log
// report replaces any compiled one on the same day and stays authoritative
// until the user deletes it.
func (service *ReportService) UpsertFullLog(userID uint, input ReportInput) (models.DailyReport, error) {
	dayStart, dayEnd := DayBounds(input.Date)

	report, found, err := service.reports.FindByUserAndDay(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyReport{}, err
	}

	if found {
		report.Source = models.ReportSourceFullLog
		applyReportInput(&report, input)
		if err := service.reports.Save(&report); err != nil {
			return models.DailyReport{}, err
		}
		return report, nil
	}

	report = models.DailyReport{
		UserID: userID,
		Date:   dayStart,
		Source: models.ReportSourceFullLog,
	}
	applyReportInput(&report, input)
	if err := service.reports.Create(&report); err != nil {
		return models.DailyReport{}, err
	}
	return report, nil
}

func (service *ReportService) GetReport(userID uint, reportID string) (models.DailyReport, error) {
	report, found, err := service.reports.FindByUserAndID(userID, reportID)
	if err != nil {
		return models.DailyReport{}, err
	}
	if !found {
		return models.DailyReport{}, ErrReportNotFound
	}
	return report, nil
}

// DeleteReport removes a report by id and then recompiles its day: if
// incidents still exist there, a fresh compiled report takes the slot the
// deleted full_log report vacated.
func (service *ReportService) DeleteReport(userID uint, reportID string) error {
	report, found, err := service.reports.FindByUserAndID(userID, reportID)
	if err != nil {
		return err
	}
	if !found {
		return ErrReportNotFound
	}

	if err := service.reports.Delete(userID, reportID); err != nil {
		return err
	}
	return service.compiler.CompileDayReport(userID, report.Date)
}

func (service *ReportService) ListRange(userID uint, from time.Time, to time.Time) ([]models.DailyReport, error) {
	fromStart, _ := DayBounds(from)
	_, toEnd := DayBounds(to)
	return service.reports.ListByUserRange(userID, fromStart, toEnd)
}

func applyReportInput(report *models.DailyReport, input ReportInput) {
	report.Diet = input.Diet
	report.Exercise = input.Exercise
	report.Medicine = input.Medicine
	report.WaterIntake = input.WaterIntake
	report.SodiumIntake = input.SodiumIntake
	report.FeelingMorning = input.FeelingMorning
	report.FeelingAfternoon = input.FeelingAfternoon
	report.FeelingNight = input.FeelingNight
	report.OverallRating = input.OverallRating
	report.Symptoms = ""
	report.DietBehaviorNotes = ""
	report.OverallFeeling = ""
}
