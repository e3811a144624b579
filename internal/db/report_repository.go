package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/tidelog/tidelog/internal/models"
	"gorm.io/gorm"
)

type ReportRepository struct {
	database *gorm.DB
}

func NewReportRepository(database *gorm.DB) *ReportRepository {
	return &ReportRepository{database: database}
}

func (repo *ReportRepository) FindByUserAndDay(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyReport, bool, error) {
	report := models.DailyReport{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Limit(1).
		Find(&report)
	if result.Error != nil {
		return models.DailyReport{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyReport{}, false, nil
	}
	return report, true, nil
}

func (repo *ReportRepository) FindByUserAndID(userID uint, reportID string) (models.DailyReport, bool, error) {
	report := models.DailyReport{}
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, reportID).
		Limit(1).
		Find(&report)
	if result.Error != nil {
		return models.DailyReport{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyReport{}, false, nil
	}
	return report, true, nil
}

func (repo *ReportRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyReport, error) {
	reports := make([]models.DailyReport, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (repo *ReportRepository) Create(report *models.DailyReport) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	return repo.database.Create(report).Error
}

func (repo *ReportRepository) Save(report *models.DailyReport) error {
	return repo.database.Save(report).Error
}

// DeleteCompiled removes the day's report only when the compiler owns it.
// A full_log report on the same day is left untouched.
func (repo *ReportRepository) DeleteCompiled(userID uint, dayStart time.Time, dayEnd time.Time) error {
	return repo.database.
		Where("user_id = ? AND date >= ? AND date < ? AND source = ?", userID, dayStart, dayEnd, models.ReportSourceCompiled).
		Delete(&models.DailyReport{}).Error
}

func (repo *ReportRepository) Delete(userID uint, reportID string) error {
	return repo.database.
		Where("user_id = ? AND id = ?", userID, reportID).
		Delete(&models.DailyReport{}).Error
}
