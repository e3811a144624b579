package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/tidelog/tidelog/internal/models"
	"gorm.io/gorm"
)

type IncidentRepository struct {
	database *gorm.DB
}

func NewIncidentRepository(database *gorm.DB) *IncidentRepository {
	return &IncidentRepository{database: database}
}

// ListByUserDay returns the day's incidents in the stable compile order:
// free-form time ascending, then creation time as the tie-break.
func (repo *IncidentRepository) ListByUserDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Incident, error) {
	incidents := make([]models.Incident, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("time ASC, created_at ASC, id ASC").
		Find(&incidents).Error; err != nil {
		return nil, err
	}
	return incidents, nil
}

func (repo *IncidentRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.Incident, error) {
	incidents := make([]models.Incident, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, time ASC, created_at ASC, id ASC").
		Find(&incidents).Error; err != nil {
		return nil, err
	}
	return incidents, nil
}

func (repo *IncidentRepository) FindByUserAndID(userID uint, incidentID string) (models.Incident, bool, error) {
	incident := models.Incident{}
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, incidentID).
		Limit(1).
		Find(&incident)
	if result.Error != nil {
		return models.Incident{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Incident{}, false, nil
	}
	return incident, true, nil
}

func (repo *IncidentRepository) Create(incident *models.Incident) error {
	if incident.ID == "" {
		incident.ID = uuid.NewString()
	}
	return repo.database.Create(incident).Error
}

func (repo *IncidentRepository) Save(incident *models.Incident) error {
	return repo.database.Save(incident).Error
}

func (repo *IncidentRepository) Delete(userID uint, incidentID string) error {
	return repo.database.
		Where("user_id = ? AND id = ?", userID, incidentID).
		Delete(&models.Incident{}).Error
}
