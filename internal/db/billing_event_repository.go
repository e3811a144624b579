package db

import (
	"github.com/tidelog/tidelog/internal/models"
	"gorm.io/gorm"
)

type BillingEventRepository struct {
	database *gorm.DB
}

func NewBillingEventRepository(database *gorm.DB) *BillingEventRepository {
	return &BillingEventRepository{database: database}
}

func (repo *BillingEventRepository) Exists(eventID string) (bool, error) {
	var count int64
	if err := repo.database.Model(&models.BillingEvent{}).
		Where("id = ?", eventID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *BillingEventRepository) Record(eventID string) error {
	return repo.database.Create(&models.BillingEvent{ID: eventID}).Error
}
