package db

import (
	"time"

	"github.com/tidelog/tidelog/internal/models"
	"gorm.io/gorm"
)

type RateLimitEventRepository struct {
	database *gorm.DB
}

func NewRateLimitEventRepository(database *gorm.DB) *RateLimitEventRepository {
	return &RateLimitEventRepository{database: database}
}

func (repo *RateLimitEventRepository) CountSince(userID uint, key string, since time.Time) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.RateLimitEvent{}).
		Where("user_id = ? AND key = ? AND created_at > ?", userID, key, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *RateLimitEventRepository) Record(userID uint, key string) error {
	return repo.database.Create(&models.RateLimitEvent{UserID: userID, Key: key}).Error
}
