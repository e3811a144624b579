package models

import "time"

// RateLimitEvent is one counted request against a per-user sliding window.
// Rows are only ever inserted and counted; stale rows are harmless.
type RateLimitEvent struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_rate_user_key"`
	Key       string    `gorm:"not null;index:idx_rate_user_key"`
	CreatedAt time.Time `gorm:"index"`
}
