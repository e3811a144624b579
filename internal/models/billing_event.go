package models

import "time"

// BillingEvent records a processed billing webhook event id so retries
// are acknowledged without reapplying the update.
type BillingEvent struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
}
