package models

import "time"

const (
	SubscriptionActive   = "active"
	SubscriptionTrialing = "trialing"
)

// User carries the account row plus two denormalized blocks: the
// subscription state synced from the billing provider's webhooks, and the
// most recent AI analysis result used as a calendar-day cache.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string

	SubscriptionStatus    string     `gorm:"index"`
	SubscriptionPeriodEnd *time.Time
	BillingCustomerID     string `gorm:"index"`

	LastAnalysisAt     *time.Time
	LastAnalysisFrom   string
	LastAnalysisTo     string
	LastAnalysisResult string

	CreatedAt time.Time `gorm:"not null"`
}
