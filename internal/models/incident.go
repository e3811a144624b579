package models

import "time"

// Incident is a discrete symptom event. Date is always normalized to the
// UTC calendar-day start; the clock time, if the user entered one, lives in
// the free-form Time field and never in Date.
type Incident struct {
	ID       string    `gorm:"primaryKey"`
	UserID   uint      `gorm:"not null;index:idx_incident_user_date"`
	Date     time.Time `gorm:"not null;index:idx_incident_user_date"`
	Time     string
	Symptoms string
	Notes    string
	Rating   *int

	CreatedAt time.Time
	UpdatedAt time.Time
}
