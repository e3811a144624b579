package models

import "time"

const (
	ReportSourceFullLog  = "full_log"
	ReportSourceCompiled = "compiled"
)

// DailyReport is the single report per (user, calendar day). Source is the
// discriminant: a full_log report was authored by the user and is never
// touched by the compiler; a compiled report is derived from that day's
// incidents and may be silently replaced or deleted by recompilation.
type DailyReport struct {
	ID     string    `gorm:"primaryKey"`
	UserID uint      `gorm:"not null;uniqueIndex:uidx_report_user_date"`
	Date   time.Time `gorm:"not null;uniqueIndex:uidx_report_user_date"`
	Source string    `gorm:"not null;default:compiled"`

	Diet             string
	Exercise         string
	Medicine         string
	WaterIntake      string
	SodiumIntake     string
	FeelingMorning   string
	FeelingAfternoon string
	FeelingNight     string
	OverallRating    *int

	// Populated only when Source is compiled.
	Symptoms          string
	DietBehaviorNotes string
	OverallFeeling    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
