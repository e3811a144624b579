package db

import "gorm.io/gorm"

type Repositories struct {
	Users           *UserRepository
	Incidents       *IncidentRepository
	Reports         *ReportRepository
	RateLimitEvents *RateLimitEventRepository
	BillingEvents   *BillingEventRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(database),
		Incidents:       NewIncidentRepository(database),
		Reports:         NewReportRepository(database),
		RateLimitEvents: NewRateLimitEventRepository(database),
		BillingEvents:   NewBillingEventRepository(database),
	}
}
