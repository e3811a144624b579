package api

import (
	"github.com/tidelog/tidelog/internal/db"
	"github.com/tidelog/tidelog/internal/services"
	"gorm.io/gorm"
)

type HandlerConfig struct {
	SecretKey            string
	BillingWebhookSecret string
	CookieSecure         bool
	AI                   AICompleter
}

func NewHandler(database *gorm.DB, config HandlerConfig) *Handler {
	handler := &Handler{
		db:            database,
		secretKey:     []byte(config.SecretKey),
		billingSecret: []byte(config.BillingWebhookSecret),
		cookieSecure:  config.CookieSecure,
		ai:            config.AI,
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.compileService = services.NewCompileService(handler.repositories.Reports, handler.repositories.Incidents)
	handler.incidentService = services.NewIncidentService(handler.repositories.Incidents, handler.compileService)
	handler.reportService = services.NewReportService(handler.repositories.Reports, handler.compileService)
	handler.analysisService = services.NewAnalysisService(handler.repositories.Reports, handler.repositories.Incidents)
	handler.insightCache = services.NewInsightCacheService(handler.repositories.Users)
	handler.rateLimiter = services.NewRateLimitService(handler.repositories.RateLimitEvents)
	handler.exportService = services.NewExportService(handler.repositories.Reports, handler.repositories.Incidents)
	return handler
}
