package api

import (
	"context"
	"time"

	"github.com/tidelog/tidelog/internal/ai"
	"github.com/tidelog/tidelog/internal/db"
	"github.com/tidelog/tidelog/internal/services"
	"gorm.io/gorm"
)

// AICompleter is the slice of the AI client the handlers need.
type AICompleter interface {
	Complete(ctx context.Context, prompt string, options ai.CompleteOptions) (string, error)
}

type Handler struct {
	db            *gorm.DB
	secretKey     []byte
	billingSecret []byte
	cookieSecure  bool
	ai            AICompleter

	repositories *db.Repositories

	authService     *services.AuthService
	compileService  *services.CompileService
	incidentService *services.IncidentService
	reportService   *services.ReportService
	analysisService *services.AnalysisService
	insightCache    *services.InsightCacheService
	rateLimiter     *services.RateLimitService
	exportService   *services.ExportService
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)
