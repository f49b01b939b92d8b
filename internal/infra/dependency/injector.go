// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/merchant-dashboard/backend/config"
	"github.com/merchant-dashboard/backend/internal/application/adapter"
	"github.com/merchant-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/merchant-dashboard/backend/internal/application/usecase/digest"
	"github.com/merchant-dashboard/backend/internal/application/usecase/profile"
	"github.com/merchant-dashboard/backend/internal/application/usecase/transaction"
	"github.com/merchant-dashboard/backend/internal/infra/cache"
	"github.com/merchant-dashboard/backend/internal/infra/server/router"
	"github.com/merchant-dashboard/backend/internal/integration/adapters"
	"github.com/merchant-dashboard/backend/internal/integration/email"
	"github.com/merchant-dashboard/backend/internal/integration/email/templates"
	"github.com/merchant-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/merchant-dashboard/backend/internal/integration/entrypoint/middleware"
	"github.com/merchant-dashboard/backend/internal/integration/persistence"
)

// Options carries the infrastructure the injector cannot build itself.
type Options struct {
	DB              *gorm.DB
	DBHealthChecker func() bool
	Redis           *redis.Client // nil disables rate limiting
	Clock           adapter.Clock // defaults to the system clock
	EmailSender     adapter.EmailSender
}

// Injector holds all application dependencies.
type Injector struct {
	Config          *config.Config
	DB              *gorm.DB
	Clock           adapter.Clock
	Router          *router.Router
	EmailWorker     *email.Worker
	DigestScheduler *email.DigestScheduler
	DigestUseCase   *digest.QueueWeeklyDigestUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, opts Options) (*Injector, error) {
	db := opts.DB
	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	profileRepo := persistence.NewProfileRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	identityVerifier := adapters.NewIdentityVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTAudience, clock)
	emailService := email.NewService(emailQueueRepo, clock)
	aggregator := dashboard.NewAggregator(cfg.Dashboard.RevenueWindowDays)

	// Create use cases
	getOverviewUseCase := dashboard.NewGetOverviewUseCase(
		transactionRepo,
		profileRepo,
		aggregator,
		clock,
		cfg.Dashboard.SnapshotLimit,
	)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	recordTransactionUseCase := transaction.NewRecordTransactionUseCase(transactionRepo, clock)
	getProfileUseCase := profile.NewGetProfileUseCase(profileRepo)
	updateProfileUseCase := profile.NewUpdateProfileUseCase(profileRepo)
	digestUseCase := digest.NewQueueWeeklyDigestUseCase(
		profileRepo,
		transactionRepo,
		emailService,
		aggregator,
		clock,
		cfg.Dashboard.SnapshotLimit,
		strings.TrimRight(cfg.Email.AppBaseURL, "/"),
	)

	// Create controllers
	healthController := controller.NewHealthController(
		opts.DBHealthChecker,
		cache.HealthChecker(opts.Redis),
		clock,
	)
	authController := controller.NewAuthController(cfg.Auth.EnabledProviders)
	dashboardController := controller.NewDashboardController(getOverviewUseCase)
	transactionController := controller.NewTransactionController(listTransactionsUseCase, recordTransactionUseCase)
	profileController := controller.NewProfileController(getProfileUseCase, updateProfileUseCase)

	// Create middleware
	var rateLimiter *middleware.RateLimiter
	if opts.Redis != nil {
		rateLimiter = middleware.NewRateLimiter(opts.Redis, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	} else {
		slog.Warn("Redis unavailable, rate limiting disabled")
	}
	authMiddleware := middleware.NewAuthMiddleware(identityVerifier)

	// Create email delivery
	sender := opts.EmailSender
	if sender == nil {
		if cfg.Email.ResendAPIKey != "" {
			sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		} else {
			slog.Warn("RESEND_API_KEY not set, digests will be logged but not delivered")
			sender = email.NewLogSender()
		}
	}
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, clock, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})
	digestScheduler := email.NewDigestScheduler(digestUseCase, emailQueueRepo, clock, cfg.Digest.Interval)

	r := router.NewRouter(
		healthController,
		authController,
		dashboardController,
		transactionController,
		profileController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:          cfg,
		DB:              db,
		Clock:           clock,
		Router:          r,
		EmailWorker:     emailWorker,
		DigestScheduler: digestScheduler,
		DigestUseCase:   digestUseCase,
	}, nil
}
