// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/gestao-financeira/backend/config"
	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/application/usecase/auth"
	"github.com/gestao-financeira/backend/internal/application/usecase/category"
	"github.com/gestao-financeira/backend/internal/application/usecase/client"
	"github.com/gestao-financeira/backend/internal/application/usecase/dashboard"
	"github.com/gestao-financeira/backend/internal/application/usecase/dataset"
	"github.com/gestao-financeira/backend/internal/application/usecase/expense"
	"github.com/gestao-financeira/backend/internal/application/usecase/goal"
	"github.com/gestao-financeira/backend/internal/application/usecase/product"
	"github.com/gestao-financeira/backend/internal/application/usecase/report"
	"github.com/gestao-financeira/backend/internal/application/usecase/sale"
	"github.com/gestao-financeira/backend/internal/application/usecase/settings"
	"github.com/gestao-financeira/backend/internal/infra/cache"
	"github.com/gestao-financeira/backend/internal/infra/server/router"
	"github.com/gestao-financeira/backend/internal/integration/adapters"
	"github.com/gestao-financeira/backend/internal/integration/email"
	"github.com/gestao-financeira/backend/internal/integration/email/templates"
	"github.com/gestao-financeira/backend/internal/integration/entrypoint/controller"
	"github.com/gestao-financeira/backend/internal/integration/entrypoint/middleware"
	"github.com/gestao-financeira/backend/internal/integration/export"
	"github.com/gestao-financeira/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker

	tokens persistence.TokenRepository
}

// Options carries the infrastructure the injector does not build itself.
// Redis and Storage may be nil; EmailSender nil selects Resend or the mock
// sender depending on configuration.
type Options struct {
	Redis       *redis.Client
	Storage     adapter.ObjectStorage
	EmailSender adapter.EmailSender
	Now         func() time.Time
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	location := cfg.Report.TimeLocation()

	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	clientRepo := persistence.NewClientRepository(db)
	productRepo := persistence.NewProductRepository(db)
	saleRepo := persistence.NewSaleRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	prefsRepo := persistence.NewCategoryPreferencesRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)

	// Services
	passwordService := adapters.NewPasswordService(cfg.JWT.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, adapters.TokenDurations{
		Access:  cfg.JWT.AccessTokenExpiry,
		Refresh: cfg.JWT.RefreshTokenExpiry,
	}, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	emailService := email.NewService(emailQueueRepo)
	suggester := adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model)
	if !suggester.IsAvailable() {
		slog.Warn("GEMINI_API_KEY not set, category suggestions disabled")
	}

	emailSender := opts.EmailSender
	if emailSender == nil {
		if cfg.Email.ResendAPIKey != "" {
			emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		} else {
			slog.Warn("RESEND_API_KEY not set, emails will be logged only")
			emailSender = email.NewMockEmailSender()
		}
	}
	renderer, err := templates.NewRenderer(cfg.Report.CompanyName)
	if err != nil {
		return nil, err
	}
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Auth
	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewRefreshTokenUseCase(userRepo, tokenService),
		auth.NewLogoutUserUseCase(tokenService),
		auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL),
		auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService, emailService),
		auth.NewGetCurrentUserUseCase(userRepo),
	)

	// Catalog
	clientController := controller.NewClientController(
		client.NewListClientsUseCase(clientRepo),
		client.NewGetClientUseCase(clientRepo),
		client.NewCreateClientUseCase(clientRepo),
		client.NewUpdateClientUseCase(clientRepo),
		client.NewDeleteClientUseCase(clientRepo),
	)
	productController := controller.NewProductController(
		product.NewListProductsUseCase(productRepo),
		product.NewGetProductUseCase(productRepo),
		product.NewCreateProductUseCase(productRepo),
		product.NewUpdateProductUseCase(productRepo),
		product.NewDeleteProductUseCase(productRepo),
	)

	// Transactions
	saleController := controller.NewSaleController(
		sale.NewListSalesUseCase(saleRepo, location),
		sale.NewGetSaleUseCase(saleRepo),
		sale.NewCreateSaleUseCase(saleRepo, productRepo),
		sale.NewUpdateSaleUseCase(saleRepo, productRepo),
		sale.NewDeleteSaleUseCase(saleRepo),
		sale.NewGetMonthlySeriesUseCase(saleRepo, cfg.Report.LookbackMonths, location),
		sale.NewGetMonthlyUnitsUseCase(saleRepo, cfg.Report.LookbackMonths, location),
		location,
	)
	expenseController := controller.NewExpenseController(
		expense.NewListExpensesUseCase(expenseRepo, location),
		expense.NewCreateExpenseUseCase(expenseRepo),
		expense.NewUpdateExpenseUseCase(expenseRepo),
		expense.NewDeleteExpenseUseCase(expenseRepo),
		expense.NewSuggestCategoryUseCase(suggester, prefsRepo),
		location,
	)
	categoryController := controller.NewCategoryController(
		category.NewGetPreferencesUseCase(prefsRepo),
		category.NewSavePreferencesUseCase(prefsRepo),
	)
	goalController := controller.NewGoalController(
		goal.NewGetGoalUseCase(goalRepo),
		goal.NewUpsertGoalUseCase(goalRepo),
	)

	// Aggregation
	loader := dataset.NewLoader(saleRepo, expenseRepo, location)
	dashboardController := controller.NewDashboardController(
		dashboard.NewGetSummaryUseCase(loader, goalRepo, cfg.Report.RecentLimit, opts.Now),
		dashboard.NewGetMonthlySeriesUseCase(loader, cfg.Report.MaxMonths, opts.Now),
		dashboard.NewGetCategoryBreakdownUseCase(loader),
		location,
	)

	generator := report.NewGenerator(loader, goalRepo, settingsRepo, opts.Storage, report.Config{
		CompanyName:    cfg.Report.CompanyName,
		LookbackMonths: cfg.Report.LookbackMonths,
	}, opts.Now)
	reportController := controller.NewReportController(
		report.NewPreviewReportUseCase(generator),
		report.NewExportReportUseCase(generator, export.NewDefaultRegistry()),
		location,
	)

	// Settings
	var settingsController *controller.SettingsController
	if opts.Storage != nil {
		settingsController = controller.NewSettingsController(
			settings.NewGetSettingsUseCase(settingsRepo),
			settings.NewUpdateSettingsUseCase(settingsRepo),
			settings.NewUploadLogoUseCase(settingsRepo, opts.Storage, cfg.Storage.MaxLogoSize),
			settings.NewGetLogoUseCase(settingsRepo, opts.Storage),
		)
	} else {
		slog.Warn("Object storage not configured, settings routes disabled")
	}

	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cache.HealthCheck(opts.Redis))

	// Middleware. Counters live in Redis when available so every instance shares them.
	var rateLimitStore middleware.RateLimitStore = middleware.NewMemoryRateLimitStore()
	if opts.Redis != nil {
		rateLimitStore = middleware.NewRedisRateLimitStore(opts.Redis)
	}
	loginAttempts := 5
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginAttempts = 1000
	}
	loginRateLimiter := middleware.NewRateLimiterWithStore(rateLimitStore, loginAttempts, time.Minute)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		clientController,
		productController,
		saleController,
		expenseController,
		categoryController,
		goalController,
		dashboardController,
		reportController,
		settingsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
		tokens:      tokenRepo,
	}, nil
}
