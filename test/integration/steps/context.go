// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	_ "time/tzdata"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/gestao-financeira/backend/config"
	infradb "github.com/gestao-financeira/backend/internal/infra/db"
	"github.com/gestao-financeira/backend/internal/infra/dependency"
	"github.com/gestao-financeira/backend/internal/integration/email"
	"github.com/gestao-financeira/backend/internal/integration/storage"
	"github.com/gestao-financeira/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken  string
	refreshToken string

	// Values captured from earlier responses, substituted as {name} in paths and bodies.
	saved map[string]string

	// Infrastructure
	cfg         *config.Config
	db          *mock.Db
	clock       *mock.Time
	emailSender *email.MockEmailSender
	injector    *dependency.Injector
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		mock.NewDb(infradb.Models())
		mock.NewRedis()
	})
}

// InitializeScenario wires a fresh API instance per scenario and registers
// all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerFixtureSteps(ctx)
	registerResponseSteps(ctx)
}

func newTestContext() (*TestContext, error) {
	database := mock.NewDb(infradb.Models())
	if err := database.ClearDB(); err != nil {
		return nil, fmt.Errorf("failed to clear database: %w", err)
	}

	redisClient := mock.NewRedis()
	if err := mock.ClearRedis(redisClient); err != nil {
		return nil, fmt.Errorf("failed to clear redis: %w", err)
	}

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.BcryptCost = 4
	cfg.AI.GeminiAPIKey = ""
	cfg.Report.CompanyName = "Loja Teste"
	cfg.Report.Location = "America/Sao_Paulo"

	tc := &TestContext{
		requestHeaders: make(map[string]string),
		saved:          make(map[string]string),
		cfg:            cfg,
		db:             database,
		clock:          mock.NewTime(),
		emailSender:    email.NewMockEmailSender(),
	}

	injector, err := dependency.NewInjector(cfg, database.DbConn, dependency.Options{
		Redis:       redisClient,
		Storage:     storage.NewMemoryStorage(),
		EmailSender: tc.emailSender,
		Now:         tc.clock.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to wire dependencies: %w", err)
	}
	tc.injector = injector
	tc.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))

	return tc, nil
}
