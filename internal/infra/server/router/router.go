// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/gestao-financeira/backend/internal/domain/entity"
	"github.com/gestao-financeira/backend/internal/integration/entrypoint/controller"
	"github.com/gestao-financeira/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	clientController    *controller.ClientController
	productController   *controller.ProductController
	saleController      *controller.SaleController
	expenseController   *controller.ExpenseController
	categoryController  *controller.CategoryController
	goalController      *controller.GoalController
	dashboardController *controller.DashboardController
	reportController    *controller.ReportController
	settingsController  *controller.SettingsController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	clientController *controller.ClientController,
	productController *controller.ProductController,
	saleController *controller.SaleController,
	expenseController *controller.ExpenseController,
	categoryController *controller.CategoryController,
	goalController *controller.GoalController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	settingsController *controller.SettingsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		clientController:    clientController,
		productController:   productController,
		saleController:      saleController,
		expenseController:   expenseController,
		categoryController:  categoryController,
		goalController:      goalController,
		dashboardController: dashboardController,
		reportController:    reportController,
		settingsController:  settingsController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	if r.authController != nil && r.loginRateLimiter != nil {
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/logout", r.authController.Logout)
			auth.POST("/forgot-password", r.loginRateLimiter.Middleware(), r.authController.ForgotPassword)
			auth.POST("/reset-password", r.authController.ResetPassword)
			if r.authMiddleware != nil {
				auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
			}
		}
	}

	if r.authMiddleware == nil {
		return
	}

	// Everything below requires a valid access token.
	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	if r.clientController != nil {
		clients := protected.Group("/clients")
		{
			clients.GET("", r.clientController.List)
			clients.POST("", r.clientController.Create)
			clients.GET("/:id", r.clientController.Get)
			clients.PUT("/:id", r.clientController.Update)
			clients.DELETE("/:id", r.clientController.Delete)
		}
	}

	if r.productController != nil {
		products := protected.Group("/products")
		{
			products.GET("", r.productController.List)
			products.POST("", r.productController.Create)
			products.GET("/:id", r.productController.Get)
			products.PUT("/:id", r.productController.Update)
			products.DELETE("/:id", r.productController.Delete)
		}
	}

	if r.saleController != nil {
		sales := protected.Group("/sales")
		{
			sales.GET("", r.saleController.List)
			sales.POST("", r.saleController.Create)
			sales.GET("/monthly/:month/:year", r.saleController.Monthly)
			sales.GET("/products/monthly/:month/:year", r.saleController.MonthlyUnits)
			sales.GET("/:id", r.saleController.Get)
			sales.PUT("/:id", r.saleController.Update)
			sales.DELETE("/:id", r.saleController.Delete)
		}
	}

	if r.expenseController != nil {
		expenses := protected.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.POST("/suggest-category", r.expenseController.SuggestCategory)
			expenses.PUT("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}
	}

	if r.categoryController != nil {
		protected.GET("/expense-categories", r.categoryController.Get)
		protected.PUT("/expense-categories", r.categoryController.Save)
	}

	if r.goalController != nil {
		goals := protected.Group("/goals")
		{
			goals.GET("/:month/:year", r.goalController.Get)
			goals.POST("", r.goalController.Upsert)
		}
	}

	if r.dashboardController != nil {
		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("", r.dashboardController.Summary)
			dashboard.GET("/monthly-series", r.dashboardController.MonthlySeries)
			dashboard.GET("/category-breakdown", r.dashboardController.CategoryBreakdown)
		}
	}

	if r.reportController != nil {
		reports := protected.Group("/reports")
		{
			reports.GET("/:type/preview", r.reportController.Preview)
			reports.GET("/:type/export", r.reportController.Export)
		}
	}

	if r.settingsController != nil {
		adminOnly := r.authMiddleware.RequireRole(entity.UserRoleAdmin)
		settings := protected.Group("/settings")
		{
			settings.GET("", r.settingsController.Get)
			settings.PUT("", adminOnly, r.settingsController.Update)
			settings.GET("/logo", r.settingsController.GetLogo)
			settings.POST("/logo", adminOnly, r.settingsController.UploadLogo)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
