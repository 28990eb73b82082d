// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	budgetController      *controller.BudgetController
	transactionController *controller.TransactionController
	analyticsController   *controller.AnalyticsController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	budgetController *controller.BudgetController,
	transactionController *controller.TransactionController,
	analyticsController *controller.AnalyticsController,
) *Router {
	return &Router{
		healthController:      healthController,
		accountController:     accountController,
		categoryController:    categoryController,
		budgetController:      budgetController,
		transactionController: transactionController,
		analyticsController:   analyticsController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger())

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
	{
		if r.accountController != nil {
			accounts := v1.Group("/accounts")
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
				accounts.GET("/:id", r.accountController.Get)
				accounts.PATCH("/:id", r.accountController.Update)
				accounts.DELETE("/:id", r.accountController.Delete)
			}
		}

		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		if r.budgetController != nil {
			budgets := v1.Group("/budgets")
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.GET("/candidates", r.budgetController.Candidates)
				budgets.POST("/bulk-delete", r.budgetController.BulkDelete)
				budgets.POST("/recompute", r.budgetController.Recompute)
				budgets.DELETE("/series/:parentId", r.budgetController.DeleteSeries)
				budgets.GET("/:id", r.budgetController.Progress)
				budgets.PATCH("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
				budgets.POST("/:id/recompute", r.budgetController.Recompute)
			}
		}

		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.POST("/bulk-delete", r.transactionController.BulkDelete)
				transactions.POST("/bulk-categorize", r.transactionController.BulkCategorize)
			}
		}

		if r.analyticsController != nil {
			analytics := v1.Group("/analytics")
			{
				analytics.GET("/trends", r.analyticsController.Trends)
				analytics.GET("/categories", r.analyticsController.CategoryBreakdown)
				analytics.GET("/insights", r.analyticsController.Insights)
				analytics.GET("/data-range", r.analyticsController.DataRange)
			}
		}
	}
}
