package handler

import (
	"net/http"

	"github.com/fintrack/fintrack-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
	authHandler *AuthHandler,
	profileHandler *ProfileHandler,
	categoryHandler *CategoryHandler,
	expenseHandler *ExpenseHandler,
	budgetHandler *BudgetHandler,
	savingsHandler *SavingsHandler,
	textbookHandler *TextbookHandler,
	dashboardHandler *DashboardHandler,
	reportHandler *ReportHandler,
	advisorHandler *AdvisorHandler,
	emailHandler *EmailHandler,
	wsHandler *WebSocketHandler,
) {
	// Health check (unauthenticated)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// WebSocket endpoint authenticates via token query param
	e.GET("/ws", wsHandler.HandleWS)

	// API version 1
	api := e.Group("/api/v1")
	api.Use(authMiddleware.Authenticate())
	if rateLimiter != nil {
		api.Use(middleware.RateLimitMiddleware(rateLimiter))
	}

	// Auth routes
	auth := api.Group("/auth")
	auth.POST("/callback", authHandler.Callback)
	auth.GET("/me", authHandler.Me)

	// Profile routes
	profile := api.Group("/profile")
	profile.GET("", profileHandler.GetProfile)
	profile.PUT("", profileHandler.UpdateProfile)
	profile.POST("/avatar", profileHandler.UploadAvatar)

	// Category routes
	categories := api.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Expense routes
	expenses := api.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Budget routes
	budgets := api.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Savings goal routes
	goals := api.Group("/savings-goals")
	goals.POST("", savingsHandler.CreateGoal)
	goals.GET("", savingsHandler.GetGoals)
	goals.PUT("/:id", savingsHandler.UpdateGoal)
	goals.PATCH("/:id/funds", savingsHandler.UpdateFunds)
	goals.DELETE("/:id", savingsHandler.DeleteGoal)

	// Textbook routes
	textbooks := api.Group("/textbooks")
	textbooks.POST("", textbookHandler.CreateTextbook)
	textbooks.GET("", textbookHandler.GetTextbooks)
	textbooks.DELETE("/:id", textbookHandler.DeleteTextbook)

	// Dashboard and analytics routes
	api.GET("/dashboard/summary", dashboardHandler.GetSummary)
	api.GET("/analytics/charts", dashboardHandler.GetCharts)

	// Report routes
	api.POST("/reports/generate", reportHandler.GenerateReport)

	// Advisor and email routes
	api.POST("/advisor", advisorHandler.Ask)
	api.GET("/email", emailHandler.GetInfo)
	api.POST("/email", emailHandler.Send)
}
