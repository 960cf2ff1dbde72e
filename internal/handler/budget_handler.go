package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/middleware"
	"github.com/fintrack/fintrack-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles monthly budget HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents the create budget request body
type CreateBudgetRequest struct {
	Amount string `json:"amount"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID        string `json:"id"`
	Amount    string `json:"amount"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	CreatedAt string `json:"createdAt"`
}

func toBudgetResponse(budget *domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID.String(),
		Amount:    budget.Amount.StringFixed(2),
		Month:     budget.Month,
		Year:      budget.Year,
		CreatedAt: budget.CreatedAt.Format(time.RFC3339),
	}
}

// CreateBudget handles POST /api/v1/budgets
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	budget, err := h.budgetService.CreateBudget(userID, service.CreateBudgetInput{
		Amount: amount,
		Month:  req.Month,
		Year:   req.Year,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBudgetExists):
			return NewConflictError(c, "budget already exists for this month")
		case errors.Is(err, domain.ErrInvalidAmount):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Amount must not be negative"},
			})
		case errors.Is(err, domain.ErrInvalidMonth):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "month", Message: "Month must be between 1 and 12"},
			})
		case errors.Is(err, domain.ErrInvalidYear):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "year", Message: "Year is out of range"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create budget")
		return NewInternalError(c, "Failed to create budget")
	}

	log.Info().Str("user_id", userID.String()).Int("month", budget.Month).Int("year", budget.Year).Msg("Budget created")
	return c.JSON(http.StatusCreated, toBudgetResponse(budget))
}

// GetBudgets handles GET /api/v1/budgets
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	budgets, err := h.budgetService.GetBudgets(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get budgets")
		return NewInternalError(c, "Failed to get budgets")
	}

	response := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		response[i] = toBudgetResponse(budget)
	}
	return c.JSON(http.StatusOK, response)
}

// DeleteBudget handles DELETE /api/v1/budgets/:id
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	if err := h.budgetService.DeleteBudget(userID, id); err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Str("budget_id", id.String()).Msg("Failed to delete budget")
		return NewInternalError(c, "Failed to delete budget")
	}

	log.Info().Str("user_id", userID.String()).Str("budget_id", id.String()).Msg("Budget deleted")
	return c.NoContent(http.StatusNoContent)
}
