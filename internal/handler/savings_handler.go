package handler

import (
	"errors"
	"fmt"
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

// SavingsHandler handles savings goal HTTP requests
type SavingsHandler struct {
	savingsService *service.SavingsService
}

// NewSavingsHandler creates a new SavingsHandler
func NewSavingsHandler(savingsService *service.SavingsService) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

// SavingsGoalRequest represents the create/update goal request body
type SavingsGoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount string  `json:"targetAmount"`
	Deadline     *string `json:"deadline"`
	Icon         string  `json:"icon"`
	Color        string  `json:"color"`
}

// UpdateFundsRequest represents the fund operation request body
type UpdateFundsRequest struct {
	Amount    string `json:"amount"`
	Operation string `json:"operation"`
}

// SavingsGoalResponse represents a savings goal in API responses
type SavingsGoalResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  string  `json:"targetAmount"`
	CurrentAmount string  `json:"currentAmount"`
	Deadline      *string `json:"deadline,omitempty"`
	Icon          string  `json:"icon"`
	Color         string  `json:"color"`
	Progress      string  `json:"progress"`
	Achieved      bool    `json:"achieved"`
	Overdue       bool    `json:"overdue"`
	CreatedAt     string  `json:"createdAt"`
}

func toSavingsGoalResponse(goal *domain.SavingsGoal) SavingsGoalResponse {
	resp := SavingsGoalResponse{
		ID:            goal.ID.String(),
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount.StringFixed(2),
		CurrentAmount: goal.CurrentAmount.StringFixed(2),
		Icon:          goal.Icon,
		Color:         goal.Color,
		Progress:      fmt.Sprintf("%.1f", goal.ProgressPercentage()),
		Achieved:      goal.Achieved(),
		Overdue:       goal.Overdue(time.Now()),
		CreatedAt:     goal.CreatedAt.Format(time.RFC3339),
	}
	if goal.Deadline != nil {
		deadline := goal.Deadline.Format("2006-01-02")
		resp.Deadline = &deadline
	}
	return resp
}

func (h *SavingsHandler) parseGoalRequest(c echo.Context, req *SavingsGoalRequest) (service.CreateGoalInput, error) {
	var input service.CreateGoalInput

	target, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		return input, NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "targetAmount", Message: "Must be a valid decimal number"},
		})
	}
	input.Name = req.Name
	input.TargetAmount = target
	input.Icon = req.Icon
	input.Color = req.Color

	if req.Deadline != nil && *req.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return input, NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "deadline", Message: "Must be an ISO date (YYYY-MM-DD)"},
			})
		}
		input.Deadline = &deadline
	}

	return input, nil
}

func goalErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name must be 255 characters or less"},
		})
	case errors.Is(err, domain.ErrInvalidTarget):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "targetAmount", Message: "Target amount must be positive"},
		})
	case errors.Is(err, domain.ErrGoalNotFound):
		return NewNotFoundError(c, "Savings goal not found")
	}
	return nil
}

// CreateGoal handles POST /api/v1/savings-goals
func (h *SavingsHandler) CreateGoal(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req SavingsGoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, parseErr := h.parseGoalRequest(c, &req)
	if parseErr != nil {
		return parseErr
	}

	goal, err := h.savingsService.CreateGoal(userID, input)
	if err != nil {
		if resp := goalErrorResponse(c, err); resp != nil {
			return resp
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create savings goal")
		return NewInternalError(c, "Failed to create savings goal")
	}

	log.Info().Str("user_id", userID.String()).Str("goal_id", goal.ID.String()).Str("name", goal.Name).Msg("Savings goal created")
	return c.JSON(http.StatusCreated, toSavingsGoalResponse(goal))
}

// GetGoals handles GET /api/v1/savings-goals
func (h *SavingsHandler) GetGoals(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	goals, err := h.savingsService.GetGoals(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get savings goals")
		return NewInternalError(c, "Failed to get savings goals")
	}

	response := make([]SavingsGoalResponse, len(goals))
	for i, goal := range goals {
		response[i] = toSavingsGoalResponse(goal)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateGoal handles PUT /api/v1/savings-goals/:id
func (h *SavingsHandler) UpdateGoal(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid goal ID", nil)
	}

	var req SavingsGoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, parseErr := h.parseGoalRequest(c, &req)
	if parseErr != nil {
		return parseErr
	}

	goal, err := h.savingsService.UpdateGoal(userID, id, input)
	if err != nil {
		if resp := goalErrorResponse(c, err); resp != nil {
			return resp
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("goal_id", id.String()).Msg("Failed to update savings goal")
		return NewInternalError(c, "Failed to update savings goal")
	}

	log.Info().Str("user_id", userID.String()).Str("goal_id", goal.ID.String()).Msg("Savings goal updated")
	return c.JSON(http.StatusOK, toSavingsGoalResponse(goal))
}

// UpdateFunds handles PATCH /api/v1/savings-goals/:id/funds
func (h *SavingsHandler) UpdateFunds(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid goal ID", nil)
	}

	var req UpdateFundsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	goal, err := h.savingsService.UpdateFunds(userID, id, service.FundOperation(req.Operation), amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGoalNotFound):
			return NewNotFoundError(c, "Savings goal not found")
		case errors.Is(err, domain.ErrInvalidAmount):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Amount must be positive"},
			})
		case errors.Is(err, domain.ErrInvalidInput):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "operation", Message: "Operation must be add or subtract"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("goal_id", id.String()).Msg("Failed to update funds")
		return NewInternalError(c, "Failed to update funds")
	}

	log.Info().Str("user_id", userID.String()).Str("goal_id", goal.ID.String()).Str("operation", req.Operation).Msg("Savings goal funds updated")
	return c.JSON(http.StatusOK, toSavingsGoalResponse(goal))
}

// DeleteGoal handles DELETE /api/v1/savings-goals/:id
func (h *SavingsHandler) DeleteGoal(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid goal ID", nil)
	}

	if err := h.savingsService.DeleteGoal(userID, id); err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Str("goal_id", id.String()).Msg("Failed to delete savings goal")
		return NewInternalError(c, "Failed to delete savings goal")
	}

	log.Info().Str("user_id", userID.String()).Str("goal_id", id.String()).Msg("Savings goal deleted")
	return c.NoContent(http.StatusNoContent)
}
