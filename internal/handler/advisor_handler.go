package handler

import (
	"errors"
	"net/http"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/middleware"
	"github.com/fintrack/fintrack-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AdvisorHandler handles the budgeting advisor HTTP requests
type AdvisorHandler struct {
	advisorService *service.AdvisorService
}

// NewAdvisorHandler creates a new AdvisorHandler
func NewAdvisorHandler(advisorService *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

// AdvisorRequest represents the advisor request body
type AdvisorRequest struct {
	Message string `json:"message"`
}

// Ask handles POST /api/v1/advisor
func (h *AdvisorHandler) Ask(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req AdvisorRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	reply, err := h.advisorService.Reply(req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "message", Message: "Message is required"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to answer advisor question")
		return NewInternalError(c, "Failed to answer question")
	}

	return c.JSON(http.StatusOK, reply)
}
