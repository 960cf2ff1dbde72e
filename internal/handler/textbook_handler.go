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

// TextbookHandler handles textbook tracking HTTP requests
type TextbookHandler struct {
	textbookService *service.TextbookService
}

// NewTextbookHandler creates a new TextbookHandler
func NewTextbookHandler(textbookService *service.TextbookService) *TextbookHandler {
	return &TextbookHandler{textbookService: textbookService}
}

// CreateTextbookRequest represents the create textbook request body
type CreateTextbookRequest struct {
	Title         string  `json:"title"`
	Subject       string  `json:"subject"`
	Price         string  `json:"price"`
	PurchasedDate string  `json:"purchasedDate"`
	Semester      string  `json:"semester"`
	Condition     *string `json:"condition"`
}

// TextbookResponse represents a textbook in API responses
type TextbookResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Subject       string  `json:"subject"`
	Price         string  `json:"price"`
	PurchasedDate string  `json:"purchasedDate"`
	Semester      string  `json:"semester"`
	Condition     *string `json:"condition,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// TextbookListResponse represents the textbook listing with totals
type TextbookListResponse struct {
	Textbooks  []TextbookResponse `json:"textbooks"`
	TotalSpent string             `json:"totalSpent"`
	Count      int                `json:"count"`
}

func toTextbookResponse(textbook *domain.Textbook) TextbookResponse {
	return TextbookResponse{
		ID:            textbook.ID.String(),
		Title:         textbook.Title,
		Subject:       textbook.Subject,
		Price:         textbook.Price.StringFixed(2),
		PurchasedDate: textbook.PurchasedDate.Format("2006-01-02"),
		Semester:      textbook.Semester,
		Condition:     textbook.Condition,
		CreatedAt:     textbook.CreatedAt.Format(time.RFC3339),
	}
}

// CreateTextbook handles POST /api/v1/textbooks
func (h *TextbookHandler) CreateTextbook(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateTextbookRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	price := decimal.Zero
	if req.Price != "" {
		var err error
		price, err = decimal.NewFromString(req.Price)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "price", Message: "Must be a valid decimal number"},
			})
		}
	}

	input := service.CreateTextbookInput{
		Title:     req.Title,
		Subject:   req.Subject,
		Price:     price,
		Semester:  req.Semester,
		Condition: req.Condition,
	}
	if req.PurchasedDate != "" {
		purchased, err := time.Parse("2006-01-02", req.PurchasedDate)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "purchasedDate", Message: "Must be an ISO date (YYYY-MM-DD)"},
			})
		}
		input.PurchasedDate = purchased
	}

	textbook, err := h.textbookService.CreateTextbook(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "title", Message: "Title is required"},
			})
		case errors.Is(err, domain.ErrNameTooLong):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "title", Message: "Title must be 255 characters or less"},
			})
		case errors.Is(err, domain.ErrInvalidAmount):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "price", Message: "Price must not be negative"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create textbook")
		return NewInternalError(c, "Failed to create textbook")
	}

	log.Info().Str("user_id", userID.String()).Str("textbook_id", textbook.ID.String()).Str("title", textbook.Title).Msg("Textbook created")
	return c.JSON(http.StatusCreated, toTextbookResponse(textbook))
}

// GetTextbooks handles GET /api/v1/textbooks
func (h *TextbookHandler) GetTextbooks(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	textbooks, err := h.textbookService.GetTextbooks(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get textbooks")
		return NewInternalError(c, "Failed to get textbooks")
	}

	total := decimal.Zero
	response := make([]TextbookResponse, len(textbooks))
	for i, textbook := range textbooks {
		response[i] = toTextbookResponse(textbook)
		total = total.Add(textbook.Price)
	}

	return c.JSON(http.StatusOK, TextbookListResponse{
		Textbooks:  response,
		TotalSpent: total.StringFixed(2),
		Count:      len(textbooks),
	})
}

// DeleteTextbook handles DELETE /api/v1/textbooks/:id
func (h *TextbookHandler) DeleteTextbook(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid textbook ID", nil)
	}

	if err := h.textbookService.DeleteTextbook(userID, id); err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Str("textbook_id", id.String()).Msg("Failed to delete textbook")
		return NewInternalError(c, "Failed to delete textbook")
	}

	log.Info().Str("user_id", userID.String()).Str("textbook_id", id.String()).Msg("Textbook deleted")
	return c.NoContent(http.StatusNoContent)
}
