package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/middleware"
	"github.com/fintrack/fintrack-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ReportHandler handles report generation HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GenerateReportRequest represents the generate report request body
type GenerateReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// GenerateReport handles POST /api/v1/reports/generate
// The format query param selects html (default) or xlsx. The response is
// the document itself as an attachment.
func (h *ReportHandler) GenerateReport(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req GenerateReportRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	format := service.ReportFormat(c.QueryParam("format"))

	report, err := h.reportService.Generate(userID, req.Month, req.Year, format)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMonth):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "month", Message: "Month must be between 1 and 12"},
			})
		case errors.Is(err, domain.ErrNoExpensesForPeriod):
			return NewNotFoundError(c, "No expenses found for this period")
		case errors.Is(err, domain.ErrInvalidInput):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "format", Message: "Format must be html or xlsx"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Int("month", req.Month).Int("year", req.Year).Msg("Failed to generate report")
		return NewInternalError(c, "Failed to generate report")
	}

	log.Info().Str("user_id", userID.String()).Str("filename", report.Filename).Msg("Report generated")

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename))
	return c.Blob(http.StatusOK, report.ContentType, report.Data)
}
