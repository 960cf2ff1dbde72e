package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/middleware"
	"github.com/fintrack/fintrack-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DefaultChartMonths is the trailing window for analytics charts when the
// request does not specify one.
const DefaultChartMonths = 6

// DashboardHandler handles dashboard and analytics HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles GET /api/v1/dashboard/summary
// Defaults to the current month; month and year query params override.
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if v := c.QueryParam("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return NewValidationError(c, "Invalid month", nil)
		}
		month = m
	}
	if v := c.QueryParam("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return NewValidationError(c, "Invalid year", nil)
		}
		year = y
	}

	summary, err := h.dashboardService.GetSummary(userID, month, year)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMonth) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "month", Message: "Month must be between 1 and 12"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to build dashboard summary")
		return NewInternalError(c, "Failed to build dashboard summary")
	}

	return c.JSON(http.StatusOK, summary)
}

// GetCharts handles GET /api/v1/analytics/charts
// The months query param bounds the trailing window, default 6.
func (h *DashboardHandler) GetCharts(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	months := DefaultChartMonths
	if v := c.QueryParam("months"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m <= 0 {
			return NewValidationError(c, "Invalid months", nil)
		}
		months = m
	}

	since := time.Now().AddDate(0, -months, 0)
	charts, err := h.dashboardService.GetCharts(userID, since)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to build charts")
		return NewInternalError(c, "Failed to build charts")
	}

	return c.JSON(http.StatusOK, charts)
}
