package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// EmailHandler describes the email integration. Transactional email is
// delegated to Auth0 email templates, so this surface is informational.
type EmailHandler struct{}

// NewEmailHandler creates a new EmailHandler
func NewEmailHandler() *EmailHandler {
	return &EmailHandler{}
}

// EmailInfoResponse represents the email integration description
type EmailInfoResponse struct {
	Provider    string `json:"provider"`
	Description string `json:"description"`
}

// GetInfo handles GET /api/v1/email
func (h *EmailHandler) GetInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, EmailInfoResponse{
		Provider:    "auth0",
		Description: "Transactional email (verification, password reset) is handled by Auth0 email templates. No emails are sent from this API.",
	})
}

// Send handles POST /api/v1/email
func (h *EmailHandler) Send(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, ProblemDetails{
		Type:     ErrorTypeUnavailable,
		Title:    "Not Implemented",
		Status:   http.StatusNotImplemented,
		Detail:   "Email sending is delegated to Auth0 and not available through this API",
		Instance: c.Request().URL.Path,
	})
}
