package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fintrack/fintrack-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestAdvisorAsk_Success(t *testing.T) {
	e := echo.New()
	handler := NewAdvisorHandler(service.NewAdvisorService())

	reqBody := `{"message": "How can I spend less on food?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/advisor", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", uuid.New())

	if err := handler.Ask(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response service.AdvisorReply
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Reply == "" {
		t.Error("Expected a non-empty reply")
	}
}

func TestAdvisorAsk_EmptyMessage(t *testing.T) {
	e := echo.New()
	handler := NewAdvisorHandler(service.NewAdvisorService())

	reqBody := `{"message": "   "}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/advisor", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", uuid.New())

	if err := handler.Ask(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestEmailInfo(t *testing.T) {
	e := echo.New()
	handler := NewEmailHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/email", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetInfo(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response EmailInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Provider != "auth0" {
		t.Errorf("Expected provider 'auth0', got %s", response.Provider)
	}
}

func TestEmailSend_NotImplemented(t *testing.T) {
	e := echo.New()
	handler := NewEmailHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/email", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Send(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusNotImplemented {
		t.Errorf("Expected status 501, got %d", rec.Code)
	}
}
