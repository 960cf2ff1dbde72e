package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/service"
	"github.com/fintrack/fintrack-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newReportHandler() (*ReportHandler, *testutil.MockExpenseRepository) {
	expenseRepo := testutil.NewMockExpenseRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	userRepo := testutil.NewMockUserRepository()
	svc := service.NewReportService(expenseRepo, budgetRepo, userRepo)
	return NewReportHandler(svc), expenseRepo
}

func generateReport(t *testing.T, handler *ReportHandler, userID uuid.UUID, body, query string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/generate"+query, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", userID)

	if err := handler.GenerateReport(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	return rec
}

func TestGenerateReport_EmptyMonth404(t *testing.T) {
	handler, _ := newReportHandler()

	rec := generateReport(t, handler, uuid.New(), `{"month": 6, "year": 2025}`, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for empty month, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No expenses found for this period") {
		t.Errorf("Expected the specific empty-period message, got %s", rec.Body.String())
	}
}

func TestGenerateReport_HTMLAttachment(t *testing.T) {
	handler, expenseRepo := newReportHandler()
	userID := uuid.New()

	expenseRepo.Create(&domain.Expense{
		UserID:      userID,
		Amount:      decimal.NewFromInt(500),
		Description: "Groceries",
		Date:        time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})

	rec := generateReport(t, handler, userID, `{"month": 6, "year": 2025}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	disposition := rec.Header().Get(echo.HeaderContentDisposition)
	if !strings.Contains(disposition, "FinTrack-Report-2025-06.html") {
		t.Errorf("Expected attachment filename in disposition, got %s", disposition)
	}
	if !strings.Contains(rec.Header().Get(echo.HeaderContentType), "text/html") {
		t.Errorf("Expected HTML content type, got %s", rec.Header().Get(echo.HeaderContentType))
	}
	if !strings.Contains(rec.Body.String(), "Groceries") {
		t.Error("Expected expense row in report body")
	}
}

func TestGenerateReport_XLSXFormat(t *testing.T) {
	handler, expenseRepo := newReportHandler()
	userID := uuid.New()

	expenseRepo.Create(&domain.Expense{
		UserID:      userID,
		Amount:      decimal.NewFromInt(500),
		Description: "Groceries",
		Date:        time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})

	rec := generateReport(t, handler, userID, `{"month": 6, "year": 2025}`, "?format=xlsx")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get(echo.HeaderContentDisposition), "FinTrack-Report-2025-06.xlsx") {
		t.Errorf("Expected xlsx filename, got %s", rec.Header().Get(echo.HeaderContentDisposition))
	}
}

func TestGenerateReport_BadInput(t *testing.T) {
	handler, expenseRepo := newReportHandler()
	userID := uuid.New()

	expenseRepo.Create(&domain.Expense{
		UserID:      userID,
		Amount:      decimal.NewFromInt(100),
		Description: "Coffee",
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	if rec := generateReport(t, handler, userID, `{"month": 0, "year": 2025}`, ""); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for month 0, got %d", rec.Code)
	}
	if rec := generateReport(t, handler, userID, `{"month": 6, "year": 2025}`, "?format=pdf"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown format, got %d", rec.Code)
	}
}

func TestGenerateReport_NoAuth(t *testing.T) {
	e := echo.New()
	handler, _ := newReportHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/generate", strings.NewReader(`{"month": 6, "year": 2025}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GenerateReport(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}
