package handler

import (
	"encoding/json"
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

func newExpenseHandler() (*ExpenseHandler, *testutil.MockExpenseRepository, *testutil.MockCategoryRepository) {
	expenseRepo := testutil.NewMockExpenseRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	return NewExpenseHandler(service.NewExpenseService(expenseRepo, categoryRepo)), expenseRepo, categoryRepo
}

func TestCreateExpense_Success(t *testing.T) {
	e := echo.New()
	handler, _, categoryRepo := newExpenseHandler()
	userID := uuid.New()

	category, _ := categoryRepo.Create(&domain.Category{UserID: userID, Name: "Food"})

	reqBody := `{"amount": "249.50", "description": "Lunch", "date": "2025-06-10", "categoryId": "` + category.ID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", userID)

	if err := handler.CreateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var response ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Amount != "249.50" {
		t.Errorf("Expected amount '249.50', got %s", response.Amount)
	}
	if response.Date != "2025-06-10" {
		t.Errorf("Expected date '2025-06-10', got %s", response.Date)
	}
}

func TestCreateExpense_InvalidAmount(t *testing.T) {
	e := echo.New()
	handler, _, _ := newExpenseHandler()

	for _, body := range []string{
		`{"amount": "abc", "description": "Lunch"}`,
		`{"amount": "-10", "description": "Lunch"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", uuid.New())

		if err := handler.CreateExpense(c); err != nil {
			t.Fatalf("Expected JSON response, got error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400 for %s, got %d", body, rec.Code)
		}
	}
}

func TestCreateExpense_ForeignCategory(t *testing.T) {
	e := echo.New()
	handler, _, categoryRepo := newExpenseHandler()

	other, _ := categoryRepo.Create(&domain.Category{UserID: uuid.New(), Name: "Not Yours"})

	reqBody := `{"amount": "100", "description": "Lunch", "categoryId": "` + other.ID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", uuid.New())

	if err := handler.CreateExpense(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for another user's category, got %d", rec.Code)
	}
}

func TestGetExpenses_Filters(t *testing.T) {
	e := echo.New()
	handler, expenseRepo, _ := newExpenseHandler()
	userID := uuid.New()

	for day := 1; day <= 3; day++ {
		expenseRepo.Create(&domain.Expense{
			UserID: userID,
			Amount: decimal.NewFromInt(int64(day * 10)),
			Date:   time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses?startDate=2025-06-02&limit=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", userID)

	if err := handler.GetExpenses(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 1 {
		t.Fatalf("Expected 1 expense after filter and limit, got %d", len(response))
	}
	// Descending by date: the newest matching expense survives the limit
	if response[0].Date != "2025-06-03" {
		t.Errorf("Expected newest expense first, got %s", response[0].Date)
	}
}

func TestGetExpenses_InvalidFilter(t *testing.T) {
	e := echo.New()
	handler, _, _ := newExpenseHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses?startDate=not-a-date", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", uuid.New())

	if err := handler.GetExpenses(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestUpdateExpense_NotFound(t *testing.T) {
	e := echo.New()
	handler, _, _ := newExpenseHandler()

	reqBody := `{"amount": "100", "description": "Lunch"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/expenses/"+uuid.NewString(), strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", uuid.New())

	if err := handler.UpdateExpense(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestDeleteExpense_Idempotent(t *testing.T) {
	e := echo.New()
	handler, _, _ := newExpenseHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/expenses/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", uuid.New())

	if err := handler.DeleteExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Deleting an absent expense should be 204, got %d", rec.Code)
	}
}
