package service

import (
	"strings"
	"testing"
	"time"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newReportService() (*ReportService, *testutil.MockExpenseRepository, *testutil.MockBudgetRepository, *testutil.MockUserRepository) {
	expenseRepo := testutil.NewMockExpenseRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	userRepo := testutil.NewMockUserRepository()
	return NewReportService(expenseRepo, budgetRepo, userRepo), expenseRepo, budgetRepo, userRepo
}

func TestGenerateReport_EmptyMonth(t *testing.T) {
	svc, _, _, _ := newReportService()

	_, err := svc.Generate(uuid.New(), 6, 2025, ReportFormatHTML)
	if err != domain.ErrNoExpensesForPeriod {
		t.Errorf("Expected ErrNoExpensesForPeriod, got %v", err)
	}
}

func TestGenerateReport_InvalidInputs(t *testing.T) {
	svc, expenseRepo, _, _ := newReportService()
	userID := uuid.New()

	expenseRepo.Create(&domain.Expense{
		UserID:      userID,
		Amount:      decimal.NewFromInt(100),
		Description: "Coffee",
		Date:        time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})

	if _, err := svc.Generate(userID, 0, 2025, ReportFormatHTML); err != domain.ErrInvalidMonth {
		t.Errorf("Expected ErrInvalidMonth, got %v", err)
	}
	if _, err := svc.Generate(userID, 6, 2025, ReportFormat("pdf")); err != domain.ErrInvalidInput {
		t.Errorf("Expected ErrInvalidInput for unknown format, got %v", err)
	}
}

func TestGenerateReport_HTML(t *testing.T) {
	svc, expenseRepo, budgetRepo, userRepo := newReportService()
	userID := uuid.New()

	name := "Asha Rao"
	user := &domain.User{
		ID:       userID,
		Auth0ID:  "auth0|asha",
		Email:    "asha@example.com",
		FullName: &name,
	}
	userRepo.Users[user.Auth0ID] = user
	userRepo.ByID[userID] = user

	budgetRepo.Create(&domain.Budget{UserID: userID, Amount: decimal.NewFromInt(5000), Month: 6, Year: 2025})
	expenseRepo.Create(&domain.Expense{
		UserID:      userID,
		Amount:      decimal.NewFromFloat(1234.50),
		Description: "Groceries",
		Date:        time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	foodID := uuid.New()
	expenseRepo.Create(&domain.Expense{
		UserID:      userID,
		CategoryID:  &foodID,
		Category:    &domain.CategoryRef{ID: foodID, Name: "Food", Icon: "🍔", Color: "#ef4444"},
		Amount:      decimal.NewFromInt(200),
		Description: "Lunch",
		Date:        time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
	})

	report, err := svc.Generate(userID, 6, 2025, ReportFormatHTML)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.Filename != "FinTrack-Report-2025-06.html" {
		t.Errorf("Unexpected filename %s", report.Filename)
	}
	if report.ContentType != "text/html; charset=utf-8" {
		t.Errorf("Unexpected content type %s", report.ContentType)
	}

	html := string(report.Data)
	for _, want := range []string{
		"June 2025",
		"Asha Rao",
		"Groceries",
		"₹1,434.50",
		"🍔 Food",
		domain.UncategorizedIcon + " " + domain.UncategorizedName,
		"remaining",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected report to contain %q", want)
		}
	}
}

func TestGenerateReport_HTMLDefaultFormat(t *testing.T) {
	svc, expenseRepo, _, _ := newReportService()
	userID := uuid.New()

	expenseRepo.Create(&domain.Expense{
		UserID:      userID,
		Amount:      decimal.NewFromInt(50),
		Description: "Snacks",
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	report, err := svc.Generate(userID, 6, 2025, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasSuffix(report.Filename, ".html") {
		t.Errorf("Blank format should fall back to HTML, got %s", report.Filename)
	}
	// Unknown user falls back to the generic salutation
	if !strings.Contains(string(report.Data), "FinTrack User") {
		t.Error("Expected fallback user name in report")
	}
}

func TestGenerateReport_HTMLOverBudget(t *testing.T) {
	svc, expenseRepo, budgetRepo, _ := newReportService()
	userID := uuid.New()

	budgetRepo.Create(&domain.Budget{UserID: userID, Amount: decimal.NewFromInt(100), Month: 6, Year: 2025})
	expenseRepo.Create(&domain.Expense{
		UserID:      userID,
		Amount:      decimal.NewFromInt(150),
		Description: "Dinner",
		Date:        time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
	})

	report, err := svc.Generate(userID, 6, 2025, ReportFormatHTML)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	html := string(report.Data)
	if !strings.Contains(html, "went over by") {
		t.Error("Expected over budget wording in report")
	}
	if !strings.Contains(html, "₹50") {
		t.Error("Expected overshoot amount in report")
	}
}

func TestGenerateReport_XLSX(t *testing.T) {
	svc, expenseRepo, _, _ := newReportService()
	userID := uuid.New()

	expenseRepo.Create(&domain.Expense{
		UserID:      userID,
		Amount:      decimal.NewFromInt(300),
		Description: "Books",
		Date:        time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	})

	report, err := svc.Generate(userID, 6, 2025, ReportFormatXLSX)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.Filename != "FinTrack-Report-2025-06.xlsx" {
		t.Errorf("Unexpected filename %s", report.Filename)
	}
	if report.ContentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Unexpected content type %s", report.ContentType)
	}
	if len(report.Data) == 0 {
		t.Error("Expected non-empty workbook")
	}
	// xlsx files are zip archives
	if string(report.Data[:2]) != "PK" {
		t.Error("Expected zip magic bytes in workbook output")
	}
}
