package service

import (
	"errors"
	"testing"
	"time"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestCreateGoal_Success(t *testing.T) {
	goalRepo := testutil.NewMockSavingsGoalRepository()
	savingsService := NewSavingsService(goalRepo)

	userID := uuid.New()
	deadline := time.Now().AddDate(0, 6, 0)
	goal, err := savingsService.CreateGoal(userID, CreateGoalInput{
		Name:         "New Laptop",
		TargetAmount: decimal.NewFromInt(60000),
		Deadline:     &deadline,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if goal.Name != "New Laptop" {
		t.Errorf("Expected name 'New Laptop', got %s", goal.Name)
	}
	if !goal.CurrentAmount.IsZero() {
		t.Errorf("Expected zero saved initially, got %s", goal.CurrentAmount)
	}
	if goal.Achieved() {
		t.Error("New goal should not be achieved")
	}
}

func TestCreateGoal_Validation(t *testing.T) {
	goalRepo := testutil.NewMockSavingsGoalRepository()
	savingsService := NewSavingsService(goalRepo)
	userID := uuid.New()

	tests := []struct {
		name    string
		input   CreateGoalInput
		wantErr error
	}{
		{"empty name", CreateGoalInput{Name: "  ", TargetAmount: decimal.NewFromInt(100)}, domain.ErrNameRequired},
		{"zero target", CreateGoalInput{Name: "Trip", TargetAmount: decimal.Zero}, domain.ErrInvalidTarget},
		{"negative target", CreateGoalInput{Name: "Trip", TargetAmount: decimal.NewFromInt(-100)}, domain.ErrInvalidTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := savingsService.CreateGoal(userID, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUpdateFunds_AddAndSubtract(t *testing.T) {
	goalRepo := testutil.NewMockSavingsGoalRepository()
	savingsService := NewSavingsService(goalRepo)

	userID := uuid.New()
	goal, err := savingsService.CreateGoal(userID, CreateGoalInput{
		Name:         "Emergency Fund",
		TargetAmount: decimal.NewFromInt(10000),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := savingsService.UpdateFunds(userID, goal.ID, FundAdd, decimal.NewFromInt(4000))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !updated.CurrentAmount.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("Expected 4000 saved, got %s", updated.CurrentAmount)
	}

	updated, err = savingsService.UpdateFunds(userID, goal.ID, FundSubtract, decimal.NewFromInt(1500))
	if err != nil {
		t.Fatalf("Subtract failed: %v", err)
	}
	if !updated.CurrentAmount.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("Expected 2500 saved, got %s", updated.CurrentAmount)
	}
}

func TestUpdateFunds_FloorsAtZero(t *testing.T) {
	goalRepo := testutil.NewMockSavingsGoalRepository()
	savingsService := NewSavingsService(goalRepo)

	userID := uuid.New()
	goal, _ := savingsService.CreateGoal(userID, CreateGoalInput{
		Name:         "Trip",
		TargetAmount: decimal.NewFromInt(5000),
	})

	if _, err := savingsService.UpdateFunds(userID, goal.ID, FundAdd, decimal.NewFromInt(100)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Withdrawing more than the balance floors at zero
	updated, err := savingsService.UpdateFunds(userID, goal.ID, FundSubtract, decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("Subtract failed: %v", err)
	}
	if !updated.CurrentAmount.IsZero() {
		t.Errorf("Expected saved amount floored at 0, got %s", updated.CurrentAmount)
	}
}

func TestUpdateFunds_Validation(t *testing.T) {
	goalRepo := testutil.NewMockSavingsGoalRepository()
	savingsService := NewSavingsService(goalRepo)

	userID := uuid.New()
	goal, _ := savingsService.CreateGoal(userID, CreateGoalInput{
		Name:         "Trip",
		TargetAmount: decimal.NewFromInt(5000),
	})

	if _, err := savingsService.UpdateFunds(userID, goal.ID, FundAdd, decimal.Zero); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount for zero, got %v", err)
	}
	if _, err := savingsService.UpdateFunds(userID, goal.ID, "double", decimal.NewFromInt(10)); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for unknown op, got %v", err)
	}
	if _, err := savingsService.UpdateFunds(userID, uuid.New(), FundAdd, decimal.NewFromInt(10)); !errors.Is(err, domain.ErrGoalNotFound) {
		t.Errorf("Expected ErrGoalNotFound, got %v", err)
	}
}

func TestGoalProgress(t *testing.T) {
	pastDeadline := time.Now().AddDate(0, 0, -1)
	futureDeadline := time.Now().AddDate(0, 1, 0)

	tests := []struct {
		name     string
		goal     domain.SavingsGoal
		achieved bool
		overdue  bool
	}{
		{
			"achieved at exactly 100%",
			domain.SavingsGoal{TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(1000)},
			true, false,
		},
		{
			"achieved over 100%",
			domain.SavingsGoal{TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(1200)},
			true, false,
		},
		{
			"overdue when past deadline and unmet",
			domain.SavingsGoal{TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(100), Deadline: &pastDeadline},
			false, true,
		},
		{
			"achieved goal is never overdue",
			domain.SavingsGoal{TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(1000), Deadline: &pastDeadline},
			true, false,
		},
		{
			"future deadline not overdue",
			domain.SavingsGoal{TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(100), Deadline: &futureDeadline},
			false, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.goal.Achieved() != tt.achieved {
				t.Errorf("Achieved() = %v, want %v", tt.goal.Achieved(), tt.achieved)
			}
			if tt.goal.Overdue(time.Now()) != tt.overdue {
				t.Errorf("Overdue() = %v, want %v", tt.goal.Overdue(time.Now()), tt.overdue)
			}
		})
	}
}
