package service

import (
	"errors"
	"time"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/util"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// recentExpenseLimit is how many recent expenses the dashboard shows
const recentExpenseLimit = 5

// DashboardService aggregates the month-at-a-glance summary
type DashboardService struct {
	expenseRepo domain.ExpenseRepository
	budgetRepo  domain.BudgetRepository
	goalRepo    domain.SavingsGoalRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(expenseRepo domain.ExpenseRepository, budgetRepo domain.BudgetRepository, goalRepo domain.SavingsGoalRepository) *DashboardService {
	return &DashboardService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		goalRepo:    goalRepo,
	}
}

// GetSummary builds the dashboard summary for a month. A missing budget
// yields a zero budget with ok progress rather than an error.
func (s *DashboardService) GetSummary(userID uuid.UUID, month, year int) (*domain.DashboardSummary, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidMonth
	}

	first, last := util.MonthRange(year, month)
	expenses, err := s.expenseRepo.GetAllByUser(userID, &domain.ExpenseFilters{
		StartDate: &first,
		EndDate:   &last,
	})
	if err != nil {
		return nil, err
	}

	totalExpenses := MonthTotal(expenses, first, last)

	totalBudget := decimal.Zero
	budget, err := s.budgetRepo.GetByMonth(userID, month, year)
	if err != nil && !errors.Is(err, domain.ErrBudgetNotFound) {
		return nil, err
	}
	if budget != nil {
		totalBudget = budget.Amount
	}

	goals, err := s.goalRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}
	activeGoals := 0
	for _, g := range goals {
		if !g.Achieved() {
			activeGoals++
		}
	}

	progress := EvaluateProgress(totalExpenses, totalBudget, domain.DashboardThresholds)

	recent := expenses
	if len(recent) > recentExpenseLimit {
		recent = recent[:recentExpenseLimit]
	}

	return &domain.DashboardSummary{
		Month:            month,
		Year:             year,
		TotalExpenses:    totalExpenses,
		TotalBudget:      totalBudget,
		ExpenseCount:     len(expenses),
		ActiveGoalCount:  activeGoals,
		BudgetProgress:   progress,
		OverBudget:       totalBudget.IsPositive() && totalExpenses.GreaterThan(totalBudget),
		RecentExpenses:   recent,
		CategorySpending: CategoryBreakdown(expenses),
	}, nil
}

// GetCharts builds the analytics chart payload from the user's expense
// history starting at since. A zero since means the full history.
func (s *DashboardService) GetCharts(userID uuid.UUID, since time.Time) (*domain.ChartData, error) {
	var filters *domain.ExpenseFilters
	if !since.IsZero() {
		filters = &domain.ExpenseFilters{StartDate: &since}
	}

	expenses, err := s.expenseRepo.GetAllByUser(userID, filters)
	if err != nil {
		return nil, err
	}

	// Aggregations walk expenses oldest first so bucket order is stable
	chronological := make([]*domain.Expense, len(expenses))
	for i, e := range expenses {
		chronological[len(expenses)-1-i] = e
	}

	return &domain.ChartData{
		ByCategory: CategoryBreakdown(chronological),
		ByWeek:     WeeklyTotals(chronological),
		ByMonth:    MonthlyTotals(chronological),
	}, nil
}
