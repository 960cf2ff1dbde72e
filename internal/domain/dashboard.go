package domain

import "github.com/shopspring/decimal"

// DashboardSummary is the aggregate view backing the dashboard page:
// month-to-date spending against the month's budget, goal counts, the most
// recent expenses and the per-category split.
type DashboardSummary struct {
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	TotalBudget      decimal.Decimal `json:"totalBudget"`
	ExpenseCount     int             `json:"expenseCount"`
	ActiveGoalCount  int             `json:"activeGoalCount"`
	BudgetProgress   Progress        `json:"budgetProgress"`
	OverBudget       bool            `json:"overBudget"`
	RecentExpenses   []*Expense      `json:"recentExpenses"`
	CategorySpending []CategorySlice `json:"categorySpending"`
}
