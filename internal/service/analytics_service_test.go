package service

import (
	"testing"
	"time"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/shopspring/decimal"
)

func expenseOn(date string, amount float64, cat *domain.CategoryRef) *domain.Expense {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return &domain.Expense{
		Amount:   decimal.NewFromFloat(amount),
		Date:     d,
		Category: cat,
	}
}

func TestCategoryBreakdown(t *testing.T) {
	food := &domain.CategoryRef{Name: "Food", Icon: "🍔", Color: "#ef4444"}

	expenses := []*domain.Expense{
		expenseOn("2025-06-01", 100, food),
		expenseOn("2025-06-02", 50, food),
		expenseOn("2025-06-03", 25, nil),
	}

	slices := CategoryBreakdown(expenses)
	if len(slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(slices))
	}

	if slices[0].Name != "Food" {
		t.Errorf("expected Food first, got %s", slices[0].Name)
	}
	if !slices[0].Amount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected Food amount 150, got %s", slices[0].Amount)
	}
	if slices[0].Percentage < 85.6 || slices[0].Percentage > 85.8 {
		t.Errorf("expected Food percentage ~85.7, got %f", slices[0].Percentage)
	}

	if slices[1].Name != domain.UncategorizedName {
		t.Errorf("expected Uncategorized second, got %s", slices[1].Name)
	}
	if slices[1].Color != domain.UncategorizedColor {
		t.Errorf("expected fallback color %s, got %s", domain.UncategorizedColor, slices[1].Color)
	}
	if slices[1].Percentage < 14.2 || slices[1].Percentage > 14.4 {
		t.Errorf("expected Uncategorized percentage ~14.3, got %f", slices[1].Percentage)
	}
}

func TestCategoryBreakdownConservation(t *testing.T) {
	food := &domain.CategoryRef{Name: "Food", Color: "#ef4444"}
	travel := &domain.CategoryRef{Name: "Travel", Color: "#3b82f6"}

	expenses := []*domain.Expense{
		expenseOn("2025-06-01", 12.34, food),
		expenseOn("2025-06-02", 56.78, travel),
		expenseOn("2025-06-03", 90.12, nil),
		expenseOn("2025-06-04", 3.21, food),
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	sliceSum := decimal.Zero
	pctSum := 0.0
	for _, s := range CategoryBreakdown(expenses) {
		sliceSum = sliceSum.Add(s.Amount)
		pctSum += s.Percentage
	}

	if !sliceSum.Equal(total) {
		t.Errorf("slice amounts sum to %s, expenses sum to %s", sliceSum, total)
	}
	if pctSum < 99.99 || pctSum > 100.01 {
		t.Errorf("percentages sum to %f, expected ~100", pctSum)
	}
}

func TestCategoryBreakdownZeroTotal(t *testing.T) {
	expenses := []*domain.Expense{
		expenseOn("2025-06-01", 0, nil),
		expenseOn("2025-06-02", 0, nil),
	}

	slices := CategoryBreakdown(expenses)
	if len(slices) != 1 {
		t.Fatalf("expected 1 slice, got %d", len(slices))
	}
	if slices[0].Percentage != 0 {
		t.Errorf("expected 0 percentage on zero total, got %f", slices[0].Percentage)
	}
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	slices := CategoryBreakdown(nil)
	if slices == nil || len(slices) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", slices)
	}
}

func TestWeeklyTotals(t *testing.T) {
	// 2025-06-04 is a Wednesday; its Sunday-start week begins June 1.
	expenses := []*domain.Expense{
		expenseOn("2025-06-04", 100, nil),
		expenseOn("2025-06-06", 50, nil),
		expenseOn("2025-06-09", 75, nil),
	}

	buckets := WeeklyTotals(expenses)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "Jun 1" {
		t.Errorf("expected label Jun 1, got %s", buckets[0].Label)
	}
	if !buckets[0].Amount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected 150 in first week, got %s", buckets[0].Amount)
	}
	if buckets[1].Label != "Jun 8" {
		t.Errorf("expected label Jun 8, got %s", buckets[1].Label)
	}
}

func TestWeeklyTotalsCap(t *testing.T) {
	expenses := make([]*domain.Expense, 0, 12)
	start := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC) // a Sunday
	for i := 0; i < 12; i++ {
		expenses = append(expenses, &domain.Expense{
			Amount: decimal.NewFromInt(10),
			Date:   start.AddDate(0, 0, i*7),
		})
	}

	buckets := WeeklyTotals(expenses)
	if len(buckets) != MaxWeeklyBuckets {
		t.Fatalf("expected %d buckets, got %d", MaxWeeklyBuckets, len(buckets))
	}
	// Oldest four weeks dropped, so the first kept week starts Feb 2.
	if buckets[0].Label != "Feb 2" {
		t.Errorf("expected first kept bucket Feb 2, got %s", buckets[0].Label)
	}
}

func TestMonthlyTotals(t *testing.T) {
	expenses := []*domain.Expense{
		expenseOn("2025-05-10", 100, nil),
		expenseOn("2025-05-20", 40, nil),
		expenseOn("2025-06-01", 75, nil),
	}

	buckets := MonthlyTotals(expenses)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "May 2025" {
		t.Errorf("expected label May 2025, got %s", buckets[0].Label)
	}
	if !buckets[0].Amount.Equal(decimal.NewFromInt(140)) {
		t.Errorf("expected 140 in May, got %s", buckets[0].Amount)
	}
}

func TestMonthlyTotalsCap(t *testing.T) {
	expenses := make([]*domain.Expense, 0, 9)
	for i := 0; i < 9; i++ {
		expenses = append(expenses, &domain.Expense{
			Amount: decimal.NewFromInt(10),
			Date:   time.Date(2025, time.Month(1+i), 15, 0, 0, 0, 0, time.UTC),
		})
	}

	buckets := MonthlyTotals(expenses)
	if len(buckets) != MaxMonthlyBuckets {
		t.Fatalf("expected %d buckets, got %d", MaxMonthlyBuckets, len(buckets))
	}
	if buckets[0].Label != "Apr 2025" {
		t.Errorf("expected first kept bucket Apr 2025, got %s", buckets[0].Label)
	}
}

func TestMonthTotal(t *testing.T) {
	first := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	expenses := []*domain.Expense{
		expenseOn("2025-05-31", 999, nil),
		expenseOn("2025-06-01", 100, nil),
		{Amount: decimal.NewFromInt(50), Date: time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC)},
		expenseOn("2025-07-01", 999, nil),
	}

	total := MonthTotal(expenses, first, last)
	if !total.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected 150, got %s", total)
	}
}

func TestEvaluateProgress(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		th      domain.ProgressThresholds
		wantPct float64
		want    domain.ProgressStatus
	}{
		{"under warn", 500, 1000, domain.BudgetPageThresholds, 50, domain.ProgressStatusOK},
		{"at warn", 900, 1000, domain.BudgetPageThresholds, 90, domain.ProgressStatusWarning},
		{"warning band budget page", 950, 1000, domain.BudgetPageThresholds, 95, domain.ProgressStatusWarning},
		{"over on dashboard", 950, 1000, domain.DashboardThresholds, 95, domain.ProgressStatusOver},
		{"at limit", 1000, 1000, domain.BudgetPageThresholds, 100, domain.ProgressStatusOver},
		{"past limit", 1200, 1000, domain.BudgetPageThresholds, 120, domain.ProgressStatusOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := EvaluateProgress(decimal.NewFromFloat(tt.current), decimal.NewFromFloat(tt.target), tt.th)
			if p.Percentage != tt.wantPct {
				t.Errorf("percentage = %f, want %f", p.Percentage, tt.wantPct)
			}
			if p.Status != tt.want {
				t.Errorf("status = %s, want %s", p.Status, tt.want)
			}
		})
	}
}

func TestEvaluateProgressZeroTarget(t *testing.T) {
	p := EvaluateProgress(decimal.NewFromInt(500), decimal.Zero, domain.BudgetPageThresholds)
	if p.Percentage != 0 {
		t.Errorf("expected 0 percentage on zero target, got %f", p.Percentage)
	}
	if p.Status != domain.ProgressStatusOK {
		t.Errorf("expected ok status on zero target, got %s", p.Status)
	}
}
