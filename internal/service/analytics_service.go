package service

import (
	"sort"
	"time"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/util"
	"github.com/shopspring/decimal"
)

// Chart window sizes: the dashboard bar chart shows the trailing 8 weeks,
// the trend line the trailing 6 months.
const (
	MaxWeeklyBuckets  = 8
	MaxMonthlyBuckets = 6
)

// CategoryBreakdown groups expenses by category name, summing amounts.
// Expenses without a category fall back to the "Uncategorized" bucket with
// its neutral color. Slices come back sorted descending by amount, each with
// its percentage of the grand total (0 when the total is 0, so an all-zero
// record set never divides by zero).
func CategoryBreakdown(expenses []*domain.Expense) []domain.CategorySlice {
	if len(expenses) == 0 {
		return []domain.CategorySlice{}
	}

	totals := make(map[string]decimal.Decimal)
	colors := make(map[string]string)
	order := make([]string, 0)

	grandTotal := decimal.Zero
	for _, e := range expenses {
		name := e.CategoryName()
		if _, seen := totals[name]; !seen {
			order = append(order, name)
			colors[name] = e.CategoryColor()
		}
		totals[name] = totals[name].Add(e.Amount)
		grandTotal = grandTotal.Add(e.Amount)
	}

	slices := make([]domain.CategorySlice, 0, len(order))
	for _, name := range order {
		amount := totals[name]
		pct := 0.0
		if grandTotal.IsPositive() {
			pct, _ = amount.Div(grandTotal).Mul(decimal.NewFromInt(100)).Float64()
		}
		slices = append(slices, domain.CategorySlice{
			Name:       name,
			Amount:     amount,
			Color:      colors[name],
			Percentage: pct,
		})
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Amount.GreaterThan(slices[j].Amount)
	})

	return slices
}

// WeeklyTotals buckets expenses by the Sunday-start week containing each
// expense date, labeled by the week start in "Jan 2" form. Buckets appear in
// order of first appearance in the input and only the last MaxWeeklyBuckets
// distinct buckets are kept.
func WeeklyTotals(expenses []*domain.Expense) []domain.ChartBucket {
	return bucketTotals(expenses, MaxWeeklyBuckets, func(date time.Time) string {
		return util.WeekStart(date).Format("Jan 2")
	})
}

// MonthlyTotals buckets expenses by calendar month, labeled "Jan 2025".
// Same ordering and truncation rules as WeeklyTotals, capped at
// MaxMonthlyBuckets.
func MonthlyTotals(expenses []*domain.Expense) []domain.ChartBucket {
	return bucketTotals(expenses, MaxMonthlyBuckets, func(date time.Time) string {
		return date.Format("Jan 2006")
	})
}

func bucketTotals(expenses []*domain.Expense, max int, keyFn func(time.Time) string) []domain.ChartBucket {
	if len(expenses) == 0 {
		return []domain.ChartBucket{}
	}

	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, e := range expenses {
		key := keyFn(e.Date)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(e.Amount)
	}

	if len(order) > max {
		order = order[len(order)-max:]
	}

	buckets := make([]domain.ChartBucket, 0, len(order))
	for _, key := range order {
		buckets = append(buckets, domain.ChartBucket{Label: key, Amount: totals[key]})
	}
	return buckets
}

// MonthTotal sums amounts for expenses whose date falls inside
// [firstDay, lastDay], comparing at day granularity so time-of-day on either
// side never shifts a record across the boundary.
func MonthTotal(expenses []*domain.Expense, firstDay, lastDay time.Time) decimal.Decimal {
	first := util.TruncateToDay(firstDay)
	last := util.TruncateToDay(lastDay)

	total := decimal.Zero
	for _, e := range expenses {
		day := util.TruncateToDay(e.Date)
		if day.Before(first) || day.After(last) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}

// EvaluateProgress computes percentage-of-target and its status band under
// the given thresholds. A non-positive target yields 0%, never NaN or a
// divide-by-zero. Remaining is target minus current and is reported as-is,
// negative when over.
func EvaluateProgress(current, target decimal.Decimal, th domain.ProgressThresholds) domain.Progress {
	pct := 0.0
	if target.IsPositive() {
		pct, _ = current.Div(target).Mul(decimal.NewFromInt(100)).Float64()
	}

	status := domain.ProgressStatusOK
	switch {
	case pct >= th.Over:
		status = domain.ProgressStatusOver
	case pct >= th.Warn:
		status = domain.ProgressStatusWarning
	}

	return domain.Progress{
		Percentage: pct,
		Status:     status,
		Remaining:  target.Sub(current),
	}
}
