package domain

import "github.com/shopspring/decimal"

// CategorySlice is one category's share of spending over some record set.
type CategorySlice struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Color      string          `json:"color"`
	Percentage float64         `json:"percentage"`
}

// ChartBucket is a labeled running sum, one bar or point on a chart.
type ChartBucket struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// ChartData is the full analytics payload for the charts endpoint.
type ChartData struct {
	ByCategory []CategorySlice `json:"byCategory"`
	ByWeek     []ChartBucket   `json:"byWeek"`
	ByMonth    []ChartBucket   `json:"byMonth"`
}

// ProgressStatus is the tri-state banding of a progress percentage.
type ProgressStatus string

const (
	ProgressStatusOK      ProgressStatus = "ok"
	ProgressStatusWarning ProgressStatus = "warning"
	ProgressStatusOver    ProgressStatus = "over"
)

// ProgressThresholds are the percentage cut points for status banding.
// The budgets page and the dashboard widget intentionally use different
// values, matching observed product behavior.
type ProgressThresholds struct {
	Warn float64
	Over float64
}

var (
	// BudgetPageThresholds: warn at 90%, over at 100%.
	BudgetPageThresholds = ProgressThresholds{Warn: 90, Over: 100}
	// DashboardThresholds: the looser two-tier widget, warn at 70%, over at 90%.
	DashboardThresholds = ProgressThresholds{Warn: 70, Over: 90}
)

// Progress is the evaluated ratio of a current amount to a target.
// Remaining is target minus current and goes negative when over; callers
// flag "over by" instead of clamping it.
type Progress struct {
	Percentage float64         `json:"percentage"`
	Status     ProgressStatus  `json:"status"`
	Remaining  decimal.Decimal `json:"remaining"`
}
