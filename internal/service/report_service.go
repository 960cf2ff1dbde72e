package service

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/util"
	"github.com/fintrack/fintrack-backend/web"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ReportFormat selects the report output encoding
type ReportFormat string

const (
	ReportFormatHTML ReportFormat = "html"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// Report is a generated, downloadable report document
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportService renders monthly expense reports
type ReportService struct {
	expenseRepo domain.ExpenseRepository
	budgetRepo  domain.BudgetRepository
	userRepo    domain.UserRepository
	tmpl        *template.Template
}

// NewReportService creates a new ReportService with the embedded template
func NewReportService(expenseRepo domain.ExpenseRepository, budgetRepo domain.BudgetRepository, userRepo domain.UserRepository) *ReportService {
	return &ReportService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		userRepo:    userRepo,
		tmpl:        template.Must(template.ParseFS(web.TemplatesFS, "templates/report.html")),
	}
}

type reportRow struct {
	Date        string
	Description string
	Icon        string
	Category    string
	Amount      string
}

type reportCategory struct {
	Name       string
	Color      string
	Amount     string
	Percentage string
}

type reportView struct {
	Title        string
	MonthLabel   string
	UserName     string
	GeneratedAt  string
	Rows         []reportRow
	ExpenseCount int
	Total        string
	BudgetLine   string
	Categories   []reportCategory
}

// Generate builds the monthly report in the requested format. Months with
// no expenses return ErrNoExpensesForPeriod rather than an empty document.
func (s *ReportService) Generate(userID uuid.UUID, month, year int, format ReportFormat) (*Report, error) {
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
	if len(expenses) == 0 {
		return nil, domain.ErrNoExpensesForPeriod
	}

	switch format {
	case ReportFormatXLSX:
		return s.renderXLSX(userID, expenses, month, year)
	case ReportFormatHTML, "":
		return s.renderHTML(userID, expenses, month, year)
	default:
		return nil, domain.ErrInvalidInput
	}
}

func (s *ReportService) renderHTML(userID uuid.UUID, expenses []*domain.Expense, month, year int) (*Report, error) {
	monthLabel := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")

	userName := "FinTrack User"
	if user, err := s.userRepo.GetByID(userID); err == nil {
		if user.FullName != nil && *user.FullName != "" {
			userName = *user.FullName
		} else if user.Email != "" {
			userName = user.Email
		}
	}

	rows := make([]reportRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, reportRow{
			Date:        e.Date.Format("02 Jan 2006"),
			Description: e.Description,
			Icon:        e.CategoryIcon(),
			Category:    e.CategoryName(),
			Amount:      util.FormatINR(e.Amount),
		})
	}

	first, last := util.MonthRange(year, month)
	total := MonthTotal(expenses, first, last)

	budgetLine := ""
	if budget, err := s.budgetRepo.GetByMonth(userID, month, year); err == nil {
		progress := EvaluateProgress(total, budget.Amount, domain.BudgetPageThresholds)
		switch progress.Status {
		case domain.ProgressStatusOver:
			budgetLine = fmt.Sprintf("Budget: %s. You went over by %s.",
				util.FormatINRIndian(budget.Amount), util.FormatINRIndian(progress.Remaining.Neg()))
		default:
			budgetLine = fmt.Sprintf("Budget: %s. You have %s remaining (%.1f%% used).",
				util.FormatINRIndian(budget.Amount), util.FormatINRIndian(progress.Remaining), progress.Percentage)
		}
	}

	categories := make([]reportCategory, 0)
	for _, slice := range CategoryBreakdown(expenses) {
		categories = append(categories, reportCategory{
			Name:       slice.Name,
			Color:      slice.Color,
			Amount:     util.FormatINR(slice.Amount),
			Percentage: fmt.Sprintf("%.1f%%", slice.Percentage),
		})
	}

	view := reportView{
		Title:        fmt.Sprintf("FinTrack Report %s", monthLabel),
		MonthLabel:   monthLabel,
		UserName:     userName,
		GeneratedAt:  time.Now().Format("02 Jan 2006 15:04"),
		Rows:         rows,
		ExpenseCount: len(expenses),
		Total:        util.FormatINRIndian(total),
		BudgetLine:   budgetLine,
		Categories:   categories,
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	return &Report{
		Filename:    fmt.Sprintf("FinTrack-Report-%d-%02d.html", year, month),
		ContentType: "text/html; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

func (s *ReportService) renderXLSX(userID uuid.UUID, expenses []*domain.Expense, month, year int) (*Report, error) {
	f := excelize.NewFile()
	const sheet = "Expenses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Description", "Category", "Amount (INR)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range expenses {
		write := func(col int, v interface{}) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, e.Date.Format("2006-01-02"))
		write(2, e.Description)
		write(3, e.CategoryName())
		amount, _ := e.Amount.Float64()
		write(4, amount)
		row++
	}

	first, last := util.MonthRange(year, month)
	total := MonthTotal(expenses, first, last)
	totalLabelCell, _ := excelize.CoordinatesToCellName(3, row)
	totalValueCell, _ := excelize.CoordinatesToCellName(4, row)
	_ = f.SetCellValue(sheet, totalLabelCell, "Total")
	totalFloat, _ := total.Float64()
	_ = f.SetCellValue(sheet, totalValueCell, totalFloat)

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	_ = f.SetColWidth(sheet, "C", "C", 18)
	_ = f.SetColWidth(sheet, "D", "D", 14)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return &Report{
		Filename:    fmt.Sprintf("FinTrack-Report-%d-%02d.xlsx", year, month),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}
