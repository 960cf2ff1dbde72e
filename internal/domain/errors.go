package domain

import "errors"

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInternalError       = errors.New("internal error")
	ErrUserNotFound        = errors.New("user not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrGoalNotFound        = errors.New("savings goal not found")
	ErrTextbookNotFound    = errors.New("textbook not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrBudgetExists        = errors.New("budget already exists for this month")
	ErrNoExpensesForPeriod = errors.New("no expenses found for this period")
	ErrNameRequired        = errors.New("name is required")
	ErrNameTooLong         = errors.New("name exceeds maximum length")
	ErrInvalidAmount       = errors.New("amount must not be negative")
	ErrInvalidMonth        = errors.New("month must be between 1 and 12")
	ErrInvalidYear         = errors.New("year is out of range")
	ErrInvalidTarget       = errors.New("target amount must be positive")
)

// Validation constants
const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1000
	MinYear              = 2000
	MaxYear              = 2100
)
