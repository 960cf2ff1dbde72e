package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryRef carries the denormalized category columns joined onto an
// expense row. Nil when the expense has no category.
type CategoryRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Icon  string    `json:"icon"`
	Color string    `json:"color"`
}

type Expense struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	CategoryID  *uuid.UUID      `json:"categoryId,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Category    *CategoryRef    `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CategoryName returns the category name with the uncategorized fallback.
func (e *Expense) CategoryName() string {
	if e.Category == nil {
		return UncategorizedName
	}
	return e.Category.Name
}

// CategoryIcon returns the category icon with the uncategorized fallback.
func (e *Expense) CategoryIcon() string {
	if e.Category == nil {
		return UncategorizedIcon
	}
	return e.Category.Icon
}

// CategoryColor returns the category color with the uncategorized fallback.
func (e *Expense) CategoryColor() string {
	if e.Category == nil {
		return UncategorizedColor
	}
	return e.Category.Color
}

// ExpenseFilters narrows an expense listing. Dates are compared at day
// granularity, both ends inclusive. A zero Limit means no limit.
type ExpenseFilters struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Limit      int32
}

type ExpenseRepository interface {
	Create(expense *Expense) (*Expense, error)
	GetByID(userID, id uuid.UUID) (*Expense, error)
	// GetAllByUser returns expenses joined with category info,
	// ordered by date descending.
	GetAllByUser(userID uuid.UUID, filters *ExpenseFilters) ([]*Expense, error)
	Update(expense *Expense) (*Expense, error)
	Delete(userID, id uuid.UUID) error
}
