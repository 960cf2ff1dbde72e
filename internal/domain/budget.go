package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is the overall monthly spending limit. The store enforces at most
// one budget per (user, month, year); a violation surfaces as
// ErrBudgetExists so callers can report it distinctly.
type Budget struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Amount    decimal.Decimal `json:"amount"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type BudgetRepository interface {
	Create(budget *Budget) (*Budget, error)
	GetByMonth(userID uuid.UUID, month, year int) (*Budget, error)
	GetAllByUser(userID uuid.UUID) ([]*Budget, error)
	Delete(userID, id uuid.UUID) error
}
