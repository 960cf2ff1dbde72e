package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal tracks saved funds against a target. CurrentAmount may exceed
// TargetAmount; the goal is achieved at or above 100% progress and overdue
// once the deadline has passed without reaching it.
type SavingsGoal struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Icon          string          `json:"icon"`
	Color         string          `json:"color"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProgressPercentage returns current/target as a percentage, 0 when the
// target is not positive.
func (g *SavingsGoal) ProgressPercentage() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	pct, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// Achieved reports whether the goal has reached its target.
func (g *SavingsGoal) Achieved() bool {
	return g.ProgressPercentage() >= 100
}

// Overdue reports whether the deadline has passed without the goal being
// achieved, relative to now.
func (g *SavingsGoal) Overdue(now time.Time) bool {
	if g.Deadline == nil || g.Achieved() {
		return false
	}
	return g.Deadline.Before(now)
}

type SavingsGoalRepository interface {
	Create(goal *SavingsGoal) (*SavingsGoal, error)
	GetByID(userID, id uuid.UUID) (*SavingsGoal, error)
	// GetAllByUser returns goals ordered by creation time descending.
	GetAllByUser(userID uuid.UUID) ([]*SavingsGoal, error)
	Update(goal *SavingsGoal) (*SavingsGoal, error)
	UpdateCurrentAmount(userID, id uuid.UUID, amount decimal.Decimal) (*SavingsGoal, error)
	Delete(userID, id uuid.UUID) error
}
