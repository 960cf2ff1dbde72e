package postgres

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// SavingsGoalRepository implements domain.SavingsGoalRepository using PostgreSQL
type SavingsGoalRepository struct {
	pool *pgxpool.Pool
}

// NewSavingsGoalRepository creates a new SavingsGoalRepository
func NewSavingsGoalRepository(pool *pgxpool.Pool) *SavingsGoalRepository {
	return &SavingsGoalRepository{pool: pool}
}

const goalColumns = "id, user_id, name, target_amount, current_amount, deadline, icon, color, created_at, updated_at"

func scanGoal(row pgx.Row) (*domain.SavingsGoal, error) {
	var (
		g       domain.SavingsGoal
		target  pgtype.Numeric
		current pgtype.Numeric
	)
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &target, &current, &g.Deadline,
		&g.Icon, &g.Color, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	g.TargetAmount = pgNumericToDecimal(target)
	g.CurrentAmount = pgNumericToDecimal(current)
	return &g, nil
}

// Create creates a new savings goal
func (r *SavingsGoalRepository) Create(goal *domain.SavingsGoal) (*domain.SavingsGoal, error) {
	target, err := decimalToPgNumeric(goal.TargetAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid target amount: %w", err)
	}
	current, err := decimalToPgNumeric(goal.CurrentAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid current amount: %w", err)
	}

	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO savings_goals (user_id, name, target_amount, current_amount, deadline, icon, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+goalColumns,
		goal.UserID, goal.Name, target, current, goal.Deadline, goal.Icon, goal.Color)
	return scanGoal(row)
}

// GetByID retrieves a savings goal by ID scoped to a user
func (r *SavingsGoalRepository) GetByID(userID, id uuid.UUID) (*domain.SavingsGoal, error) {
	row := r.pool.QueryRow(context.Background(),
		"SELECT "+goalColumns+" FROM savings_goals WHERE user_id = $1 AND id = $2",
		userID, id)
	return scanGoal(row)
}

// GetAllByUser retrieves all savings goals for a user, newest first
func (r *SavingsGoalRepository) GetAllByUser(userID uuid.UUID) ([]*domain.SavingsGoal, error) {
	rows, err := r.pool.Query(context.Background(),
		"SELECT "+goalColumns+" FROM savings_goals WHERE user_id = $1 ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]*domain.SavingsGoal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// Update updates a savings goal's mutable fields
func (r *SavingsGoalRepository) Update(goal *domain.SavingsGoal) (*domain.SavingsGoal, error) {
	target, err := decimalToPgNumeric(goal.TargetAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid target amount: %w", err)
	}

	row := r.pool.QueryRow(context.Background(), `
		UPDATE savings_goals
		SET name = $3, target_amount = $4, deadline = $5, icon = $6, color = $7, updated_at = now()
		WHERE user_id = $1 AND id = $2
		RETURNING `+goalColumns,
		goal.UserID, goal.ID, goal.Name, target, goal.Deadline, goal.Icon, goal.Color)
	return scanGoal(row)
}

// UpdateCurrentAmount sets the saved amount on a goal
func (r *SavingsGoalRepository) UpdateCurrentAmount(userID, id uuid.UUID, amount decimal.Decimal) (*domain.SavingsGoal, error) {
	current, err := decimalToPgNumeric(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(context.Background(), `
		UPDATE savings_goals
		SET current_amount = $3, updated_at = now()
		WHERE user_id = $1 AND id = $2
		RETURNING `+goalColumns,
		userID, id, current)
	return scanGoal(row)
}

// Delete removes a savings goal
func (r *SavingsGoalRepository) Delete(userID, id uuid.UUID) error {
	_, err := r.pool.Exec(context.Background(),
		"DELETE FROM savings_goals WHERE user_id = $1 AND id = $2", userID, id)
	return err
}
