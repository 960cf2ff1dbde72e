package postgres

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

const budgetColumns = "id, user_id, amount, month, year, created_at, updated_at"

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	var (
		b      domain.Budget
		amount pgtype.Numeric
	)
	err := row.Scan(&b.ID, &b.UserID, &amount, &b.Month, &b.Year, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	b.Amount = pgNumericToDecimal(amount)
	return &b, nil
}

// Create creates a budget for a month. The unique constraint on
// (user_id, month, year) surfaces as ErrBudgetExists.
func (r *BudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	amount, err := decimalToPgNumeric(budget.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO budgets (user_id, amount, month, year)
		VALUES ($1, $2, $3, $4)
		RETURNING `+budgetColumns,
		budget.UserID, amount, budget.Month, budget.Year)

	created, err := scanBudget(row)
	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, domain.ErrBudgetExists
		}
		return nil, err
	}
	return created, nil
}

// GetByMonth retrieves the budget for a specific month and year
func (r *BudgetRepository) GetByMonth(userID uuid.UUID, month, year int) (*domain.Budget, error) {
	row := r.pool.QueryRow(context.Background(),
		"SELECT "+budgetColumns+" FROM budgets WHERE user_id = $1 AND month = $2 AND year = $3",
		userID, month, year)
	return scanBudget(row)
}

// GetAllByUser retrieves all budgets for a user ordered newest first
func (r *BudgetRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Budget, error) {
	rows, err := r.pool.Query(context.Background(),
		"SELECT "+budgetColumns+" FROM budgets WHERE user_id = $1 ORDER BY year DESC, month DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := make([]*domain.Budget, 0)
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// Delete removes a budget
func (r *BudgetRepository) Delete(userID, id uuid.UUID) error {
	_, err := r.pool.Exec(context.Background(),
		"DELETE FROM budgets WHERE user_id = $1 AND id = $2", userID, id)
	return err
}
