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

// ExpenseRepository implements domain.ExpenseRepository using PostgreSQL
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

const expenseSelect = `
	SELECT e.id, e.user_id, e.category_id, e.amount, e.description, e.expense_date,
	       e.created_at, e.updated_at,
	       c.id, c.name, c.icon, c.color
	FROM expenses e
	LEFT JOIN categories c ON c.id = e.category_id`

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var (
		e        domain.Expense
		amount   pgtype.Numeric
		catID    *uuid.UUID
		catName  *string
		catIcon  *string
		catColor *string
	)
	err := row.Scan(&e.ID, &e.UserID, &e.CategoryID, &amount, &e.Description, &e.Date,
		&e.CreatedAt, &e.UpdatedAt, &catID, &catName, &catIcon, &catColor)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	e.Amount = pgNumericToDecimal(amount)
	if catID != nil {
		e.Category = &domain.CategoryRef{
			ID:    *catID,
			Name:  *catName,
			Icon:  *catIcon,
			Color: *catColor,
		}
	}
	return &e, nil
}

// Create creates a new expense and returns it joined with its category
func (r *ExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	amount, err := decimalToPgNumeric(expense.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	var id uuid.UUID
	err = r.pool.QueryRow(context.Background(), `
		INSERT INTO expenses (user_id, category_id, amount, description, expense_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		expense.UserID, expense.CategoryID, amount, expense.Description, expense.Date).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(expense.UserID, id)
}

// GetByID retrieves an expense by ID scoped to a user
func (r *ExpenseRepository) GetByID(userID, id uuid.UUID) (*domain.Expense, error) {
	row := r.pool.QueryRow(context.Background(),
		expenseSelect+" WHERE e.user_id = $1 AND e.id = $2", userID, id)
	return scanExpense(row)
}

// GetAllByUser retrieves expenses for a user with optional filters,
// ordered by expense date descending
func (r *ExpenseRepository) GetAllByUser(userID uuid.UUID, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	query := expenseSelect + " WHERE e.user_id = $1"
	args := []interface{}{userID}

	if filters != nil {
		if filters.StartDate != nil {
			args = append(args, *filters.StartDate)
			query += fmt.Sprintf(" AND e.expense_date >= $%d", len(args))
		}
		if filters.EndDate != nil {
			args = append(args, *filters.EndDate)
			query += fmt.Sprintf(" AND e.expense_date <= $%d", len(args))
		}
		if filters.CategoryID != nil {
			args = append(args, *filters.CategoryID)
			query += fmt.Sprintf(" AND e.category_id = $%d", len(args))
		}
	}

	query += " ORDER BY e.expense_date DESC, e.created_at DESC"

	if filters != nil && filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// Update updates an expense's mutable fields
func (r *ExpenseRepository) Update(expense *domain.Expense) (*domain.Expense, error) {
	amount, err := decimalToPgNumeric(expense.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	tag, err := r.pool.Exec(context.Background(), `
		UPDATE expenses
		SET category_id = $3, amount = $4, description = $5, expense_date = $6, updated_at = now()
		WHERE user_id = $1 AND id = $2`,
		expense.UserID, expense.ID, expense.CategoryID, amount, expense.Description, expense.Date)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrExpenseNotFound
	}
	return r.GetByID(expense.UserID, expense.ID)
}

// Delete removes an expense
func (r *ExpenseRepository) Delete(userID, id uuid.UUID) error {
	_, err := r.pool.Exec(context.Background(),
		"DELETE FROM expenses WHERE user_id = $1 AND id = $2", userID, id)
	return err
}
