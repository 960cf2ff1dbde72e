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

// TextbookRepository implements domain.TextbookRepository using PostgreSQL
type TextbookRepository struct {
	pool *pgxpool.Pool
}

// NewTextbookRepository creates a new TextbookRepository
func NewTextbookRepository(pool *pgxpool.Pool) *TextbookRepository {
	return &TextbookRepository{pool: pool}
}

const textbookColumns = "id, user_id, title, subject, price, purchased_date, semester, condition, created_at, updated_at"

func scanTextbook(row pgx.Row) (*domain.Textbook, error) {
	var (
		t     domain.Textbook
		price pgtype.Numeric
	)
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Subject, &price, &t.PurchasedDate,
		&t.Semester, &t.Condition, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTextbookNotFound
		}
		return nil, err
	}
	t.Price = pgNumericToDecimal(price)
	return &t, nil
}

// Create creates a new textbook record
func (r *TextbookRepository) Create(textbook *domain.Textbook) (*domain.Textbook, error) {
	price, err := decimalToPgNumeric(textbook.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price: %w", err)
	}

	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO textbooks (user_id, title, subject, price, purchased_date, semester, condition)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+textbookColumns,
		textbook.UserID, textbook.Title, textbook.Subject, price,
		textbook.PurchasedDate, textbook.Semester, textbook.Condition)
	return scanTextbook(row)
}

// GetByID retrieves a textbook by ID scoped to a user
func (r *TextbookRepository) GetByID(userID, id uuid.UUID) (*domain.Textbook, error) {
	row := r.pool.QueryRow(context.Background(),
		"SELECT "+textbookColumns+" FROM textbooks WHERE user_id = $1 AND id = $2",
		userID, id)
	return scanTextbook(row)
}

// GetAllByUser retrieves all textbooks for a user ordered by purchase date descending
func (r *TextbookRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Textbook, error) {
	rows, err := r.pool.Query(context.Background(),
		"SELECT "+textbookColumns+" FROM textbooks WHERE user_id = $1 ORDER BY purchased_date DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	textbooks := make([]*domain.Textbook, 0)
	for rows.Next() {
		t, err := scanTextbook(rows)
		if err != nil {
			return nil, err
		}
		textbooks = append(textbooks, t)
	}
	return textbooks, rows.Err()
}

// Delete removes a textbook
func (r *TextbookRepository) Delete(userID, id uuid.UUID) error {
	_, err := r.pool.Exec(context.Background(),
		"DELETE FROM textbooks WHERE user_id = $1 AND id = $2", userID, id)
	return err
}
