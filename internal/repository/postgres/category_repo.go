package postgres

import (
	"context"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = "id, user_id, name, icon, color, created_at, updated_at"

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Icon, &c.Color, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create creates a new category
func (r *CategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO categories (user_id, name, icon, color)
		VALUES ($1, $2, $3, $4)
		RETURNING `+categoryColumns,
		category.UserID, category.Name, category.Icon, category.Color)
	return scanCategory(row)
}

// GetByID retrieves a category by ID scoped to a user
func (r *CategoryRepository) GetByID(userID, id uuid.UUID) (*domain.Category, error) {
	row := r.pool.QueryRow(context.Background(),
		"SELECT "+categoryColumns+" FROM categories WHERE user_id = $1 AND id = $2",
		userID, id)
	return scanCategory(row)
}

// GetAllByUser retrieves all categories for a user ordered by name
func (r *CategoryRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Category, error) {
	rows, err := r.pool.Query(context.Background(),
		"SELECT "+categoryColumns+" FROM categories WHERE user_id = $1 ORDER BY name",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Update updates a category's name, icon and color
func (r *CategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	row := r.pool.QueryRow(context.Background(), `
		UPDATE categories SET name = $3, icon = $4, color = $5, updated_at = now()
		WHERE user_id = $1 AND id = $2
		RETURNING `+categoryColumns,
		category.UserID, category.ID, category.Name, category.Icon, category.Color)
	return scanCategory(row)
}

// Delete removes a category. Expenses keep their rows with category_id
// nulled out by the foreign key.
func (r *CategoryRepository) Delete(userID, id uuid.UUID) error {
	_, err := r.pool.Exec(context.Background(),
		"DELETE FROM categories WHERE user_id = $1 AND id = $2", userID, id)
	return err
}
