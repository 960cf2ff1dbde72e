package postgres

import (
	"context"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = "id, auth0_id, email, full_name, avatar_url, created_at, updated_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Auth0ID, &u.Email, &u.FullName, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	row := r.pool.QueryRow(context.Background(),
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

// GetByAuth0ID retrieves a user by Auth0 subject
func (r *UserRepository) GetByAuth0ID(auth0ID string) (*domain.User, error) {
	row := r.pool.QueryRow(context.Background(),
		"SELECT "+userColumns+" FROM users WHERE auth0_id = $1", auth0ID)
	return scanUser(row)
}

// CreateOrGetByAuth0ID creates a user on first login or returns the existing
// record, refreshing the email from the identity provider.
func (r *UserRepository) CreateOrGetByAuth0ID(auth0ID, email string, fullName *string) (*domain.User, error) {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO users (auth0_id, email, full_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (auth0_id) DO UPDATE
		SET email = EXCLUDED.email, updated_at = now()
		RETURNING `+userColumns,
		auth0ID, email, fullName)
	return scanUser(row)
}

// UpdateName updates the user's display name
func (r *UserRepository) UpdateName(auth0ID string, fullName string) (*domain.User, error) {
	row := r.pool.QueryRow(context.Background(), `
		UPDATE users SET full_name = $2, updated_at = now()
		WHERE auth0_id = $1
		RETURNING `+userColumns,
		auth0ID, fullName)
	return scanUser(row)
}

// UpdateAvatarURL updates the user's avatar URL
func (r *UserRepository) UpdateAvatarURL(auth0ID string, avatarURL string) (*domain.User, error) {
	row := r.pool.QueryRow(context.Background(), `
		UPDATE users SET avatar_url = $2, updated_at = now()
		WHERE auth0_id = $1
		RETURNING `+userColumns,
		auth0ID, avatarURL)
	return scanUser(row)
}
