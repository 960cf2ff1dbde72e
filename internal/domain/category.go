package domain

import (
	"time"

	"github.com/google/uuid"
)

// Fallback display values for expenses without a category.
const (
	UncategorizedName  = "Uncategorized"
	UncategorizedIcon  = "💰"
	UncategorizedColor = "#64748b"
)

type Category struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryRepository interface {
	Create(category *Category) (*Category, error)
	GetByID(userID, id uuid.UUID) (*Category, error)
	GetAllByUser(userID uuid.UUID) ([]*Category, error)
	Update(category *Category) (*Category, error)
	Delete(userID, id uuid.UUID) error
}
