package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Textbook struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	Title         string          `json:"title"`
	Subject       string          `json:"subject"`
	Price         decimal.Decimal `json:"price"`
	PurchasedDate time.Time       `json:"purchasedDate"`
	Semester      string          `json:"semester"`
	Condition     *string         `json:"condition,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type TextbookRepository interface {
	Create(textbook *Textbook) (*Textbook, error)
	GetByID(userID, id uuid.UUID) (*Textbook, error)
	// GetAllByUser returns textbooks ordered by purchase date descending.
	GetAllByUser(userID uuid.UUID) ([]*Textbook, error)
	Delete(userID, id uuid.UUID) error
}
