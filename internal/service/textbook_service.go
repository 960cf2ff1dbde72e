package service

import (
	"strings"
	"time"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/events"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TextbookService handles textbook purchase tracking
type TextbookService struct {
	textbookRepo   domain.TextbookRepository
	eventPublisher events.EventPublisher
}

// NewTextbookService creates a new TextbookService
func NewTextbookService(textbookRepo domain.TextbookRepository) *TextbookService {
	return &TextbookService{textbookRepo: textbookRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *TextbookService) SetEventPublisher(publisher events.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *TextbookService) publishEvent(userID uuid.UUID, event events.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// CreateTextbookInput holds the input for recording a textbook purchase
type CreateTextbookInput struct {
	Title         string
	Subject       string
	Price         decimal.Decimal
	PurchasedDate time.Time
	Semester      string
	Condition     *string
}

// CreateTextbook records a textbook purchase
func (s *TextbookService) CreateTextbook(userID uuid.UUID, input CreateTextbookInput) (*domain.Textbook, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrNameRequired
	}
	if len(title) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if input.Price.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if input.PurchasedDate.IsZero() {
		input.PurchasedDate = time.Now()
	}

	textbook := &domain.Textbook{
		UserID:        userID,
		Title:         title,
		Subject:       strings.TrimSpace(input.Subject),
		Price:         input.Price,
		PurchasedDate: input.PurchasedDate,
		Semester:      strings.TrimSpace(input.Semester),
		Condition:     input.Condition,
	}

	created, err := s.textbookRepo.Create(textbook)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, events.TextbookCreated(created))
	return created, nil
}

// GetTextbooks retrieves all textbooks for a user
func (s *TextbookService) GetTextbooks(userID uuid.UUID) ([]*domain.Textbook, error) {
	return s.textbookRepo.GetAllByUser(userID)
}

// GetTextbookByID retrieves a textbook by ID
func (s *TextbookService) GetTextbookByID(userID, id uuid.UUID) (*domain.Textbook, error) {
	return s.textbookRepo.GetByID(userID, id)
}

// TotalSpent sums what the user has paid for textbooks
func (s *TextbookService) TotalSpent(userID uuid.UUID) (decimal.Decimal, error) {
	textbooks, err := s.textbookRepo.GetAllByUser(userID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, tb := range textbooks {
		total = total.Add(tb.Price)
	}
	return total, nil
}

// DeleteTextbook removes a textbook record
func (s *TextbookService) DeleteTextbook(userID, id uuid.UUID) error {
	if err := s.textbookRepo.Delete(userID, id); err != nil {
		return err
	}
	s.publishEvent(userID, events.TextbookDeleted(map[string]uuid.UUID{"id": id}))
	return nil
}
