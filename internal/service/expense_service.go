package service

import (
	"strings"
	"time"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/events"
	"github.com/fintrack/fintrack-backend/internal/util"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense business logic
type ExpenseService struct {
	expenseRepo    domain.ExpenseRepository
	categoryRepo   domain.CategoryRepository
	eventPublisher events.EventPublisher
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo domain.ExpenseRepository, categoryRepo domain.CategoryRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *ExpenseService) SetEventPublisher(publisher events.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *ExpenseService) publishEvent(userID uuid.UUID, event events.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// CreateExpenseInput holds the input for creating or updating an expense
type CreateExpenseInput struct {
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CategoryID  *uuid.UUID
}

func (s *ExpenseService) validateInput(userID uuid.UUID, input *CreateExpenseInput) error {
	if input.Amount.IsNegative() {
		return domain.ErrInvalidAmount
	}
	if len(input.Description) > domain.MaxDescriptionLength {
		return domain.ErrInvalidInput
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	// A category reference must belong to the same user
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(userID, *input.CategoryID); err != nil {
			return err
		}
	}
	return nil
}

// CreateExpense creates a new expense
func (s *ExpenseService) CreateExpense(userID uuid.UUID, input CreateExpenseInput) (*domain.Expense, error) {
	input.Description = strings.TrimSpace(input.Description)
	if err := s.validateInput(userID, &input); err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
	}

	created, err := s.expenseRepo.Create(expense)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, events.ExpenseCreated(created))
	return created, nil
}

// GetExpenses retrieves expenses for a user with optional filters
func (s *ExpenseService) GetExpenses(userID uuid.UUID, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	return s.expenseRepo.GetAllByUser(userID, filters)
}

// GetExpenseByID retrieves a single expense
func (s *ExpenseService) GetExpenseByID(userID, id uuid.UUID) (*domain.Expense, error) {
	return s.expenseRepo.GetByID(userID, id)
}

// GetExpensesForMonth retrieves all expenses dated within a month
func (s *ExpenseService) GetExpensesForMonth(userID uuid.UUID, month, year int) ([]*domain.Expense, error) {
	first, last := util.MonthRange(year, month)
	return s.expenseRepo.GetAllByUser(userID, &domain.ExpenseFilters{
		StartDate: &first,
		EndDate:   &last,
	})
}

// UpdateExpense updates an existing expense
func (s *ExpenseService) UpdateExpense(userID, id uuid.UUID, input CreateExpenseInput) (*domain.Expense, error) {
	input.Description = strings.TrimSpace(input.Description)
	if err := s.validateInput(userID, &input); err != nil {
		return nil, err
	}

	existing, err := s.expenseRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	existing.CategoryID = input.CategoryID
	existing.Amount = input.Amount
	existing.Description = input.Description
	existing.Date = input.Date

	updated, err := s.expenseRepo.Update(existing)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, events.ExpenseUpdated(updated))
	return updated, nil
}

// DeleteExpense removes an expense. Deleting a missing expense is a no-op.
func (s *ExpenseService) DeleteExpense(userID, id uuid.UUID) error {
	if err := s.expenseRepo.Delete(userID, id); err != nil {
		return err
	}
	s.publishEvent(userID, events.ExpenseDeleted(map[string]uuid.UUID{"id": id}))
	return nil
}
