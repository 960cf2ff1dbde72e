package service

import (
	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/events"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetService handles monthly budget business logic
type BudgetService struct {
	budgetRepo     domain.BudgetRepository
	eventPublisher events.EventPublisher
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *BudgetService) SetEventPublisher(publisher events.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *BudgetService) publishEvent(userID uuid.UUID, event events.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// CreateBudgetInput holds the input for creating a monthly budget
type CreateBudgetInput struct {
	Amount decimal.Decimal
	Month  int
	Year   int
}

// CreateBudget creates a budget for a month. Only one budget may exist per
// user and month; a second create returns ErrBudgetExists.
func (s *BudgetService) CreateBudget(userID uuid.UUID, input CreateBudgetInput) (*domain.Budget, error) {
	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if input.Month < 1 || input.Month > 12 {
		return nil, domain.ErrInvalidMonth
	}
	if input.Year < domain.MinYear || input.Year > domain.MaxYear {
		return nil, domain.ErrInvalidYear
	}

	budget := &domain.Budget{
		UserID: userID,
		Amount: input.Amount,
		Month:  input.Month,
		Year:   input.Year,
	}

	created, err := s.budgetRepo.Create(budget)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, events.BudgetCreated(created))
	return created, nil
}

// GetBudgets retrieves all budgets for a user
func (s *BudgetService) GetBudgets(userID uuid.UUID) ([]*domain.Budget, error) {
	return s.budgetRepo.GetAllByUser(userID)
}

// GetBudgetForMonth retrieves the budget for a specific month, or
// ErrBudgetNotFound when none is set.
func (s *BudgetService) GetBudgetForMonth(userID uuid.UUID, month, year int) (*domain.Budget, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidMonth
	}
	return s.budgetRepo.GetByMonth(userID, month, year)
}

// DeleteBudget removes a budget. Deleting a missing budget is a no-op.
func (s *BudgetService) DeleteBudget(userID, id uuid.UUID) error {
	if err := s.budgetRepo.Delete(userID, id); err != nil {
		return err
	}
	s.publishEvent(userID, events.BudgetDeleted(map[string]uuid.UUID{"id": id}))
	return nil
}
