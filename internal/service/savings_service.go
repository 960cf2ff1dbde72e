package service

import (
	"strings"
	"time"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/events"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsService handles savings goal business logic
type SavingsService struct {
	goalRepo       domain.SavingsGoalRepository
	eventPublisher events.EventPublisher
}

// NewSavingsService creates a new SavingsService
func NewSavingsService(goalRepo domain.SavingsGoalRepository) *SavingsService {
	return &SavingsService{goalRepo: goalRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *SavingsService) SetEventPublisher(publisher events.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *SavingsService) publishEvent(userID uuid.UUID, event events.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// CreateGoalInput holds the input for creating or updating a savings goal
type CreateGoalInput struct {
	Name         string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
	Icon         string
	Color        string
}

func validateGoalInput(input *CreateGoalInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return domain.ErrNameRequired
	}
	if len(input.Name) > domain.MaxNameLength {
		return domain.ErrNameTooLong
	}
	if input.TargetAmount.IsNegative() || input.TargetAmount.IsZero() {
		return domain.ErrInvalidTarget
	}
	return nil
}

// CreateGoal creates a new savings goal starting at zero saved
func (s *SavingsService) CreateGoal(userID uuid.UUID, input CreateGoalInput) (*domain.SavingsGoal, error) {
	if err := validateGoalInput(&input); err != nil {
		return nil, err
	}

	goal := &domain.SavingsGoal{
		UserID:        userID,
		Name:          input.Name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      input.Deadline,
		Icon:          input.Icon,
		Color:         input.Color,
	}

	created, err := s.goalRepo.Create(goal)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, events.SavingsGoalCreated(created))
	return created, nil
}

// GetGoals retrieves all savings goals for a user
func (s *SavingsService) GetGoals(userID uuid.UUID) ([]*domain.SavingsGoal, error) {
	return s.goalRepo.GetAllByUser(userID)
}

// GetGoalByID retrieves a savings goal by ID
func (s *SavingsService) GetGoalByID(userID, id uuid.UUID) (*domain.SavingsGoal, error) {
	return s.goalRepo.GetByID(userID, id)
}

// UpdateGoal updates a goal's name, target, deadline and appearance
func (s *SavingsService) UpdateGoal(userID, id uuid.UUID, input CreateGoalInput) (*domain.SavingsGoal, error) {
	if err := validateGoalInput(&input); err != nil {
		return nil, err
	}

	existing, err := s.goalRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.TargetAmount = input.TargetAmount
	existing.Deadline = input.Deadline
	if input.Icon != "" {
		existing.Icon = input.Icon
	}
	if input.Color != "" {
		existing.Color = input.Color
	}

	updated, err := s.goalRepo.Update(existing)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, events.SavingsGoalUpdated(updated))
	return updated, nil
}

// FundOperation directs an UpdateFunds call
type FundOperation string

const (
	FundAdd      FundOperation = "add"
	FundSubtract FundOperation = "subtract"
)

// UpdateFunds adds money to or withdraws money from a goal. Withdrawals
// floor at zero so the saved amount never goes negative.
func (s *SavingsService) UpdateFunds(userID, id uuid.UUID, op FundOperation, amount decimal.Decimal) (*domain.SavingsGoal, error) {
	if amount.IsNegative() || amount.IsZero() {
		return nil, domain.ErrInvalidAmount
	}

	goal, err := s.goalRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	var next decimal.Decimal
	switch op {
	case FundAdd:
		next = goal.CurrentAmount.Add(amount)
	case FundSubtract:
		next = goal.CurrentAmount.Sub(amount)
		if next.IsNegative() {
			next = decimal.Zero
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	updated, err := s.goalRepo.UpdateCurrentAmount(userID, id, next)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, events.SavingsGoalUpdated(updated))
	return updated, nil
}

// DeleteGoal removes a savings goal
func (s *SavingsService) DeleteGoal(userID, id uuid.UUID) error {
	if err := s.goalRepo.Delete(userID, id); err != nil {
		return err
	}
	s.publishEvent(userID, events.SavingsGoalDeleted(map[string]uuid.UUID{"id": id}))
	return nil
}
