package service

import (
	"strings"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/events"
	"github.com/google/uuid"
)

// CategoryService handles expense category business logic
type CategoryService struct {
	categoryRepo   domain.CategoryRepository
	eventPublisher events.EventPublisher
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *CategoryService) SetEventPublisher(publisher events.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *CategoryService) publishEvent(userID uuid.UUID, event events.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// CreateCategoryInput holds the input for creating a category
type CreateCategoryInput struct {
	Name  string
	Icon  string
	Color string
}

// CreateCategory creates a new category with defaults for icon and color
func (s *CategoryService) CreateCategory(userID uuid.UUID, input CreateCategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	icon := input.Icon
	if icon == "" {
		icon = domain.UncategorizedIcon
	}
	color := input.Color
	if color == "" {
		color = domain.UncategorizedColor
	}

	category := &domain.Category{
		UserID: userID,
		Name:   name,
		Icon:   icon,
		Color:  color,
	}

	created, err := s.categoryRepo.Create(category)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, events.CategoryCreated(created))
	return created, nil
}

// GetCategories retrieves all categories for a user
func (s *CategoryService) GetCategories(userID uuid.UUID) ([]*domain.Category, error) {
	return s.categoryRepo.GetAllByUser(userID)
}

// GetCategoryByID retrieves a category by ID
func (s *CategoryService) GetCategoryByID(userID, id uuid.UUID) (*domain.Category, error) {
	return s.categoryRepo.GetByID(userID, id)
}

// UpdateCategory updates a category's name, icon and color
func (s *CategoryService) UpdateCategory(userID, id uuid.UUID, input CreateCategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	existing, err := s.categoryRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = name
	if input.Icon != "" {
		existing.Icon = input.Icon
	}
	if input.Color != "" {
		existing.Color = input.Color
	}

	updated, err := s.categoryRepo.Update(existing)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, events.CategoryUpdated(updated))
	return updated, nil
}

// DeleteCategory removes a category. Expenses referencing it become
// uncategorized rather than being deleted.
func (s *CategoryService) DeleteCategory(userID, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(userID, id); err != nil {
		return err
	}
	s.publishEvent(userID, events.CategoryDeleted(map[string]uuid.UUID{"id": id}))
	return nil
}
