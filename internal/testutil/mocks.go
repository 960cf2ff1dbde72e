package testutil

import (
	"sort"
	"time"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users    map[string]*domain.User
	ByID     map[uuid.UUID]*domain.User
	CreateFn func(auth0ID, email string, fullName *string) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*domain.User),
		ByID:  make(map[uuid.UUID]*domain.User),
	}
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByAuth0ID retrieves a user by Auth0 ID
func (m *MockUserRepository) GetByAuth0ID(auth0ID string) (*domain.User, error) {
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// CreateOrGetByAuth0ID creates or retrieves a user by Auth0 ID
func (m *MockUserRepository) CreateOrGetByAuth0ID(auth0ID, email string, fullName *string) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(auth0ID, email, fullName)
	}
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	user := &domain.User{
		ID:        uuid.New(),
		Auth0ID:   auth0ID,
		Email:     email,
		FullName:  fullName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.Users[auth0ID] = user
	m.ByID[user.ID] = user
	return user, nil
}

// UpdateName updates only the user's name by Auth0 ID
func (m *MockUserRepository) UpdateName(auth0ID string, fullName string) (*domain.User, error) {
	user, ok := m.Users[auth0ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user.FullName = &fullName
	return user, nil
}

// UpdateAvatarURL updates the user's avatar URL by Auth0 ID
func (m *MockUserRepository) UpdateAvatarURL(auth0ID string, avatarURL string) (*domain.User, error) {
	user, ok := m.Users[auth0ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user.AvatarURL = &avatarURL
	return user, nil
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[uuid.UUID]*domain.Category
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[uuid.UUID]*domain.Category),
	}
}

// Create creates a new category
func (m *MockCategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	c := *category
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
	m.Categories[c.ID] = &c
	return &c, nil
}

// GetByID retrieves a category by ID scoped to a user
func (m *MockCategoryRepository) GetByID(userID, id uuid.UUID) (*domain.Category, error) {
	if c, ok := m.Categories[id]; ok && c.UserID == userID {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

// GetAllByUser retrieves all categories for a user sorted by name
func (m *MockCategoryRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Category, error) {
	result := make([]*domain.Category, 0)
	for _, c := range m.Categories {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// Update updates a category
func (m *MockCategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	existing, ok := m.Categories[category.ID]
	if !ok || existing.UserID != category.UserID {
		return nil, domain.ErrCategoryNotFound
	}
	existing.Name = category.Name
	existing.Icon = category.Icon
	existing.Color = category.Color
	existing.UpdatedAt = time.Now()
	return existing, nil
}

// Delete removes a category
func (m *MockCategoryRepository) Delete(userID, id uuid.UUID) error {
	if c, ok := m.Categories[id]; ok && c.UserID == userID {
		delete(m.Categories, id)
	}
	return nil
}

// MockExpenseRepository is a mock implementation of domain.ExpenseRepository
type MockExpenseRepository struct {
	Expenses map[uuid.UUID]*domain.Expense
}

// NewMockExpenseRepository creates a new MockExpenseRepository
func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		Expenses: make(map[uuid.UUID]*domain.Expense),
	}
}

// Create creates a new expense
func (m *MockExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	e := *expense
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	e.UpdatedAt = time.Now()
	m.Expenses[e.ID] = &e
	return &e, nil
}

// GetByID retrieves an expense by ID scoped to a user
func (m *MockExpenseRepository) GetByID(userID, id uuid.UUID) (*domain.Expense, error) {
	if e, ok := m.Expenses[id]; ok && e.UserID == userID {
		return e, nil
	}
	return nil, domain.ErrExpenseNotFound
}

// GetAllByUser retrieves expenses for a user with filters, date descending
func (m *MockExpenseRepository) GetAllByUser(userID uuid.UUID, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	result := make([]*domain.Expense, 0)
	for _, e := range m.Expenses {
		if e.UserID != userID {
			continue
		}
		if filters != nil {
			if filters.StartDate != nil && e.Date.Before(*filters.StartDate) {
				continue
			}
			if filters.EndDate != nil && e.Date.After(*filters.EndDate) {
				continue
			}
			if filters.CategoryID != nil && (e.CategoryID == nil || *e.CategoryID != *filters.CategoryID) {
				continue
			}
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	if filters != nil && filters.Limit > 0 && int(filters.Limit) < len(result) {
		result = result[:filters.Limit]
	}
	return result, nil
}

// Update updates an expense
func (m *MockExpenseRepository) Update(expense *domain.Expense) (*domain.Expense, error) {
	existing, ok := m.Expenses[expense.ID]
	if !ok || existing.UserID != expense.UserID {
		return nil, domain.ErrExpenseNotFound
	}
	existing.CategoryID = expense.CategoryID
	existing.Amount = expense.Amount
	existing.Description = expense.Description
	existing.Date = expense.Date
	existing.Category = expense.Category
	existing.UpdatedAt = time.Now()
	return existing, nil
}

// Delete removes an expense
func (m *MockExpenseRepository) Delete(userID, id uuid.UUID) error {
	if e, ok := m.Expenses[id]; ok && e.UserID == userID {
		delete(m.Expenses, id)
	}
	return nil
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets map[uuid.UUID]*domain.Budget
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Budgets: make(map[uuid.UUID]*domain.Budget),
	}
}

// Create creates a budget, enforcing one budget per user per month
func (m *MockBudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	for _, b := range m.Budgets {
		if b.UserID == budget.UserID && b.Month == budget.Month && b.Year == budget.Year {
			return nil, domain.ErrBudgetExists
		}
	}
	b := *budget
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	b.UpdatedAt = time.Now()
	m.Budgets[b.ID] = &b
	return &b, nil
}

// GetByMonth retrieves the budget for a month
func (m *MockBudgetRepository) GetByMonth(userID uuid.UUID, month, year int) (*domain.Budget, error) {
	for _, b := range m.Budgets {
		if b.UserID == userID && b.Month == month && b.Year == year {
			return b, nil
		}
	}
	return nil, domain.ErrBudgetNotFound
}

// GetAllByUser retrieves all budgets for a user, newest first
func (m *MockBudgetRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Budget, error) {
	result := make([]*domain.Budget, 0)
	for _, b := range m.Budgets {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year > result[j].Year
		}
		return result[i].Month > result[j].Month
	})
	return result, nil
}

// Delete removes a budget
func (m *MockBudgetRepository) Delete(userID, id uuid.UUID) error {
	if b, ok := m.Budgets[id]; ok && b.UserID == userID {
		delete(m.Budgets, id)
	}
	return nil
}

// MockSavingsGoalRepository is a mock implementation of domain.SavingsGoalRepository
type MockSavingsGoalRepository struct {
	Goals map[uuid.UUID]*domain.SavingsGoal
}

// NewMockSavingsGoalRepository creates a new MockSavingsGoalRepository
func NewMockSavingsGoalRepository() *MockSavingsGoalRepository {
	return &MockSavingsGoalRepository{
		Goals: make(map[uuid.UUID]*domain.SavingsGoal),
	}
}

// Create creates a new savings goal
func (m *MockSavingsGoalRepository) Create(goal *domain.SavingsGoal) (*domain.SavingsGoal, error) {
	g := *goal
	g.ID = uuid.New()
	g.CreatedAt = time.Now()
	g.UpdatedAt = time.Now()
	m.Goals[g.ID] = &g
	return &g, nil
}

// GetByID retrieves a savings goal by ID scoped to a user
func (m *MockSavingsGoalRepository) GetByID(userID, id uuid.UUID) (*domain.SavingsGoal, error) {
	if g, ok := m.Goals[id]; ok && g.UserID == userID {
		return g, nil
	}
	return nil, domain.ErrGoalNotFound
}

// GetAllByUser retrieves all savings goals for a user, newest first
func (m *MockSavingsGoalRepository) GetAllByUser(userID uuid.UUID) ([]*domain.SavingsGoal, error) {
	result := make([]*domain.SavingsGoal, 0)
	for _, g := range m.Goals {
		if g.UserID == userID {
			result = append(result, g)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Update updates a savings goal
func (m *MockSavingsGoalRepository) Update(goal *domain.SavingsGoal) (*domain.SavingsGoal, error) {
	existing, ok := m.Goals[goal.ID]
	if !ok || existing.UserID != goal.UserID {
		return nil, domain.ErrGoalNotFound
	}
	existing.Name = goal.Name
	existing.TargetAmount = goal.TargetAmount
	existing.Deadline = goal.Deadline
	existing.Icon = goal.Icon
	existing.Color = goal.Color
	existing.UpdatedAt = time.Now()
	return existing, nil
}

// UpdateCurrentAmount sets the saved amount on a goal
func (m *MockSavingsGoalRepository) UpdateCurrentAmount(userID, id uuid.UUID, amount decimal.Decimal) (*domain.SavingsGoal, error) {
	existing, ok := m.Goals[id]
	if !ok || existing.UserID != userID {
		return nil, domain.ErrGoalNotFound
	}
	existing.CurrentAmount = amount
	existing.UpdatedAt = time.Now()
	return existing, nil
}

// Delete removes a savings goal
func (m *MockSavingsGoalRepository) Delete(userID, id uuid.UUID) error {
	if g, ok := m.Goals[id]; ok && g.UserID == userID {
		delete(m.Goals, id)
	}
	return nil
}

// MockTextbookRepository is a mock implementation of domain.TextbookRepository
type MockTextbookRepository struct {
	Textbooks map[uuid.UUID]*domain.Textbook
}

// NewMockTextbookRepository creates a new MockTextbookRepository
func NewMockTextbookRepository() *MockTextbookRepository {
	return &MockTextbookRepository{
		Textbooks: make(map[uuid.UUID]*domain.Textbook),
	}
}

// Create creates a new textbook
func (m *MockTextbookRepository) Create(textbook *domain.Textbook) (*domain.Textbook, error) {
	t := *textbook
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
	m.Textbooks[t.ID] = &t
	return &t, nil
}

// GetByID retrieves a textbook by ID scoped to a user
func (m *MockTextbookRepository) GetByID(userID, id uuid.UUID) (*domain.Textbook, error) {
	if tb, ok := m.Textbooks[id]; ok && tb.UserID == userID {
		return tb, nil
	}
	return nil, domain.ErrTextbookNotFound
}

// GetAllByUser retrieves all textbooks for a user by purchase date descending
func (m *MockTextbookRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Textbook, error) {
	result := make([]*domain.Textbook, 0)
	for _, tb := range m.Textbooks {
		if tb.UserID == userID {
			result = append(result, tb)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PurchasedDate.After(result[j].PurchasedDate)
	})
	return result, nil
}

// Delete removes a textbook
func (m *MockTextbookRepository) Delete(userID, id uuid.UUID) error {
	if tb, ok := m.Textbooks[id]; ok && tb.UserID == userID {
		delete(m.Textbooks, id)
	}
	return nil
}
