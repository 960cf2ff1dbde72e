package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the type of event (created, updated, deleted)
type EventType string

const (
	EventTypeCreated EventType = "created"
	EventTypeUpdated EventType = "updated"
	EventTypeDeleted EventType = "deleted"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeExpense     EntityType = "expense"
	EntityTypeCategory    EntityType = "category"
	EntityTypeBudget      EntityType = "budget"
	EntityTypeSavingsGoal EntityType = "savings_goal"
	EntityTypeTextbook    EntityType = "textbook"
	EntityTypeProfile     EntityType = "profile"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "expense.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "expense"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ExpenseCreated creates an expense.created event
func ExpenseCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeExpense, payload)
}

// ExpenseUpdated creates an expense.updated event
func ExpenseUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeExpense, payload)
}

// ExpenseDeleted creates an expense.deleted event
func ExpenseDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeExpense, payload)
}

// CategoryCreated creates a category.created event
func CategoryCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeCategory, payload)
}

// CategoryUpdated creates a category.updated event
func CategoryUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeCategory, payload)
}

// CategoryDeleted creates a category.deleted event
func CategoryDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeCategory, payload)
}

// BudgetCreated creates a budget.created event
func BudgetCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeBudget, payload)
}

// BudgetDeleted creates a budget.deleted event
func BudgetDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeBudget, payload)
}

// SavingsGoalCreated creates a savings_goal.created event
func SavingsGoalCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeSavingsGoal, payload)
}

// SavingsGoalUpdated creates a savings_goal.updated event
func SavingsGoalUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeSavingsGoal, payload)
}

// SavingsGoalDeleted creates a savings_goal.deleted event
func SavingsGoalDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeSavingsGoal, payload)
}

// TextbookCreated creates a textbook.created event
func TextbookCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeTextbook, payload)
}

// TextbookDeleted creates a textbook.deleted event
func TextbookDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeTextbook, payload)
}

// ProfileUpdated creates a profile.updated event
func ProfileUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeProfile, payload)
}
