package model

import (
	"strings"
	"time"
)

// TaskStatus is the closed set of lifecycle states for a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// TaskPriority is the closed set of priority levels for a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TaskStatusValues lists the accepted status values for error messages.
func TaskStatusValues() string {
	return strings.Join([]string{string(StatusPending), string(StatusInProgress), string(StatusCompleted)}, ", ")
}

// TaskPriorityValues lists the accepted priority values for error messages.
func TaskPriorityValues() string {
	return strings.Join([]string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh)}, ", ")
}

// Task represents a single item owned by one category and one user.
// UpdatedAt is refreshed on every mutating write, even when no field
// actually changed value.
type Task struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Title       string       `gorm:"size:200;not null" json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `gorm:"size:20;not null;default:pending" json:"status"`
	Priority    TaskPriority `gorm:"size:20;not null;default:medium" json:"priority"`
	DueDate     *time.Time   `json:"due_date"`
	CategoryID  uint         `gorm:"index;not null" json:"category_id"`
	UserID      uint         `gorm:"index;not null" json:"user_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
