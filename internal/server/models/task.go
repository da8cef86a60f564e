package models

import "time"

const (
	// TaskStatusAll is a list filter meaning "no status filter", not a
	// value a task can hold.
	TaskStatusAll = "ALL"

	TaskStatusPending    = "PENDING"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusCompleted  = "COMPLETED"
)

// ValidTaskStatus reports whether s is a status a task row may hold.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Deleted     bool
}
