package models

import "time"

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

type Task struct {
	ID          int64
	UserID      string
	Title       string
	Description string
	Status      string
	Priority    int
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *Task) PriorityLabel() string {
	switch t.Priority {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// DueBadge renders the due date for list views.
func (t *Task) DueBadge() string {
	if t.DueDate == nil {
		return "No due date"
	}
	return t.DueDate.Format("02 Jan 2006")
}
