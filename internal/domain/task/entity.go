package task

import "time"

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusCompleted  Status = "completed"
)

func IsValidStatus(s Status) bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusCompleted
}

type Task struct {
	ID          string
	Title       string
	Description *string
	AssignedTo  *string
	CreatedBy   string
	Status      Status
	DueDate     *time.Time
	AssignedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	AssignedToName *string
	CreatedByName  *string
}

// IsOverdue reports whether the task missed its due date: either it is
// still open past the due date, or it was completed after the due date
// (UpdatedAt stands in for the completion time).
func (t *Task) IsOverdue(today time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	due := t.DueDate.Truncate(24 * time.Hour)
	day := today.Truncate(24 * time.Hour)

	if t.Status != StatusCompleted && due.Before(day) {
		return true
	}
	if t.Status == StatusCompleted && t.UpdatedAt.Truncate(24*time.Hour).After(due) {
		return true
	}
	return false
}
