package task

import (
	"time"

	"github.com/workforge-hr/workforge-backend-go/internal/pkg/validator"
)

type TaskResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	AssignedTo     *string `json:"assigned_to,omitempty"`
	AssignedToName *string `json:"assigned_to_name,omitempty"`
	CreatedBy      string  `json:"created_by"`
	CreatedByName  *string `json:"created_by_name,omitempty"`
	Status         string  `json:"status"`
	DueDate        *string `json:"due_date,omitempty"`
	AssignedAt     *string `json:"assigned_at,omitempty"`
	IsOverdue      bool    `json:"is_overdue"`
	CreatedAt      string  `json:"created_at"`
}

func ToResponse(t Task, now time.Time) TaskResponse {
	var dueDate *string
	if t.DueDate != nil {
		s := t.DueDate.Format("2006-01-02")
		dueDate = &s
	}
	var assignedAt *string
	if t.AssignedAt != nil {
		s := t.AssignedAt.Format(time.RFC3339)
		assignedAt = &s
	}

	return TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		AssignedTo:     t.AssignedTo,
		AssignedToName: t.AssignedToName,
		CreatedBy:      t.CreatedBy,
		CreatedByName:  t.CreatedByName,
		Status:         string(t.Status),
		DueDate:        dueDate,
		AssignedAt:     assignedAt,
		IsOverdue:      t.IsOverdue(now),
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponses(tasks []Task, now time.Time) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, ToResponse(t, now))
	}
	return result
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.Status != nil && !IsValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'todo', 'inprogress' or 'completed'"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskRequest struct {
	ID          string
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`

	// ClearAssignee removes the assignment when true.
	ClearAssignee bool `json:"clear_assignee,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "must not be empty"})
	}
	if r.Status != nil && !IsValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'todo', 'inprogress' or 'completed'"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TaskFilter narrows task list queries per the caller's role scope.
type TaskFilter struct {
	Status     *string
	AssignedTo *string
	// CreatedByOrTeamOf scopes to tasks the manager created or assigned to
	// their reports.
	CreatedByOrTeamOf *string
	// AssignedToOnly scopes to one user's own tasks.
	AssignedToOnly *string
}
