package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/task"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
)

type TaskServiceImpl struct {
	taskRepo task.TaskRepository
	userRepo user.UserRepository
}

func NewTaskService(taskRepo task.TaskRepository, userRepo user.UserRepository) task.TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo, userRepo: userRepo}
}

func getClaimsFromContext(ctx context.Context) (userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, _ := claims["role"].(string)

	return userID, user.Role(roleStr), nil
}

// GetTask applies the same per-object scope as the listing: admins read
// anything, managers read tasks they created or tasks assigned to their
// reports, regular users read only tasks assigned to them.
func (s *TaskServiceImpl) GetTask(ctx context.Context, id string) (task.TaskResponse, error) {
	t, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if err := s.authorizeTaskAccess(ctx, t); err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(t, time.Now()), nil
}

// authorizeTaskAccess enforces per-object task scoping for detail reads
// and writes.
func (s *TaskServiceImpl) authorizeTaskAccess(ctx context.Context, t task.Task) error {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	switch role {
	case user.RoleAdmin:
		return nil
	case user.RoleManager:
		owns, err := s.managerOwnsTask(ctx, userID, t)
		if err != nil {
			return err
		}
		if !owns {
			return task.ErrTaskAccessDenied
		}
		return nil
	default:
		if t.AssignedTo == nil || *t.AssignedTo != userID {
			return task.ErrTaskAccessDenied
		}
		return nil
	}
}

// managerOwnsTask reports whether a manager may act on the task: they
// created it, or it is assigned to one of their reports.
func (s *TaskServiceImpl) managerOwnsTask(ctx context.Context, managerID string, t task.Task) (bool, error) {
	if t.CreatedBy == managerID {
		return true, nil
	}
	if t.AssignedTo == nil {
		return false, nil
	}

	assignee, err := s.userRepo.GetByID(ctx, *t.AssignedTo)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	return assignee.ManagerID != nil && *assignee.ManagerID == managerID, nil
}

// ListTasks scopes the listing by role: admins see everything, managers
// see tasks they created plus tasks assigned to their reports, regular
// users see only their own.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, filter task.TaskFilter) ([]task.TaskResponse, error) {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	switch role {
	case user.RoleManager:
		filter.CreatedByOrTeamOf = &userID
	case user.RoleUser:
		filter.AssignedToOnly = &userID
	}

	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return task.ToResponses(tasks, time.Now()), nil
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	newTask := task.Task{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   userID,
		Status:      task.StatusTodo,
	}
	if req.Status != nil {
		newTask.Status = task.Status(*req.Status)
	}
	if req.AssignedTo != nil {
		if err := s.validateAssignee(ctx, *req.AssignedTo); err != nil {
			return task.TaskResponse{}, err
		}
		now := time.Now()
		newTask.AssignedTo = req.AssignedTo
		newTask.AssignedAt = &now
	}
	if req.DueDate != nil {
		due, _ := time.Parse("2006-01-02", *req.DueDate)
		newTask.DueDate = &due
	}

	t, err := s.taskRepo.Create(ctx, newTask)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return s.GetTask(ctx, t.ID)
}

// UpdateTask lets admins change anything, managers change tasks within
// their scope, and regular users flip the status on their own tasks and
// nothing else.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	existing, err := s.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if err := s.authorizeTaskAccess(ctx, existing); err != nil {
		return task.TaskResponse{}, err
	}

	_, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if role != user.RoleAdmin && role != user.RoleManager {
		touchesOtherFields := req.Title != nil || req.Description != nil ||
			req.AssignedTo != nil || req.DueDate != nil || req.ClearAssignee
		if touchesOtherFields {
			return task.TaskResponse{}, task.ErrStatusOnlyUpdate
		}
	}

	if req.AssignedTo != nil && !req.ClearAssignee {
		if err := s.validateAssignee(ctx, *req.AssignedTo); err != nil {
			return task.TaskResponse{}, err
		}
	}

	if err := s.taskRepo.Update(ctx, req); err != nil {
		return task.TaskResponse{}, err
	}

	// Access was checked against the pre-update state; read back directly
	// so a reassignment does not fail its own response.
	updated, err := s.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(updated, time.Now()), nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	existing, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorizeTaskAccess(ctx, existing); err != nil {
		return err
	}

	return s.taskRepo.Delete(ctx, id)
}

func (s *TaskServiceImpl) validateAssignee(ctx context.Context, assigneeID string) error {
	if _, err := s.userRepo.GetByID(ctx, assigneeID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return task.ErrAssigneeNotFound
		}
		return err
	}
	return nil
}
