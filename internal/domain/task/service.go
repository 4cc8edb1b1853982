package task

import (
	"context"
)

type TaskService interface {
	GetTask(ctx context.Context, id string) (TaskResponse, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]TaskResponse, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)
	DeleteTask(ctx context.Context, id string) error
}
