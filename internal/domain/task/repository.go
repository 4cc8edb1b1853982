package task

import "context"

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (Task, error)
	List(ctx context.Context, filter TaskFilter) ([]Task, error)
	ListRecent(ctx context.Context, filter TaskFilter, limit int) ([]Task, error)
	CountPending(ctx context.Context, filter TaskFilter) (int, error)
	Create(ctx context.Context, newTask Task) (Task, error)
	Update(ctx context.Context, req UpdateTaskRequest) error
	Delete(ctx context.Context, id string) error
}
