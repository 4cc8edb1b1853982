package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/task"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `
	t.id, t.title, t.description, t.assigned_to, t.created_by, t.status,
	t.due_date, t.assigned_at, t.created_at, t.updated_at,
	COALESCE(NULLIF(TRIM(CONCAT(a.first_name, ' ', a.last_name)), ''), a.username),
	COALESCE(NULLIF(TRIM(CONCAT(c.first_name, ' ', c.last_name)), ''), c.username)
`

const taskJoins = `
	LEFT JOIN users a ON a.id = t.assigned_to
	LEFT JOIN users c ON c.id = t.created_by
`

func taskWhere(filter task.TaskFilter, args *[]interface{}, argIdx *int) []string {
	whereParts := []string{"1=1"}

	if filter.Status != nil && *filter.Status != "" {
		whereParts = append(whereParts, fmt.Sprintf("t.status = $%d", *argIdx))
		*args = append(*args, *filter.Status)
		*argIdx++
	}
	if filter.AssignedTo != nil && *filter.AssignedTo != "" {
		whereParts = append(whereParts, fmt.Sprintf("t.assigned_to = $%d", *argIdx))
		*args = append(*args, *filter.AssignedTo)
		*argIdx++
	}
	if filter.CreatedByOrTeamOf != nil && *filter.CreatedByOrTeamOf != "" {
		whereParts = append(whereParts, fmt.Sprintf("(t.created_by = $%d OR a.manager_id = $%d)", *argIdx, *argIdx))
		*args = append(*args, *filter.CreatedByOrTeamOf)
		*argIdx++
	}
	if filter.AssignedToOnly != nil && *filter.AssignedToOnly != "" {
		whereParts = append(whereParts, fmt.Sprintf("t.assigned_to = $%d", *argIdx))
		*args = append(*args, *filter.AssignedToOnly)
		*argIdx++
	}

	return whereParts
}

func collectTasks(rows pgx.Rows) ([]task.Task, error) {
	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.CreatedBy, &t.Status,
			&t.DueDate, &t.AssignedAt, &t.CreatedAt, &t.UpdatedAt,
			&t.AssignedToName, &t.CreatedByName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks t
		%s
		WHERE t.id = $1
	`, taskColumns, taskJoins)

	var t task.Task
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.CreatedBy, &t.Status,
		&t.DueDate, &t.AssignedAt, &t.CreatedAt, &t.UpdatedAt,
		&t.AssignedToName, &t.CreatedByName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

func (r *taskRepository) List(ctx context.Context, filter task.TaskFilter) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	var args []interface{}
	argIdx := 1
	whereParts := taskWhere(filter, &args, &argIdx)

	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks t
		%s
		WHERE %s
		ORDER BY t.created_at DESC
	`, taskColumns, taskJoins, strings.Join(whereParts, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *taskRepository) ListRecent(ctx context.Context, filter task.TaskFilter, limit int) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	var args []interface{}
	argIdx := 1
	whereParts := taskWhere(filter, &args, &argIdx)

	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks t
		%s
		WHERE %s
		ORDER BY t.created_at DESC
		LIMIT $%d
	`, taskColumns, taskJoins, strings.Join(whereParts, " AND "), argIdx)
	args = append(args, limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *taskRepository) CountPending(ctx context.Context, filter task.TaskFilter) (int, error) {
	q := GetQuerier(ctx, r.db)

	var args []interface{}
	argIdx := 1
	whereParts := taskWhere(filter, &args, &argIdx)
	whereParts = append(whereParts, "t.status != 'completed'")

	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM tasks t
		%s
		WHERE %s
	`, taskJoins, strings.Join(whereParts, " AND "))

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending tasks: %w", err)
	}

	return count, nil
}

func (r *taskRepository) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (title, description, assigned_to, created_by, status, due_date, assigned_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, description, assigned_to, created_by, status, due_date, assigned_at, created_at, updated_at
	`

	var t task.Task
	err := q.QueryRow(ctx, query,
		newTask.Title, newTask.Description, newTask.AssignedTo, newTask.CreatedBy,
		newTask.Status, newTask.DueDate, newTask.AssignedAt,
	).Scan(
		&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.CreatedBy, &t.Status,
		&t.DueDate, &t.AssignedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "fk_tasks_assigned_to") {
			return task.Task{}, task.ErrAssigneeNotFound
		}
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

func (r *taskRepository) Update(ctx context.Context, req task.UpdateTaskRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", argIdx))
		args = append(args, *req.Title)
		argIdx++
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}
	if req.ClearAssignee {
		setParts = append(setParts, "assigned_to = NULL", "assigned_at = NULL")
	} else if req.AssignedTo != nil {
		setParts = append(setParts, fmt.Sprintf("assigned_to = $%d", argIdx), "assigned_at = NOW()")
		args = append(args, *req.AssignedTo)
		argIdx++
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if req.DueDate != nil {
		setParts = append(setParts, fmt.Sprintf("due_date = $%d", argIdx))
		args = append(args, *req.DueDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE tasks
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.ErrTaskNotFound
		}
		if strings.Contains(err.Error(), "fk_tasks_assigned_to") {
			return task.ErrAssigneeNotFound
		}
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM tasks WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
