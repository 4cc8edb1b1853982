package task

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/task"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/database"
	"github.com/workforge-hr/workforge-backend-go/internal/repository/postgresql"
)

var testTaskDB *database.DB

func taskTestInit(t *testing.T) {
	if testTaskDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testTaskDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
}

func truncateTaskTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"tasks", "users"} {
		_, err := testTaskDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

// taskClaimsContext builds a context carrying the claims the auth
// middleware leaves behind after verifying a token.
func taskClaimsContext(t *testing.T, ctx context.Context, userID string, role user.Role) context.Context {
	ja := jwtauth.New("HS256", []byte("task-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(ctx, token, nil)
}

var taskUserSeq int64

func createTaskTestUser(t *testing.T, ctx context.Context, role user.Role, managerID *string) user.User {
	repo := postgresql.NewUserRepository(testTaskDB)

	n := atomic.AddInt64(&taskUserSeq, 1)
	created, err := repo.Create(ctx, user.User{
		Username:     fmt.Sprintf("task-user-%d", n),
		Email:        fmt.Sprintf("task-user-%d@example.com", n),
		PasswordHash: "x",
		Role:         role,
		ManagerID:    managerID,
		IsActive:     true,
	})
	require.NoError(t, err)
	return created
}

func createTestTask(t *testing.T, ctx context.Context, createdBy string, assignedTo *string) task.Task {
	repo := postgresql.NewTaskRepository(testTaskDB)

	created, err := repo.Create(ctx, task.Task{
		Title:      "Quarterly report",
		CreatedBy:  createdBy,
		AssignedTo: assignedTo,
		Status:     task.StatusTodo,
	})
	require.NoError(t, err)
	return created
}

func newTestTaskService() task.TaskService {
	return NewTaskService(
		postgresql.NewTaskRepository(testTaskDB),
		postgresql.NewUserRepository(testTaskDB),
	)
}

func TestTaskService_UpdateTask_UserCannotRewriteForeignTask(t *testing.T) {
	ctx := context.Background()
	taskTestInit(t)
	truncateTaskTables(t, ctx)

	manager := createTaskTestUser(t, ctx, user.RoleManager, nil)
	assignee := createTaskTestUser(t, ctx, user.RoleUser, &manager.ID)
	intruder := createTaskTestUser(t, ctx, user.RoleUser, nil)

	created := createTestTask(t, ctx, manager.ID, &assignee.ID)

	svc := newTestTaskService()

	title := "hijacked"
	_, err := svc.UpdateTask(taskClaimsContext(t, ctx, intruder.ID, user.RoleUser), task.UpdateTaskRequest{
		ID:         created.ID,
		Title:      &title,
		AssignedTo: &intruder.ID,
	})
	assert.ErrorIs(t, err, task.ErrTaskAccessDenied)

	stored, err := postgresql.NewTaskRepository(testTaskDB).GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Quarterly report", stored.Title)
	require.NotNil(t, stored.AssignedTo)
	assert.Equal(t, assignee.ID, *stored.AssignedTo)
}

func TestTaskService_UpdateTask_UserLimitedToStatus(t *testing.T) {
	ctx := context.Background()
	taskTestInit(t)
	truncateTaskTables(t, ctx)

	manager := createTaskTestUser(t, ctx, user.RoleManager, nil)
	assignee := createTaskTestUser(t, ctx, user.RoleUser, &manager.ID)
	created := createTestTask(t, ctx, manager.ID, &assignee.ID)

	svc := newTestTaskService()
	ownCtx := taskClaimsContext(t, ctx, assignee.ID, user.RoleUser)

	title := "renamed"
	_, err := svc.UpdateTask(ownCtx, task.UpdateTaskRequest{ID: created.ID, Title: &title})
	assert.ErrorIs(t, err, task.ErrStatusOnlyUpdate)

	status := string(task.StatusCompleted)
	resp, err := svc.UpdateTask(ownCtx, task.UpdateTaskRequest{ID: created.ID, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, string(task.StatusCompleted), resp.Status)
}

func TestTaskService_UpdateTask_ManagerScopedToOwnTeam(t *testing.T) {
	ctx := context.Background()
	taskTestInit(t)
	truncateTaskTables(t, ctx)

	owner := createTaskTestUser(t, ctx, user.RoleManager, nil)
	other := createTaskTestUser(t, ctx, user.RoleManager, nil)
	assignee := createTaskTestUser(t, ctx, user.RoleUser, &owner.ID)
	created := createTestTask(t, ctx, owner.ID, &assignee.ID)

	svc := newTestTaskService()

	title := "renamed"
	_, err := svc.UpdateTask(taskClaimsContext(t, ctx, other.ID, user.RoleManager), task.UpdateTaskRequest{
		ID:    created.ID,
		Title: &title,
	})
	assert.ErrorIs(t, err, task.ErrTaskAccessDenied)

	resp, err := svc.UpdateTask(taskClaimsContext(t, ctx, owner.ID, user.RoleManager), task.UpdateTaskRequest{
		ID:    created.ID,
		Title: &title,
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", resp.Title)
}

func TestTaskService_DeleteTask_ManagerOutsideTeamDenied(t *testing.T) {
	ctx := context.Background()
	taskTestInit(t)
	truncateTaskTables(t, ctx)

	owner := createTaskTestUser(t, ctx, user.RoleManager, nil)
	other := createTaskTestUser(t, ctx, user.RoleManager, nil)
	assignee := createTaskTestUser(t, ctx, user.RoleUser, &owner.ID)
	created := createTestTask(t, ctx, owner.ID, &assignee.ID)

	svc := newTestTaskService()

	err := svc.DeleteTask(taskClaimsContext(t, ctx, other.ID, user.RoleManager), created.ID)
	assert.ErrorIs(t, err, task.ErrTaskAccessDenied)

	err = svc.DeleteTask(taskClaimsContext(t, ctx, owner.ID, user.RoleManager), created.ID)
	require.NoError(t, err)
}

func TestTaskService_GetTask_UserCannotReadForeignTask(t *testing.T) {
	ctx := context.Background()
	taskTestInit(t)
	truncateTaskTables(t, ctx)

	manager := createTaskTestUser(t, ctx, user.RoleManager, nil)
	assignee := createTaskTestUser(t, ctx, user.RoleUser, &manager.ID)
	nosy := createTaskTestUser(t, ctx, user.RoleUser, nil)
	created := createTestTask(t, ctx, manager.ID, &assignee.ID)

	svc := newTestTaskService()

	_, err := svc.GetTask(taskClaimsContext(t, ctx, nosy.ID, user.RoleUser), created.ID)
	assert.ErrorIs(t, err, task.ErrTaskAccessDenied)

	resp, err := svc.GetTask(taskClaimsContext(t, ctx, assignee.ID, user.RoleUser), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
}
