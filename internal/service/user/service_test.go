package user

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/database"
	"github.com/workforge-hr/workforge-backend-go/internal/repository/postgresql"
)

var testUserDB *database.DB

func userTestInit(t *testing.T) {
	if testUserDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testUserDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
}

func truncateUserTables(t *testing.T, ctx context.Context) {
	_, err := testUserDB.Exec(ctx, "TRUNCATE TABLE users CASCADE")
	if err != nil {
		t.Logf("truncate users: %v", err)
	}
}

var userSeq int64

func createServiceTestUser(t *testing.T, ctx context.Context, role user.Role) user.User {
	repo := postgresql.NewUserRepository(testUserDB)

	n := atomic.AddInt64(&userSeq, 1)
	created, err := repo.Create(ctx, user.User{
		Username:     fmt.Sprintf("svc-user-%d", n),
		Email:        fmt.Sprintf("svc-user-%d@example.com", n),
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	})
	require.NoError(t, err)
	return created
}

func newTestUserService() user.UserService {
	return NewUserService(testUserDB, postgresql.NewUserRepository(testUserDB))
}

func TestUserService_CreateUser_RejectsAdminAsManager(t *testing.T) {
	ctx := context.Background()
	userTestInit(t)
	truncateUserTables(t, ctx)

	admin := createServiceTestUser(t, ctx, user.RoleAdmin)

	svc := newTestUserService()

	_, err := svc.CreateUser(ctx, user.CreateUserRequest{
		Username:  "newhire",
		Email:     "newhire@example.com",
		Password:  "secret123",
		Role:      string(user.RoleUser),
		ManagerID: &admin.ID,
	})
	assert.ErrorIs(t, err, user.ErrManagerRoleRequired)
}

func TestUserService_CreateUser_AcceptsManagerRoleManager(t *testing.T) {
	ctx := context.Background()
	userTestInit(t)
	truncateUserTables(t, ctx)

	manager := createServiceTestUser(t, ctx, user.RoleManager)

	svc := newTestUserService()

	resp, err := svc.CreateUser(ctx, user.CreateUserRequest{
		Username:  "newhire",
		Email:     "newhire@example.com",
		Password:  "secret123",
		Role:      string(user.RoleUser),
		ManagerID: &manager.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ManagerID)
	assert.Equal(t, manager.ID, *resp.ManagerID)
}
