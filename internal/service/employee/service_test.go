package employee

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/employee"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/database"
	"github.com/workforge-hr/workforge-backend-go/internal/repository/postgresql"
)

var testEmployeeDB *database.DB

func employeeTestInit(t *testing.T) {
	if testEmployeeDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testEmployeeDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
}

func truncateEmployeeTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"employees", "users", "teams"} {
		_, err := testEmployeeDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

func employeeClaimsContext(t *testing.T, ctx context.Context, userID string, role user.Role) context.Context {
	ja := jwtauth.New("HS256", []byte("employee-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(ctx, token, nil)
}

var employeeSeq int64

func createEmployeeTestUser(t *testing.T, ctx context.Context, role user.Role, managerID *string) user.User {
	repo := postgresql.NewUserRepository(testEmployeeDB)

	n := atomic.AddInt64(&employeeSeq, 1)
	created, err := repo.Create(ctx, user.User{
		Username:     fmt.Sprintf("emp-user-%d", n),
		Email:        fmt.Sprintf("emp-user-%d@example.com", n),
		PasswordHash: "x",
		Role:         role,
		ManagerID:    managerID,
		IsActive:     true,
	})
	require.NoError(t, err)
	return created
}

func createLinkedTestEmployee(t *testing.T, ctx context.Context, userID string) employee.Employee {
	repo := postgresql.NewEmployeeRepository(testEmployeeDB)

	code := fmt.Sprintf("EMP-%06d", atomic.AddInt64(&employeeSeq, 1))
	created, err := repo.Create(ctx, employee.Employee{
		UserID:        &userID,
		EmployeeCode:  code,
		DateOfJoining: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:        employee.StatusActive,
		BaseSalary:    decimal.RequireFromString("30000"),
	})
	require.NoError(t, err)
	return created
}

func newTestEmployeeService() employee.EmployeeService {
	return NewEmployeeService(
		postgresql.NewEmployeeRepository(testEmployeeDB),
		postgresql.NewUserRepository(testEmployeeDB),
		postgresql.NewTeamRepository(testEmployeeDB),
	)
}

func TestEmployeeService_GetEmployee_ScopedByRole(t *testing.T) {
	ctx := context.Background()
	employeeTestInit(t)
	truncateEmployeeTables(t, ctx)

	admin := createEmployeeTestUser(t, ctx, user.RoleAdmin, nil)
	manager := createEmployeeTestUser(t, ctx, user.RoleManager, nil)
	otherManager := createEmployeeTestUser(t, ctx, user.RoleManager, nil)
	report := createEmployeeTestUser(t, ctx, user.RoleUser, &manager.ID)

	emp := createLinkedTestEmployee(t, ctx, report.ID)

	svc := newTestEmployeeService()

	resp, err := svc.GetEmployee(employeeClaimsContext(t, ctx, admin.ID, user.RoleAdmin), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, resp.ID)

	_, err = svc.GetEmployee(employeeClaimsContext(t, ctx, manager.ID, user.RoleManager), emp.ID)
	require.NoError(t, err)

	_, err = svc.GetEmployee(employeeClaimsContext(t, ctx, otherManager.ID, user.RoleManager), emp.ID)
	assert.ErrorIs(t, err, employee.ErrAccessDenied)

	_, err = svc.GetEmployee(employeeClaimsContext(t, ctx, report.ID, user.RoleUser), emp.ID)
	assert.ErrorIs(t, err, employee.ErrAccessDenied)
}
