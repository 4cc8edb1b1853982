package attendance

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

	"github.com/workforge-hr/workforge-backend-go/internal/domain/attendance"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/employee"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/database"
	"github.com/workforge-hr/workforge-backend-go/internal/repository/postgresql"
)

var testAttendanceDB *database.DB

func attendanceTestInit(t *testing.T) {
	if testAttendanceDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testAttendanceDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
}

func truncateAttendanceTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"attendance", "employees", "users"} {
		_, err := testAttendanceDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

func attendanceClaimsContext(t *testing.T, ctx context.Context, userID string, role user.Role) context.Context {
	ja := jwtauth.New("HS256", []byte("attendance-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(ctx, token, nil)
}

var attendanceSeq int64

func createAttendanceTestUser(t *testing.T, ctx context.Context, role user.Role, managerID *string) user.User {
	repo := postgresql.NewUserRepository(testAttendanceDB)

	n := atomic.AddInt64(&attendanceSeq, 1)
	created, err := repo.Create(ctx, user.User{
		Username:     fmt.Sprintf("att-user-%d", n),
		Email:        fmt.Sprintf("att-user-%d@example.com", n),
		PasswordHash: "x",
		Role:         role,
		ManagerID:    managerID,
		IsActive:     true,
	})
	require.NoError(t, err)
	return created
}

func createAttendanceTestEmployee(t *testing.T, ctx context.Context, userID string) employee.Employee {
	repo := postgresql.NewEmployeeRepository(testAttendanceDB)

	code := fmt.Sprintf("EMP-%06d", atomic.AddInt64(&attendanceSeq, 1))
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

func createTestAttendanceRecord(t *testing.T, ctx context.Context, employeeID string, day int) attendance.Attendance {
	repo := postgresql.NewAttendanceRepository(testAttendanceDB)

	created, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	return created
}

func newTestAttendanceService() attendance.AttendanceService {
	return NewAttendanceService(
		postgresql.NewAttendanceRepository(testAttendanceDB),
		postgresql.NewEmployeeRepository(testAttendanceDB),
	)
}

func TestAttendanceService_GetRecord_UserLimitedToOwn(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	manager := createAttendanceTestUser(t, ctx, user.RoleManager, nil)
	report := createAttendanceTestUser(t, ctx, user.RoleUser, &manager.ID)
	nosy := createAttendanceTestUser(t, ctx, user.RoleUser, nil)

	emp := createAttendanceTestEmployee(t, ctx, report.ID)
	record := createTestAttendanceRecord(t, ctx, emp.ID, 2)

	svc := newTestAttendanceService()

	resp, err := svc.GetRecord(attendanceClaimsContext(t, ctx, report.ID, user.RoleUser), record.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, resp.EmployeeID)

	_, err = svc.GetRecord(attendanceClaimsContext(t, ctx, nosy.ID, user.RoleUser), record.ID)
	assert.ErrorIs(t, err, attendance.ErrRecordAccessDenied)
}

func TestAttendanceService_UpdateRecord_ManagerLimitedToReports(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	manager := createAttendanceTestUser(t, ctx, user.RoleManager, nil)
	other := createAttendanceTestUser(t, ctx, user.RoleManager, nil)
	report := createAttendanceTestUser(t, ctx, user.RoleUser, &manager.ID)

	emp := createAttendanceTestEmployee(t, ctx, report.ID)
	record := createTestAttendanceRecord(t, ctx, emp.ID, 2)

	svc := newTestAttendanceService()

	status := string(attendance.StatusAbsent)
	_, err := svc.UpdateRecord(attendanceClaimsContext(t, ctx, other.ID, user.RoleManager), attendance.UpdateAttendanceRequest{
		ID:     record.ID,
		Status: &status,
	})
	assert.ErrorIs(t, err, attendance.ErrRecordAccessDenied)

	resp, err := svc.UpdateRecord(attendanceClaimsContext(t, ctx, manager.ID, user.RoleManager), attendance.UpdateAttendanceRequest{
		ID:     record.ID,
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusAbsent), resp.Status)
}

func TestAttendanceService_DeleteRecord_ManagerLimitedToReports(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	manager := createAttendanceTestUser(t, ctx, user.RoleManager, nil)
	other := createAttendanceTestUser(t, ctx, user.RoleManager, nil)
	report := createAttendanceTestUser(t, ctx, user.RoleUser, &manager.ID)

	emp := createAttendanceTestEmployee(t, ctx, report.ID)
	record := createTestAttendanceRecord(t, ctx, emp.ID, 2)

	svc := newTestAttendanceService()

	err := svc.DeleteRecord(attendanceClaimsContext(t, ctx, other.ID, user.RoleManager), record.ID)
	assert.ErrorIs(t, err, attendance.ErrRecordAccessDenied)

	err = svc.DeleteRecord(attendanceClaimsContext(t, ctx, manager.ID, user.RoleManager), record.ID)
	require.NoError(t, err)
}

func TestAttendanceService_MarkAttendance_ManagerLimitedToReports(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	manager := createAttendanceTestUser(t, ctx, user.RoleManager, nil)
	other := createAttendanceTestUser(t, ctx, user.RoleManager, nil)
	report := createAttendanceTestUser(t, ctx, user.RoleUser, &manager.ID)

	emp := createAttendanceTestEmployee(t, ctx, report.ID)

	svc := newTestAttendanceService()

	_, err := svc.MarkAttendance(attendanceClaimsContext(t, ctx, other.ID, user.RoleManager), attendance.MarkAttendanceRequest{
		EmployeeID: emp.ID,
		Date:       "2025-06-02",
		Status:     string(attendance.StatusPresent),
	})
	assert.ErrorIs(t, err, attendance.ErrRecordAccessDenied)

	resp, err := svc.MarkAttendance(attendanceClaimsContext(t, ctx, manager.ID, user.RoleManager), attendance.MarkAttendanceRequest{
		EmployeeID: emp.ID,
		Date:       "2025-06-02",
		Status:     string(attendance.StatusPresent),
	})
	require.NoError(t, err)
	assert.Equal(t, emp.ID, resp.EmployeeID)
}
