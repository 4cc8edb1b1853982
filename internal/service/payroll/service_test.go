package payroll

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
	"github.com/workforge-hr/workforge-backend-go/internal/domain/payroll"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/database"
	"github.com/workforge-hr/workforge-backend-go/internal/repository/postgresql"
)

var testPayrollDB *database.DB

func payrollTestInit(t *testing.T) {
	if testPayrollDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testPayrollDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
}

func truncatePayrollTables(t *testing.T, ctx context.Context) {
	tables := []string{"payroll", "attendance", "tasks", "employees", "users"}

	for _, table := range tables {
		_, err := testPayrollDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

// adminContext returns a context carrying admin claims the way the auth
// middleware leaves them after token verification.
func adminContext(t *testing.T, ctx context.Context) context.Context {
	ja := jwtauth.New("HS256", []byte("payroll-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": "00000000-0000-7000-8000-000000000001",
		"role":    "admin",
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(ctx, token, nil)
}

func createPayrollTestEmployee(t *testing.T, ctx context.Context, baseSalary string) employee.Employee {
	repo := postgresql.NewEmployeeRepository(testPayrollDB)

	code := fmt.Sprintf("EMP-%06d", time.Now().Nanosecond()%1000000)
	created, err := repo.Create(ctx, employee.Employee{
		EmployeeCode:  code,
		DateOfJoining: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:        employee.StatusActive,
		BaseSalary:    decimal.RequireFromString(baseSalary),
	})
	require.NoError(t, err)
	return created
}

func markPayrollTestAttendance(t *testing.T, ctx context.Context, employeeID string, day int, status attendance.Status) {
	repo := postgresql.NewAttendanceRepository(testPayrollDB)

	_, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		Status:     status,
	})
	require.NoError(t, err)
}

func newTestPayrollService() payroll.PayrollService {
	return NewPayrollService(
		postgresql.NewPayrollRepository(testPayrollDB),
		postgresql.NewEmployeeRepository(testPayrollDB),
		postgresql.NewAttendanceRepository(testPayrollDB),
	)
}

func TestPayrollService_BulkReconcile_CreatesFromAttendance(t *testing.T) {
	ctx := context.Background()
	payrollTestInit(t)
	truncatePayrollTables(t, ctx)

	emp := createPayrollTestEmployee(t, ctx, "30000")
	markPayrollTestAttendance(t, ctx, emp.ID, 2, attendance.StatusPresent)
	markPayrollTestAttendance(t, ctx, emp.ID, 3, attendance.StatusPresent)
	markPayrollTestAttendance(t, ctx, emp.ID, 4, attendance.StatusHalfDay)
	markPayrollTestAttendance(t, ctx, emp.ID, 5, attendance.StatusLeave)

	svc := newTestPayrollService()

	resp, err := svc.BulkReconcile(adminContext(t, ctx), payroll.BulkReconcileRequest{
		Month: 6,
		Year:  2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Created)
	assert.Equal(t, 0, resp.Updated)
	assert.Equal(t, 0, resp.Failed)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, emp.ID, resp.Results[0].EmployeeID)
	assert.Nil(t, resp.Results[0].Error)

	payrollRepo := postgresql.NewPayrollRepository(testPayrollDB)
	record, err := payrollRepo.GetByEmployeePeriod(ctx, emp.ID, 6, 2025)
	require.NoError(t, err)

	// 2 present + 0.5 half day = 2.5 days worked, 30000/30 * 2.5 = 2500
	assert.True(t, record.DaysWorked.Equal(decimal.RequireFromString("2.5")),
		"days worked = %s", record.DaysWorked)
	assert.Equal(t, 2, record.DaysPresent)
	assert.Equal(t, 1, record.DaysOnLeave)
	assert.True(t, record.FinalPay.Equal(decimal.RequireFromString("2500")),
		"final pay = %s", record.FinalPay)
	assert.Equal(t, payroll.StatusDraft, record.Status)
}

func TestPayrollService_BulkReconcile_UpdatesExistingRecord(t *testing.T) {
	ctx := context.Background()
	payrollTestInit(t)
	truncatePayrollTables(t, ctx)

	emp := createPayrollTestEmployee(t, ctx, "30000")
	markPayrollTestAttendance(t, ctx, emp.ID, 2, attendance.StatusPresent)

	svc := newTestPayrollService()
	adminCtx := adminContext(t, ctx)

	first, err := svc.BulkReconcile(adminCtx, payroll.BulkReconcileRequest{Month: 6, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)

	// Another day marked after the first run should flow into an update.
	markPayrollTestAttendance(t, ctx, emp.ID, 3, attendance.StatusPresent)

	second, err := svc.BulkReconcile(adminCtx, payroll.BulkReconcileRequest{Month: 6, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 1, second.Updated)

	payrollRepo := postgresql.NewPayrollRepository(testPayrollDB)
	record, err := payrollRepo.GetByEmployeePeriod(ctx, emp.ID, 6, 2025)
	require.NoError(t, err)
	assert.Equal(t, 2, record.DaysPresent)
	assert.True(t, record.FinalPay.Equal(decimal.RequireFromString("2000")),
		"final pay = %s", record.FinalPay)
}

func TestPayrollService_BulkReconcile_AppliesOverrides(t *testing.T) {
	ctx := context.Background()
	payrollTestInit(t)
	truncatePayrollTables(t, ctx)

	emp := createPayrollTestEmployee(t, ctx, "30000")
	markPayrollTestAttendance(t, ctx, emp.ID, 2, attendance.StatusPresent)

	svc := newTestPayrollService()

	bonus := decimal.RequireFromString("500")
	resp, err := svc.BulkReconcile(adminContext(t, ctx), payroll.BulkReconcileRequest{
		Month: 6,
		Year:  2025,
		Entries: []payroll.BulkEntryRequest{
			{EmployeeID: emp.ID, Bonuses: &bonus},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Created)

	payrollRepo := postgresql.NewPayrollRepository(testPayrollDB)
	record, err := payrollRepo.GetByEmployeePeriod(ctx, emp.ID, 6, 2025)
	require.NoError(t, err)
	assert.True(t, record.Bonuses.Equal(bonus))
	assert.True(t, record.FinalPay.Equal(decimal.RequireFromString("1500")),
		"final pay = %s", record.FinalPay)
}

func TestPayrollService_BulkReconcile_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	payrollTestInit(t)
	truncatePayrollTables(t, ctx)

	ja := jwtauth.New("HS256", []byte("payroll-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": "00000000-0000-7000-8000-000000000002",
		"role":    "manager",
		"type":    "access",
	})
	require.NoError(t, err)
	managerCtx := jwtauth.NewContext(ctx, token, nil)

	svc := newTestPayrollService()

	_, err = svc.BulkReconcile(managerCtx, payroll.BulkReconcileRequest{Month: 6, Year: 2025})
	assert.Error(t, err)
}

func payrollClaimsContext(t *testing.T, ctx context.Context, userID string, role string) context.Context {
	ja := jwtauth.New("HS256", []byte("payroll-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    role,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(ctx, token, nil)
}

func createPayrollTestUser(t *testing.T, ctx context.Context, role user.Role, managerID *string) user.User {
	repo := postgresql.NewUserRepository(testPayrollDB)

	n := atomic.AddInt64(&payrollUserSeq, 1)
	created, err := repo.Create(ctx, user.User{
		Username:     fmt.Sprintf("payroll-user-%d", n),
		Email:        fmt.Sprintf("payroll-user-%d@example.com", n),
		PasswordHash: "x",
		Role:         role,
		ManagerID:    managerID,
		IsActive:     true,
	})
	require.NoError(t, err)
	return created
}

var payrollUserSeq int64

func createLinkedPayrollTestEmployee(t *testing.T, ctx context.Context, userID string) employee.Employee {
	repo := postgresql.NewEmployeeRepository(testPayrollDB)

	code := fmt.Sprintf("EMP-%06d", atomic.AddInt64(&payrollUserSeq, 1))
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

func TestPayrollService_GetRecord_ScopedByRole(t *testing.T) {
	ctx := context.Background()
	payrollTestInit(t)
	truncatePayrollTables(t, ctx)

	manager := createPayrollTestUser(t, ctx, user.RoleManager, nil)
	report := createPayrollTestUser(t, ctx, user.RoleUser, &manager.ID)
	outsider := createPayrollTestUser(t, ctx, user.RoleUser, nil)
	otherManager := createPayrollTestUser(t, ctx, user.RoleManager, nil)

	emp := createLinkedPayrollTestEmployee(t, ctx, report.ID)

	payrollRepo := postgresql.NewPayrollRepository(testPayrollDB)
	record, err := payrollRepo.Create(ctx, payroll.PayrollRecord{
		EmployeeID: emp.ID,
		Month:      6,
		Year:       2025,
		BaseSalary: decimal.RequireFromString("30000"),
		DaysWorked: decimal.RequireFromString("20"),
		FinalPay:   decimal.RequireFromString("20000"),
		Status:     payroll.StatusDraft,
	})
	require.NoError(t, err)

	svc := newTestPayrollService()

	// Admins read any record.
	_, err = svc.GetRecord(adminContext(t, ctx), record.ID)
	require.NoError(t, err)

	// The employee's manager reads it, another manager does not.
	_, err = svc.GetRecord(payrollClaimsContext(t, ctx, manager.ID, "manager"), record.ID)
	require.NoError(t, err)
	_, err = svc.GetRecord(payrollClaimsContext(t, ctx, otherManager.ID, "manager"), record.ID)
	assert.ErrorIs(t, err, payroll.ErrRecordAccessDenied)

	// The employee reads their own record, anyone else's account does not.
	resp, err := svc.GetRecord(payrollClaimsContext(t, ctx, report.ID, "user"), record.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, resp.EmployeeID)
	_, err = svc.GetRecord(payrollClaimsContext(t, ctx, outsider.ID, "user"), record.ID)
	assert.ErrorIs(t, err, payroll.ErrRecordAccessDenied)
}

func TestPayrollService_BulkReconcile_RejectsInvalidPeriod(t *testing.T) {
	ctx := context.Background()
	payrollTestInit(t)
	truncatePayrollTables(t, ctx)

	svc := newTestPayrollService()

	_, err := svc.BulkReconcile(adminContext(t, ctx), payroll.BulkReconcileRequest{Month: 13, Year: 2025})
	assert.Error(t, err)
}
