package response

import (
	"errors"
	"net/http"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/attendance"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/auth"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/employee"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/payroll"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/settings"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/task"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/team"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrManagerNotFound):
		BadRequest(w, "Manager not found", nil)
	case errors.Is(err, user.ErrManagerRoleRequired):
		BadRequest(w, "Assigned manager must have the manager role", nil)
	case errors.Is(err, user.ErrLastActiveAdmin):
		Conflict(w, "Cannot remove the last active administrator")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrator privileges required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager or administrator access required")
	case errors.Is(err, user.ErrSelfRegistrationOff):
		Forbidden(w, "Self registration is disabled")

	// Team domain errors
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrTeamNameExists):
		Conflict(w, "Team name already exists")
	case errors.Is(err, team.ErrTeamHasEmployees):
		Conflict(w, "Team still has employees assigned")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrUserAlreadyLinked):
		Conflict(w, "User already has an employee profile")
	case errors.Is(err, employee.ErrAccessDenied):
		Forbidden(w, "Not allowed to view this employee")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateDate):
		Conflict(w, "Attendance already marked for this employee and date")
	case errors.Is(err, attendance.ErrRecordAccessDenied):
		Forbidden(w, "Not allowed to access this attendance record")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, payroll.ErrRecordAccessDenied):
		Forbidden(w, "Not allowed to view this payroll record")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrAssigneeNotFound):
		BadRequest(w, "Assignee not found", nil)
	case errors.Is(err, task.ErrTaskAccessDenied):
		Forbidden(w, "Not allowed to access this task")
	case errors.Is(err, task.ErrStatusOnlyUpdate):
		Forbidden(w, "Only the task status can be changed")

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
