package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/attendance"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/dashboard"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/employee"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/task"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
)

// recentLimit bounds the recent-employees and recent-tasks lists.
const recentLimit = 5

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	taskRepo       task.TaskRepository
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	taskRepo task.TaskRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		taskRepo:       taskRepo,
	}
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

// GetStats composes the dashboard from the employee, attendance and task
// repositories, scoped to the caller's role: admins see org-wide numbers,
// managers see their reports, regular users see their own slice.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	var managerScope *string
	taskFilter := task.TaskFilter{}
	switch role {
	case user.RoleManager:
		managerScope = &userID
		taskFilter.CreatedByOrTeamOf = &userID
	case user.RoleUser:
		taskFilter.AssignedToOnly = &userID
	}

	if role == user.RoleUser {
		return s.userStats(ctx, userID, taskFilter)
	}

	today := time.Now().Truncate(24 * time.Hour)

	totalEmployees, err := s.employeeRepo.CountActive(ctx, managerScope)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	presentToday, err := s.attendanceRepo.CountByStatusOnDate(ctx, today, attendance.StatusPresent, managerScope)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	onLeave, err := s.attendanceRepo.CountByStatusOnDate(ctx, today, attendance.StatusLeave, managerScope)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	pendingTasks, err := s.taskRepo.CountPending(ctx, taskFilter)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	recentEmployees, err := s.employeeRepo.ListRecent(ctx, managerScope, recentLimit)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	recentTasks, err := s.taskRepo.ListRecent(ctx, taskFilter, recentLimit)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	return dashboard.StatsResponse{
		TotalEmployees:  totalEmployees,
		PresentToday:    presentToday,
		OnLeave:         onLeave,
		PendingTasks:    pendingTasks,
		RecentEmployees: employee.ToResponses(recentEmployees),
		RecentTasks:     task.ToResponses(recentTasks, time.Now()),
	}, nil
}

// userStats is the regular-user slice: own pending tasks and recent tasks,
// no org-wide counters.
func (s *DashboardServiceImpl) userStats(ctx context.Context, userID string, taskFilter task.TaskFilter) (dashboard.StatsResponse, error) {
	pendingTasks, err := s.taskRepo.CountPending(ctx, taskFilter)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	recentTasks, err := s.taskRepo.ListRecent(ctx, taskFilter, recentLimit)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	resp := dashboard.StatsResponse{
		PendingTasks:    pendingTasks,
		RecentEmployees: []employee.EmployeeResponse{},
		RecentTasks:     task.ToResponses(recentTasks, time.Now()),
	}

	// A user with a linked profile still sees whether they are marked
	// present today.
	own, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return resp, nil
		}
		return dashboard.StatsResponse{}, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	records, err := s.attendanceRepo.List(ctx, attendance.AttendanceFilter{
		EmployeeID: &own.ID,
		StartDate:  strPtr(today.Format("2006-01-02")),
		EndDate:    strPtr(today.Format("2006-01-02")),
	})
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent, attendance.StatusHalfDay:
			resp.PresentToday = 1
		case attendance.StatusLeave:
			resp.OnLeave = 1
		}
	}

	return resp, nil
}

func strPtr(s string) *string {
	return &s
}
