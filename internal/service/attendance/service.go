package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/attendance"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/employee"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
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

// GetRecord scopes detail reads per role: admins read anything, managers
// only their reports' records, regular users only their own.
func (s *AttendanceServiceImpl) GetRecord(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	a, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.authorizeRecordAccess(ctx, a.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(a), nil
}

func (s *AttendanceServiceImpl) authorizeRecordAccess(ctx context.Context, employeeID string) error {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	switch role {
	case user.RoleAdmin:
		return nil
	case user.RoleManager:
		e, err := s.employeeRepo.GetByID(ctx, employeeID)
		if err != nil {
			return err
		}
		if e.ManagerID == nil || *e.ManagerID != userID {
			return attendance.ErrRecordAccessDenied
		}
		return nil
	default:
		own, err := s.employeeRepo.GetByUserID(ctx, userID)
		if err != nil || own.ID != employeeID {
			return attendance.ErrRecordAccessDenied
		}
		return nil
	}
}

// ListRecords scopes manager queries to their own reports and regular
// users to their own record.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	switch role {
	case user.RoleManager:
		filter.ManagerID = &userID
	case user.RoleUser:
		own, err := s.employeeRepo.GetByUserID(ctx, userID)
		if err != nil {
			return []attendance.AttendanceResponse{}, nil
		}
		filter.EmployeeID = &own.ID
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return attendance.ToResponses(records), nil
}

func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, attendance.ErrEmployeeNotFound
	}

	// Managers mark attendance for their own reports only.
	if err := s.authorizeRecordAccess(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	a, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Notes:      req.Notes,
		MarkedBy:   &userID,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.GetRecord(ctx, a.ID)
}

func (s *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.authorizeRecordAccess(ctx, existing.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.attendanceRepo.Update(ctx, req); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.GetRecord(ctx, req.ID)
}

func (s *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	existing, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorizeRecordAccess(ctx, existing.EmployeeID); err != nil {
		return err
	}

	return s.attendanceRepo.Delete(ctx, id)
}
