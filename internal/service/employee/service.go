package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/employee"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/team"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
	teamRepo     team.TeamRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	teamRepo team.TeamRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		teamRepo:     teamRepo,
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

// GetEmployee is a manager-or-admin view, with managers limited to their
// own reports. Regular accounts read their profile via /profile instead.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	switch role {
	case user.RoleAdmin:
	case user.RoleManager:
		if e.ManagerID == nil || *e.ManagerID != userID {
			return employee.EmployeeResponse{}, employee.ErrAccessDenied
		}
	default:
		return employee.EmployeeResponse{}, employee.ErrAccessDenied
	}

	return employee.ToResponse(e), nil
}

// ListEmployees narrows the filter before it reaches the repository: a
// manager's listing is always constrained to their own reports, whatever
// the request asked for.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	if role == user.RoleManager {
		filter.ManagerID = &userID
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	return employee.ListEmployeeResponse{
		Results:    employee.ToResponses(employees),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.UserID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.UserID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(ctx, *req.TeamID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	joining, _ := time.Parse("2006-01-02", req.DateOfJoining)

	status := employee.StatusActive
	if req.Status != nil {
		status = employee.Status(*req.Status)
	}
	baseSalary := decimal.Zero
	if req.BaseSalary != nil {
		baseSalary = *req.BaseSalary
	}

	e, err := s.employeeRepo.Create(ctx, employee.Employee{
		UserID:        req.UserID,
		EmployeeCode:  req.EmployeeCode,
		Phone:         req.Phone,
		Address:       req.Address,
		DateOfJoining: joining,
		Status:        status,
		TeamID:        req.TeamID,
		Position:      req.Position,
		BaseSalary:    baseSalary,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployee(ctx, e.ID)
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.TeamID != nil && !req.ClearTeam {
		if _, err := s.teamRepo.GetByID(ctx, *req.TeamID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployee(ctx, req.ID)
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}
