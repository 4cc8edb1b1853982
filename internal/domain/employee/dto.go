package employee

import (
	"github.com/shopspring/decimal"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID            string          `json:"id"`
	UserID        *string         `json:"user_id,omitempty"`
	EmployeeCode  string          `json:"employee_id"`
	FullName      *string         `json:"full_name,omitempty"`
	Email         *string         `json:"email,omitempty"`
	Phone         *string         `json:"phone,omitempty"`
	Address       *string         `json:"address,omitempty"`
	DateOfJoining string          `json:"date_of_joining"`
	Status        string          `json:"status"`
	TeamID        *string         `json:"team_id,omitempty"`
	TeamName      *string         `json:"team_name,omitempty"`
	Position      *string         `json:"position,omitempty"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		EmployeeCode:  e.EmployeeCode,
		FullName:      e.FullName,
		Email:         e.Email,
		Phone:         e.Phone,
		Address:       e.Address,
		DateOfJoining: e.DateOfJoining.Format("2006-01-02"),
		Status:        string(e.Status),
		TeamID:        e.TeamID,
		TeamName:      e.TeamName,
		Position:      e.Position,
		BaseSalary:    e.BaseSalary,
	}
}

func ToResponses(employees []Employee) []EmployeeResponse {
	result := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, ToResponse(e))
	}
	return result
}

type ListEmployeeResponse struct {
	Results    []EmployeeResponse `json:"results"`
	TotalCount int64              `json:"count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

type CreateEmployeeRequest struct {
	UserID        *string          `json:"user_id,omitempty"`
	EmployeeCode  string           `json:"employee_id"`
	Phone         *string          `json:"phone,omitempty"`
	Address       *string          `json:"address,omitempty"`
	DateOfJoining string           `json:"date_of_joining"`
	Status        *string          `json:"status,omitempty"`
	TeamID        *string          `json:"team_id,omitempty"`
	Position      *string          `json:"position,omitempty"`
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must match the PREFIX-NUMBER format, e.g. EMP-0042"})
	}
	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Status != nil && !IsValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active', 'on_leave' or 'inactive'"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string
	Phone         *string          `json:"phone,omitempty"`
	Address       *string          `json:"address,omitempty"`
	DateOfJoining *string          `json:"date_of_joining,omitempty"`
	Status        *string          `json:"status,omitempty"`
	TeamID        *string          `json:"team_id,omitempty"`
	Position      *string          `json:"position,omitempty"`
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`

	// ClearTeam removes the team assignment when true.
	ClearTeam bool `json:"clear_team,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DateOfJoining != nil {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.Status != nil && !IsValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active', 'on_leave' or 'inactive'"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeFilter narrows employee list queries.
type EmployeeFilter struct {
	Search    *string
	Status    *string
	TeamID    *string
	ManagerID *string // scope to employees whose user reports to this manager
	Page      int
	Limit     int
}
