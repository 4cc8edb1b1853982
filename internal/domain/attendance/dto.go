package attendance

import (
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	MarkedBy     *string `json:"marked_by,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		EmployeeCode: a.EmployeeCode,
		Date:         a.Date.Format("2006-01-02"),
		Status:       string(a.Status),
		CheckIn:      a.CheckIn,
		CheckOut:     a.CheckOut,
		Notes:        a.Notes,
		MarkedBy:     a.MarkedBy,
	}
}

func ToResponses(records []Attendance) []AttendanceResponse {
	result := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		result = append(result, ToResponse(a))
	}
	return result
}

type MarkAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !IsValidStatus(Status(r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'present', 'absent', 'half_day' or 'leave'"})
	}
	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID       string
	Status   *string `json:"status,omitempty"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !IsValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'present', 'absent', 'half_day' or 'leave'"})
	}
	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceFilter narrows attendance list queries.
type AttendanceFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Month      *int
	Year       *int
	ManagerID  *string // scope to employees reporting to this manager
}
