package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/validator"
)

type PayrollRecordResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	EmployeeCode *string         `json:"employee_code,omitempty"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	DaysWorked   decimal.Decimal `json:"days_worked"`
	DaysPresent  int             `json:"days_present"`
	DaysAbsent   int             `json:"days_absent"`
	DaysOnLeave  int             `json:"days_on_leave"`
	Deductions   decimal.Decimal `json:"deductions"`
	Bonuses      decimal.Decimal `json:"bonuses"`
	FinalPay     decimal.Decimal `json:"final_pay"`
	Status       string          `json:"status"`
}

func ToResponse(r PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		EmployeeCode: r.EmployeeCode,
		Month:        r.Month,
		Year:         r.Year,
		BaseSalary:   r.BaseSalary,
		DaysWorked:   r.DaysWorked,
		DaysPresent:  r.DaysPresent,
		DaysAbsent:   r.DaysAbsent,
		DaysOnLeave:  r.DaysOnLeave,
		Deductions:   r.Deductions,
		Bonuses:      r.Bonuses,
		FinalPay:     r.FinalPay,
		Status:       string(r.Status),
	}
}

func ToResponses(records []PayrollRecord) []PayrollRecordResponse {
	result := make([]PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}

type CreatePayrollRequest struct {
	EmployeeID  string           `json:"employee_id"`
	Month       int              `json:"month"`
	Year        int              `json:"year"`
	BaseSalary  decimal.Decimal  `json:"base_salary"`
	DaysWorked  decimal.Decimal  `json:"days_worked"`
	DaysPresent int              `json:"days_present"`
	DaysAbsent  int              `json:"days_absent"`
	DaysOnLeave int              `json:"days_on_leave"`
	Deductions  *decimal.Decimal `json:"deductions,omitempty"`
	Bonuses     *decimal.Decimal `json:"bonuses,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidPeriod(r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be 1-12 and year 2000 or later"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.DaysWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "days_worked", Message: "must be non-negative"})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "must be non-negative"})
	}
	if r.Bonuses != nil && r.Bonuses.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonuses", Message: "must be non-negative"})
	}
	if r.Status != nil && !IsValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'draft', 'processed' or 'paid'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayrollRequest struct {
	ID          string
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`
	DaysWorked  *decimal.Decimal `json:"days_worked,omitempty"`
	DaysPresent *int             `json:"days_present,omitempty"`
	DaysAbsent  *int             `json:"days_absent,omitempty"`
	DaysOnLeave *int             `json:"days_on_leave,omitempty"`
	Deductions  *decimal.Decimal `json:"deductions,omitempty"`
	Bonuses     *decimal.Decimal `json:"bonuses,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.DaysWorked != nil && r.DaysWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "days_worked", Message: "must be non-negative"})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "must be non-negative"})
	}
	if r.Bonuses != nil && r.Bonuses.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonuses", Message: "must be non-negative"})
	}
	if r.Status != nil && !IsValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'draft', 'processed' or 'paid'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkEntryRequest is one employee's operator overrides in a bulk run.
type BulkEntryRequest struct {
	EmployeeID  string           `json:"employee_id"`
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`
	DaysWorked  *decimal.Decimal `json:"days_worked,omitempty"`
	DaysPresent *int             `json:"days_present,omitempty"`
	DaysAbsent  *int             `json:"days_absent,omitempty"`
	DaysOnLeave *int             `json:"days_on_leave,omitempty"`
	Deductions  *decimal.Decimal `json:"deductions,omitempty"`
	Bonuses     *decimal.Decimal `json:"bonuses,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

type BulkReconcileRequest struct {
	Month   int                `json:"month"`
	Year    int                `json:"year"`
	Entries []BulkEntryRequest `json:"entries,omitempty"`
	// EmployeeIDs restricts the run; empty means all active employees.
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r *BulkReconcileRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be 1-12 and year 2000 or later"})
	}
	for _, e := range r.Entries {
		if validator.IsEmpty(e.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "every entry requires an employee_id"})
			break
		}
		if e.Status != nil && !IsValidStatus(Status(*e.Status)) {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "status must be 'draft', 'processed' or 'paid'"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkWriteResult reports the outcome of one planned write.
type BulkWriteResult struct {
	EmployeeID string  `json:"employee_id"`
	Action     string  `json:"action"`
	RecordID   string  `json:"record_id,omitempty"`
	Error      *string `json:"error,omitempty"`
}

type BulkReconcileResponse struct {
	Month          int               `json:"month"`
	Year           int               `json:"year"`
	Created        int               `json:"created"`
	Updated        int               `json:"updated"`
	Failed         int               `json:"failed"`
	SkippedRecords int               `json:"skipped_attendance_records,omitempty"`
	Results        []BulkWriteResult `json:"results"`
}

// PayrollFilter narrows payroll list queries.
type PayrollFilter struct {
	EmployeeID *string
	Month      *int
	Year       *int
	Status     *string
	ManagerID  *string // scope to employees reporting to this manager
	Page       int
	Limit      int
}

type ListPayrollResponse struct {
	Results    []PayrollRecordResponse `json:"results"`
	TotalCount int64                   `json:"count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}
