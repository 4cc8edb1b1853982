package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusDraft     Status = "draft"
	StatusProcessed Status = "processed"
	StatusPaid      Status = "paid"
)

// IsValidStatus checks the value set only. Operators may move a record to
// any status directly; there is no enforced draft -> processed -> paid order.
func IsValidStatus(s Status) bool {
	return s == StatusDraft || s == StatusProcessed || s == StatusPaid
}

// PayrollRecord - one employee's payroll for one (month, year) period.
// The (employee_id, month, year) triple is unique at the database level.
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	Month       int
	Year        int
	BaseSalary  decimal.Decimal
	DaysWorked  decimal.Decimal
	DaysPresent int
	DaysAbsent  int
	DaysOnLeave int
	Deductions  decimal.Decimal
	Bonuses     decimal.Decimal
	FinalPay    decimal.Decimal
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
