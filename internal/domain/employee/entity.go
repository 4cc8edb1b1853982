package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusOnLeave  Status = "on_leave"
	StatusInactive Status = "inactive"
)

func IsValidStatus(s Status) bool {
	return s == StatusActive || s == StatusOnLeave || s == StatusInactive
}

// Employee is the HR profile attached to a user account.
type Employee struct {
	ID            string
	UserID        *string
	EmployeeCode  string
	Phone         *string
	Address       *string
	DateOfJoining time.Time
	Status        Status
	TeamID        *string
	Position      *string
	BaseSalary    decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	FullName  *string
	Email     *string
	TeamName  *string
	ManagerID *string // manager of the linked user account
}
