package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
	StatusLeave   Status = "leave"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}

// Attendance is one employee's record for one calendar day.
// The (employee_id, date) pair is unique at the database level.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CheckIn    *string
	CheckOut   *string
	Notes      *string
	MarkedBy   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
